package models

type Worker struct {
	ID              string   `json:"id"`
	UserID          string   `json:"userId"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel"`
	CompletedJobs   int      `json:"completedJobs"`
	// Rating is stored in tenths: 48 means 4.8 out of 5.
	Rating int `json:"rating"`
}

type WorkerStats struct {
	CompletedJobs int `json:"completedJobs"`
	Rating        int `json:"rating"`
	AvailableJobs int `json:"availableJobs"`
}

type WorkerProfile struct {
	User   User        `json:"user"`
	Worker Worker      `json:"worker"`
	Stats  WorkerStats `json:"stats"`
}
