package models

type Business struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
}

type BusinessStats struct {
	ActiveJobs    int `json:"activeJobs"`
	Applications  int `json:"applications"`
	BoostedJobs   int `json:"boostedJobs"`
	CompletedJobs int `json:"completedJobs"`
}

type BusinessProfile struct {
	User     User          `json:"user"`
	Business Business      `json:"business"`
	Stats    BusinessStats `json:"stats"`
}
