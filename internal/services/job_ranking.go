package services

import (
	"sort"
	"strings"

	"github.com/operman-code/brojgar-worker/internal/models"
)

// rankJobsForWorker selects and orders the jobs a worker should see.
// Inactive jobs are dropped; location matching is a symmetric
// case-insensitive substring test so "Mumbai" and "Mumbai Central" match in
// either direction. The sort is stable: boosted first, then jobs whose work
// type contains one of the worker's skills, then newest first.
func rankJobsForWorker(jobs []models.Job, location string, skills []string) []models.Job {
	locationLower := strings.ToLower(location)
	skillsLower := make([]string, len(skills))
	for i, skill := range skills {
		skillsLower[i] = strings.ToLower(skill)
	}

	var matched []models.Job
	for _, job := range jobs {
		if !job.IsActive {
			continue
		}
		jobLocationLower := strings.ToLower(job.Location)
		if strings.Contains(jobLocationLower, locationLower) ||
			strings.Contains(locationLower, jobLocationLower) {
			matched = append(matched, job)
		}
	}

	skillMatch := func(job models.Job) bool {
		workTypeLower := strings.ToLower(job.WorkType)
		for _, skill := range skillsLower {
			if strings.Contains(workTypeLower, skill) {
				return true
			}
		}
		return false
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.IsBoosted != b.IsBoosted {
			return a.IsBoosted
		}
		aSkill, bSkill := skillMatch(a), skillMatch(b)
		if aSkill != bSkill {
			return aSkill
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return matched
}
