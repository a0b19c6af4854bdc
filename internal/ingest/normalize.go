package ingest

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobportal-backend/internal/models"
)

// Experience labels derived from description text.
const (
	ExperienceSenior       = "Senior Level"
	ExperienceMid          = "Mid Level"
	ExperienceJunior       = "Junior Level"
	ExperienceInternship   = "Internship"
	ExperienceNotSpecified = "Not specified"
)

// jobTypeMap normalizes employment-type strings from the API into the
// jobType enum.
var jobTypeMap = map[string]string{
	"full-time":  models.JobTypeFullTime,
	"fulltime":   models.JobTypeFullTime,
	"part-time":  models.JobTypePartTime,
	"parttime":   models.JobTypePartTime,
	"contract":   models.JobTypeContract,
	"contractor": models.JobTypeContract,
	"internship": models.JobTypeInternship,
	"remote":     models.JobTypeRemote,
	"hybrid":     models.JobTypeHybrid,
}

// MapJobType converts an API employment type to one of the jobType enum
// values. Unrecognized values default to Full-Time.
func MapJobType(apiType string) string {
	if t, ok := jobTypeMap[strings.ToLower(apiType)]; ok {
		return t
	}
	return models.JobTypeFullTime
}

// ExtractExperience derives a coarse experience label by scanning the
// description for seniority cues. Cues are checked in priority order, so a
// description mentioning both "senior" and "junior" reads as senior.
func ExtractExperience(description string) string {
	if description == "" {
		return ExperienceNotSpecified
	}

	desc := strings.ToLower(description)
	switch {
	case containsAny(desc, "senior", "5+ years", "5 years", "7+ years"):
		return ExperienceSenior
	case containsAny(desc, "mid-level", "mid level", "3+ years", "3 years", "2-5 years"):
		return ExperienceMid
	case containsAny(desc, "junior", "entry level", "0-2 years", "1+ years"):
		return ExperienceJunior
	case containsAny(desc, "intern", "internship"):
		return ExperienceInternship
	}
	return ExperienceNotSpecified
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// NormalizeJob maps an API result onto a Job record ready for insertion,
// filling the placeholder defaults for missing fields.
func NormalizeJob(api APIJob, now time.Time) models.Job {
	title := api.Title
	if title == "" {
		title = "Not provided"
	}
	company := api.Employer
	if company == "" {
		company = "Unknown"
	}
	location := api.City
	if location == "" {
		location = api.Country
	}
	if location == "" {
		location = "Remote"
	}
	description := api.Description
	if description == "" {
		description = "No description"
	}
	salary := api.Salary
	if salary == "" {
		salary = "Not specified"
	}
	skills := api.RequiredSkills
	if skills == nil {
		skills = []string{}
	}

	return models.Job{
		ID:          primitive.NewObjectID(),
		JobID:       api.JobID,
		Title:       title,
		Company:     company,
		Location:    location,
		JobType:     MapJobType(api.EmploymentType),
		Experience:  ExtractExperience(api.Description),
		Salary:      salary,
		Description: description,
		Skills:      skills,
		Scraped:     true,
		DateFetched: now,
		ExpiresAt:   now.Add(retentionWindow),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
