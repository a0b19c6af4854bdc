package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobportal-backend/internal/models"
)

func TestMapJobType(t *testing.T) {
	cases := []struct {
		apiType string
		want    string
	}{
		{"full-time", models.JobTypeFullTime},
		{"FULL-TIME", models.JobTypeFullTime},
		{"fulltime", models.JobTypeFullTime},
		{"part-time", models.JobTypePartTime},
		{"parttime", models.JobTypePartTime},
		{"contract", models.JobTypeContract},
		{"CONTRACTOR", models.JobTypeContract},
		{"internship", models.JobTypeInternship},
		{"remote", models.JobTypeRemote},
		{"hybrid", models.JobTypeHybrid},
		{"freelance", models.JobTypeFullTime}, // unrecognized defaults to Full-Time
		{"", models.JobTypeFullTime},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, MapJobType(c.apiType), "MapJobType(%q)", c.apiType)
	}
}

func TestExtractExperience(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        string
	}{
		{"senior keyword", "We are looking for a Senior Go engineer", ExperienceSenior},
		{"years cue for senior", "Requires 7+ years of experience", ExperienceSenior},
		{"mid level", "A mid level position on the platform team", ExperienceMid},
		{"mid years cue", "You bring 3 years of backend experience", ExperienceMid},
		{"junior", "Junior developer wanted", ExperienceJunior},
		{"entry level", "Great entry level opportunity", ExperienceJunior},
		{"intern", "Summer intern for the data team", ExperienceInternship},
		{"no cues", "We need someone who loves shipping software", ExperienceNotSpecified},
		{"empty description", "", ExperienceNotSpecified},
		// Cues are checked in priority order.
		{"senior wins over junior", "Senior role mentoring junior developers", ExperienceSenior},
		{"mid wins over intern", "Mid level role, previous internship a plus", ExperienceMid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ExtractExperience(c.description))
		})
	}
}

func TestNormalizeJob_Defaults(t *testing.T) {
	now := time.Now()
	job := NormalizeJob(APIJob{JobID: "ext-1"}, now)

	assert.Equal(t, "ext-1", job.JobID)
	assert.Equal(t, "Not provided", job.Title)
	assert.Equal(t, "Unknown", job.Company)
	assert.Equal(t, "Remote", job.Location)
	assert.Equal(t, "No description", job.Description)
	assert.Equal(t, "Not specified", job.Salary)
	assert.Equal(t, models.JobTypeFullTime, job.JobType)
	assert.Equal(t, ExperienceNotSpecified, job.Experience)
	assert.NotNil(t, job.Skills)
	assert.Empty(t, job.Skills)
	assert.True(t, job.Scraped)
	assert.True(t, job.DateFetched.Equal(now))
	assert.True(t, job.ExpiresAt.Equal(now.Add(7*24*time.Hour)))
}

func TestNormalizeJob_Fields(t *testing.T) {
	now := time.Now()
	job := NormalizeJob(APIJob{
		JobID:          "ext-2",
		Title:          "Backend Developer",
		Employer:       "Acme",
		City:           "Berlin",
		Country:        "Germany",
		Description:    "Senior backend role",
		EmploymentType: "contract",
		Salary:         "80k-100k",
		RequiredSkills: []string{"Go", "MongoDB"},
	}, now)

	assert.Equal(t, "Backend Developer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Berlin", job.Location) // city wins over country
	assert.Equal(t, models.JobTypeContract, job.JobType)
	assert.Equal(t, ExperienceSenior, job.Experience)
	assert.Equal(t, "80k-100k", job.Salary)
	assert.Equal(t, []string{"Go", "MongoDB"}, job.Skills)
	assert.False(t, job.ID.IsZero())
}

func TestNormalizeJob_CountryFallback(t *testing.T) {
	job := NormalizeJob(APIJob{JobID: "ext-3", Country: "France"}, time.Now())
	assert.Equal(t, "France", job.Location)
}
