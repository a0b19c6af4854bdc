package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"jobportal-backend/internal/services"
)

var jobService *services.JobService

// InitJobHandler wires the job query service into the package handlers.
func InitJobHandler(svc *services.JobService) {
	jobService = svc
}

// GetAllJobsHandler handles GET /api/jobs
func GetAllJobsHandler(c *fiber.Ctx) error {
	params := services.ListParams{
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
		Search:     c.Query("search"),
		Location:   c.Query("location"),
		JobType:    c.Query("jobType"),
		Experience: c.Query("experience"),
		SortBy:     c.Query("sortBy", "createdAt"),
		SortOrder:  c.Query("sortOrder", "desc"),
	}

	page, err := jobService.ListJobs(c.Context(), params)
	if err != nil {
		return fail(c, err, "Get all jobs error")
	}
	return pageJSON(c, page)
}

// GetJobByIDHandler handles GET /api/jobs/:id
func GetJobByIDHandler(c *fiber.Ctx) error {
	job, err := jobService.GetJobByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Get job by ID error")
	}
	return c.JSON(fiber.Map{"success": true, "data": job})
}

// GetJobsByCompanyHandler handles GET /api/jobs/company/:company
func GetJobsByCompanyHandler(c *fiber.Ctx) error {
	page, err := jobService.ListByCompany(
		c.Context(),
		c.Params("company"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 10),
	)
	if err != nil {
		return fail(c, err, "Get jobs by company error")
	}
	return pageJSON(c, page)
}

// GetJobLocationsHandler handles GET /api/jobs/locations
func GetJobLocationsHandler(c *fiber.Ctx) error {
	return distinctJSON(c, jobService.Locations, "Get job locations error")
}

// GetJobTypesHandler handles GET /api/jobs/job-types
func GetJobTypesHandler(c *fiber.Ctx) error {
	return distinctJSON(c, jobService.JobTypes, "Get job types error")
}

// GetExperienceLevelsHandler handles GET /api/jobs/experience-levels
func GetExperienceLevelsHandler(c *fiber.Ctx) error {
	return distinctJSON(c, jobService.ExperienceLevels, "Get experience levels error")
}

// distinctJSON runs one of the distinct-value queries and writes the list
// envelope used by the filter dropdowns.
func distinctJSON(c *fiber.Ctx, query func(context.Context) ([]string, error), logContext string) error {
	values, err := query(c.Context())
	if err != nil {
		return fail(c, err, logContext)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(values), "data": values})
}

// GetFeaturedJobsHandler handles GET /api/jobs/featured
func GetFeaturedJobsHandler(c *fiber.Ctx) error {
	jobs, err := jobService.Featured(c.Context(), c.QueryInt("limit", 6))
	if err != nil {
		return fail(c, err, "Get featured jobs error")
	}
	return c.JSON(fiber.Map{"success": true, "count": len(jobs), "data": jobs})
}

// AdvancedSearchHandler handles GET /api/jobs/search/advanced
func AdvancedSearchHandler(c *fiber.Ctx) error {
	params := services.AdvancedParams{
		Keywords:   c.Query("keywords"),
		Location:   c.Query("location"),
		JobType:    c.Query("jobType"),
		Experience: c.Query("experience"),
		Skills:     c.Query("skills"),
		MinSalary:  c.Query("minSalary"),
		MaxSalary:  c.Query("maxSalary"),
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
		SortBy:     c.Query("sortBy", "createdAt"),
		SortOrder:  c.Query("sortOrder", "desc"),
	}

	page, err := jobService.AdvancedSearch(c.Context(), params)
	if err != nil {
		return fail(c, err, "Advanced search error")
	}
	return pageJSON(c, page)
}
