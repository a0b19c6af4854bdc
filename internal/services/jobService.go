package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobportal-backend/internal/models"
)

// JobService exposes read-only queries over the jobs collection. Filtering,
// sorting, pagination and distinct aggregation are all delegated to Mongo.
type JobService struct {
	jobs *mongo.Collection
}

func NewJobService(jobs *mongo.Collection) *JobService {
	return &JobService{jobs: jobs}
}

// ListParams carries the query-string filters for GET /api/jobs.
type ListParams struct {
	Page       int
	Limit      int
	Search     string
	Location   string
	JobType    string
	Experience string
	SortBy     string
	SortOrder  string
}

// AdvancedParams carries the filters for GET /api/jobs/search/advanced.
type AdvancedParams struct {
	Keywords   string
	Location   string
	JobType    string
	Experience string
	Skills     string // comma-separated; a job matches if any skill matches any term
	MinSalary  string
	MaxSalary  string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

// JobPage is the pagination envelope shared by all listing operations.
type JobPage struct {
	Count int          `json:"count"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Pages int          `json:"pages"`
	Data  []models.Job `json:"data"`
}

func containsRegex(pattern string) primitive.Regex {
	return primitive.Regex{Pattern: pattern, Options: "i"}
}

// buildListFilter translates list query parameters into a Mongo filter.
// search matches title, company, description or any skill, case-insensitively.
func buildListFilter(p ListParams) bson.M {
	filter := bson.M{}
	if p.Search != "" {
		re := containsRegex(p.Search)
		filter["$or"] = []bson.M{
			{"title": re},
			{"company": re},
			{"description": re},
			{"skills": bson.M{"$in": []primitive.Regex{re}}},
		}
	}
	if p.Location != "" {
		filter["location"] = containsRegex(p.Location)
	}
	if p.JobType != "" {
		filter["jobType"] = p.JobType
	}
	if p.Experience != "" {
		filter["experience"] = p.Experience
	}
	return filter
}

// buildAdvancedFilter translates advanced-search parameters into a Mongo
// filter. Salary is stored as free text, so the range bounds compare
// lexicographically.
func buildAdvancedFilter(p AdvancedParams) bson.M {
	filter := bson.M{}
	if p.Keywords != "" {
		re := containsRegex(p.Keywords)
		filter["$or"] = []bson.M{
			{"title": re},
			{"company": re},
			{"description": re},
		}
	}
	if p.Location != "" {
		filter["location"] = containsRegex(p.Location)
	}
	if p.JobType != "" {
		filter["jobType"] = p.JobType
	}
	if p.Experience != "" {
		filter["experience"] = p.Experience
	}
	if p.Skills != "" {
		var regexes []primitive.Regex
		for _, skill := range strings.Split(p.Skills, ",") {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			regexes = append(regexes, containsRegex(skill))
		}
		if len(regexes) > 0 {
			filter["skills"] = bson.M{"$in": regexes}
		}
	}
	if p.MinSalary != "" || p.MaxSalary != "" {
		salary := bson.M{}
		if p.MinSalary != "" {
			salary["$gte"] = p.MinSalary
		}
		if p.MaxSalary != "" {
			salary["$lte"] = p.MaxSalary
		}
		filter["salary"] = salary
	}
	return filter
}

func buildSort(sortBy, sortOrder string) bson.D {
	if sortBy == "" {
		sortBy = "createdAt"
	}
	order := -1 // newest first by default
	if sortOrder == "asc" {
		order = 1
	}
	return bson.D{{Key: sortBy, Value: order}}
}

// totalPages is ceil(total/limit).
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// paginate runs filter+sort+skip/limit and counts the full match set so the
// envelope's total is independent of the requested page.
func (s *JobService) paginate(ctx context.Context, filter bson.M, sort bson.D, page, limit int) (JobPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(sort).
		SetLimit(int64(limit)).
		SetSkip(int64((page - 1) * limit))

	cursor, err := s.jobs.Find(ctx, filter, opts)
	if err != nil {
		return JobPage{}, err
	}
	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return JobPage{}, err
	}

	total, err := s.jobs.CountDocuments(ctx, filter)
	if err != nil {
		return JobPage{}, err
	}

	return JobPage{
		Count: len(jobs),
		Total: total,
		Page:  page,
		Pages: totalPages(total, limit),
		Data:  jobs,
	}, nil
}

// ListJobs returns one page of jobs matching the list filters.
func (s *JobService) ListJobs(ctx context.Context, p ListParams) (JobPage, error) {
	return s.paginate(ctx, buildListFilter(p), buildSort(p.SortBy, p.SortOrder), p.Page, p.Limit)
}

// GetJobByID returns a single job, ErrInvalidJobID on a malformed id and
// ErrJobNotFound when absent.
func (s *JobService) GetJobByID(ctx context.Context, id string) (models.Job, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Job{}, ErrInvalidJobID
	}

	var job models.Job
	if err := s.jobs.FindOne(ctx, bson.M{"_id": objID}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Job{}, ErrJobNotFound
		}
		return models.Job{}, err
	}
	return job, nil
}

// ListByCompany returns one page of jobs whose company matches the given
// name, case-insensitively, newest first.
func (s *JobService) ListByCompany(ctx context.Context, company string, page, limit int) (JobPage, error) {
	filter := bson.M{"company": containsRegex(company)}
	return s.paginate(ctx, filter, buildSort("", ""), page, limit)
}

// Locations returns the distinct non-blank job locations.
func (s *JobService) Locations(ctx context.Context) ([]string, error) {
	return s.distinctNonBlank(ctx, "location")
}

// JobTypes returns the distinct non-blank job types.
func (s *JobService) JobTypes(ctx context.Context) ([]string, error) {
	return s.distinctNonBlank(ctx, "jobType")
}

// ExperienceLevels returns the distinct non-blank experience labels.
func (s *JobService) ExperienceLevels(ctx context.Context) ([]string, error) {
	return s.distinctNonBlank(ctx, "experience")
}

func (s *JobService) distinctNonBlank(ctx context.Context, field string) ([]string, error) {
	raw, err := s.jobs.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok || strings.TrimSpace(str) == "" {
			continue
		}
		values = append(values, str)
	}
	return values, nil
}

// Featured returns the newest jobs projected to a summary field set.
func (s *JobService) Featured(ctx context.Context, limit int) ([]models.Job, error) {
	if limit < 1 {
		limit = 6
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{
			"title":      1,
			"company":    1,
			"location":   1,
			"jobType":    1,
			"experience": 1,
			"salary":     1,
			"createdAt":  1,
		})

	cursor, err := s.jobs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// AdvancedSearch returns one page of jobs matching the advanced filters,
// under the same pagination contract as ListJobs.
func (s *JobService) AdvancedSearch(ctx context.Context, p AdvancedParams) (JobPage, error) {
	return s.paginate(ctx, buildAdvancedFilter(p), buildSort(p.SortBy, p.SortOrder), p.Page, p.Limit)
}
