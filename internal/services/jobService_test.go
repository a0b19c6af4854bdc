package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListFilter_Empty(t *testing.T) {
	assert.Empty(t, buildListFilter(ListParams{}))
}

func TestBuildListFilter_Search(t *testing.T) {
	filter := buildListFilter(ListParams{Search: "developer"})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok, "search must produce an $or clause")
	require.Len(t, or, 4)

	re := primitive.Regex{Pattern: "developer", Options: "i"}
	assert.Equal(t, re, or[0]["title"])
	assert.Equal(t, re, or[1]["company"])
	assert.Equal(t, re, or[2]["description"])
	assert.Equal(t, bson.M{"$in": []primitive.Regex{re}}, or[3]["skills"])
}

func TestBuildListFilter_IndependentFilters(t *testing.T) {
	filter := buildListFilter(ListParams{
		Location:   "Berlin",
		JobType:    "Remote",
		Experience: "Senior Level",
	})

	assert.Equal(t, primitive.Regex{Pattern: "Berlin", Options: "i"}, filter["location"])
	assert.Equal(t, "Remote", filter["jobType"])
	assert.Equal(t, "Senior Level", filter["experience"])
	assert.NotContains(t, filter, "$or")
}

func TestBuildAdvancedFilter_Keywords(t *testing.T) {
	filter := buildAdvancedFilter(AdvancedParams{Keywords: "golang"})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	// Keywords search covers title, company and description but not skills.
	require.Len(t, or, 3)
}

func TestBuildAdvancedFilter_SkillsSplit(t *testing.T) {
	filter := buildAdvancedFilter(AdvancedParams{Skills: "go, mongodb ,,docker"})

	skills, ok := filter["skills"].(bson.M)
	require.True(t, ok)
	regexes, ok := skills["$in"].([]primitive.Regex)
	require.True(t, ok)
	require.Len(t, regexes, 3)
	assert.Equal(t, primitive.Regex{Pattern: "go", Options: "i"}, regexes[0])
	assert.Equal(t, primitive.Regex{Pattern: "mongodb", Options: "i"}, regexes[1])
	assert.Equal(t, primitive.Regex{Pattern: "docker", Options: "i"}, regexes[2])
}

func TestBuildAdvancedFilter_SalaryRange(t *testing.T) {
	filter := buildAdvancedFilter(AdvancedParams{MinSalary: "50000", MaxSalary: "90000"})
	assert.Equal(t, bson.M{"$gte": "50000", "$lte": "90000"}, filter["salary"])

	filter = buildAdvancedFilter(AdvancedParams{MinSalary: "50000"})
	assert.Equal(t, bson.M{"$gte": "50000"}, filter["salary"])

	filter = buildAdvancedFilter(AdvancedParams{})
	assert.NotContains(t, filter, "salary")
}

func TestBuildSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, buildSort("", ""))
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, buildSort("createdAt", "desc"))
	assert.Equal(t, bson.D{{Key: "salary", Value: 1}}, buildSort("salary", "asc"))
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{6, 6, 1},
		{7, 6, 2},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, totalPages(c.total, c.limit), "totalPages(%d, %d)", c.total, c.limit)
	}
}

func TestGetJobByID_MalformedID(t *testing.T) {
	svc := NewJobService(nil)

	_, err := svc.GetJobByID(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, ErrInvalidJobID)
}
