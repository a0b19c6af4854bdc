// Package ingest pulls job postings from the JSearch API, normalizes them
// into Job records and maintains the scraped-job retention window.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	jsearchURL  = "https://jsearch.p.rapidapi.com/search"
	jsearchHost = "jsearch.p.rapidapi.com"
	searchQuery = "developer"
)

// APIJob mirrors a single JSearch result.
type APIJob struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"job_title"`
	Employer       string   `json:"employer_name"`
	City           string   `json:"job_city"`
	Country        string   `json:"job_country"`
	Description    string   `json:"job_description"`
	EmploymentType string   `json:"job_employment_type"`
	Salary         string   `json:"job_salary"`
	RequiredSkills []string `json:"job_required_skills"`
}

// jsearchResponse mirrors the top-level JSearch JSON response.
type jsearchResponse struct {
	Data []APIJob `json:"data"`
}

// Fetcher pulls one page of job postings from an external search API.
type Fetcher interface {
	Fetch(ctx context.Context) ([]APIJob, error)
}

// JSearchFetcher fetches postings from the JSearch API on RapidAPI.
type JSearchFetcher struct {
	apiKey string
	client *http.Client
}

func NewJSearchFetcher(apiKey string) *JSearchFetcher {
	return &JSearchFetcher{apiKey: apiKey, client: &http.Client{}}
}

// Fetch retrieves a single page of results for the fixed query term. A
// response without the expected result list is an error.
func (f *JSearchFetcher) Fetch(ctx context.Context) ([]APIJob, error) {
	params := url.Values{}
	params.Set("query", searchQuery)
	params.Set("num_pages", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jsearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", f.apiKey)
	req.Header.Set("x-rapidapi-host", jsearchHost)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jsearch returned %d: %s", resp.StatusCode, string(body))
	}

	var apiResp jsearchResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if apiResp.Data == nil {
		return nil, errors.New("invalid API response")
	}

	return apiResp.Data, nil
}
