package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// RecordsService wraps the /health-records endpoints.
type RecordsService struct {
	c *Client
}

// List returns health records, optionally filtered by family member.
// A zero familyMemberID omits the filter entirely.
func (s *RecordsService) List(ctx context.Context, familyMemberID int64) ([]HealthRecord, error) {
	var query url.Values
	if familyMemberID > 0 {
		query = url.Values{"familyMemberId": {strconv.FormatInt(familyMemberID, 10)}}
	}

	var out []HealthRecord
	err := s.c.get(ctx, "/health-records", query, &out)
	return out, err
}

// Get returns a health record by id.
func (s *RecordsService) Get(ctx context.Context, id int64) (HealthRecord, error) {
	var out HealthRecord
	err := s.c.get(ctx, fmt.Sprintf("/health-records/%d", id), nil, &out)
	return out, err
}

// Create adds a health record.
func (s *RecordsService) Create(ctx context.Context, record HealthRecord) (HealthRecord, error) {
	var out HealthRecord
	err := s.c.post(ctx, "/health-records", record, &out)
	return out, err
}

// Update replaces a health record.
func (s *RecordsService) Update(ctx context.Context, id int64, record HealthRecord) (HealthRecord, error) {
	var out HealthRecord
	err := s.c.put(ctx, fmt.Sprintf("/health-records/%d", id), nil, record, &out)
	return out, err
}

// Delete removes a health record.
func (s *RecordsService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/health-records/%d", id))
}
