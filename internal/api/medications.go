package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// MedicationsService wraps the /medications endpoints.
type MedicationsService struct {
	c *Client
}

// List returns medications, optionally filtered by family member.
// A zero familyMemberID omits the filter entirely.
func (s *MedicationsService) List(ctx context.Context, familyMemberID int64) ([]Medication, error) {
	var query url.Values
	if familyMemberID > 0 {
		query = url.Values{"familyMemberId": {strconv.FormatInt(familyMemberID, 10)}}
	}

	var out []Medication
	err := s.c.get(ctx, "/medications", query, &out)
	return out, err
}

// Get returns a medication by id.
func (s *MedicationsService) Get(ctx context.Context, id int64) (Medication, error) {
	var out Medication
	err := s.c.get(ctx, fmt.Sprintf("/medications/%d", id), nil, &out)
	return out, err
}

// Create adds a medication.
func (s *MedicationsService) Create(ctx context.Context, med Medication) (Medication, error) {
	var out Medication
	err := s.c.post(ctx, "/medications", med, &out)
	return out, err
}

// Update replaces a medication.
func (s *MedicationsService) Update(ctx context.Context, id int64, med Medication) (Medication, error) {
	var out Medication
	err := s.c.put(ctx, fmt.Sprintf("/medications/%d", id), nil, med, &out)
	return out, err
}

// Delete removes a medication.
func (s *MedicationsService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/medications/%d", id))
}

// CreateReminder schedules a reminder for a medication.
//
// There is no corresponding delete endpoint server-side yet; reminders are
// removed by deleting the medication.
func (s *MedicationsService) CreateReminder(ctx context.Context, medicationID int64, req CreateReminderRequest) (MedicationReminder, error) {
	var out MedicationReminder
	err := s.c.post(ctx, fmt.Sprintf("/medications/%d/reminders", medicationID), req, &out)
	return out, err
}
