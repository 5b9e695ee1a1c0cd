package api

import (
	"context"
	"fmt"
)

// FamilyService wraps the /family-members endpoints.
type FamilyService struct {
	c *Client
}

// List returns all family members.
func (s *FamilyService) List(ctx context.Context) ([]FamilyMember, error) {
	var out []FamilyMember
	err := s.c.get(ctx, "/family-members", nil, &out)
	return out, err
}

// Get returns a family member by id.
func (s *FamilyService) Get(ctx context.Context, id int64) (FamilyMember, error) {
	var out FamilyMember
	err := s.c.get(ctx, fmt.Sprintf("/family-members/%d", id), nil, &out)
	return out, err
}

// Create adds a family member.
func (s *FamilyService) Create(ctx context.Context, member FamilyMember) (FamilyMember, error) {
	var out FamilyMember
	err := s.c.post(ctx, "/family-members", member, &out)
	return out, err
}

// Update replaces a family member.
func (s *FamilyService) Update(ctx context.Context, id int64, member FamilyMember) (FamilyMember, error) {
	var out FamilyMember
	err := s.c.put(ctx, fmt.Sprintf("/family-members/%d", id), nil, member, &out)
	return out, err
}

// Delete removes a family member.
func (s *FamilyService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/family-members/%d", id))
}
