package api

import (
	"context"
	"net/url"
)

// SuggestionsService wraps the /suggestions autocomplete endpoints.
//
// These fire on every keystroke in form views, so every call suppresses
// toasts unconditionally.
type SuggestionsService struct {
	c *Client
}

// Medicines returns medicine name suggestions for the query.
func (s *SuggestionsService) Medicines(ctx context.Context, query string) ([]string, error) {
	return s.suggest(ctx, "/suggestions/medicines", query)
}

// MedicalTests returns medical test name suggestions for the query.
func (s *SuggestionsService) MedicalTests(ctx context.Context, query string) ([]string, error) {
	return s.suggest(ctx, "/suggestions/medical-tests", query)
}

// RecordTypes returns the known health record types.
func (s *SuggestionsService) RecordTypes(ctx context.Context) ([]string, error) {
	var out []string
	err := s.c.get(ctx, "/suggestions/record-types", nil, &out, SuppressToast())
	return out, err
}

func (s *SuggestionsService) suggest(ctx context.Context, path, query string) ([]string, error) {
	var params url.Values
	if query != "" {
		params = url.Values{"query": {query}}
	}

	var out []string
	err := s.c.get(ctx, path, params, &out, SuppressToast())
	return out, err
}
