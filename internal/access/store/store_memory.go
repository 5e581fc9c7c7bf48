package store

import (
	"context"
	"sync"

	"surveygate/internal/access/models"
	id "surveygate/pkg/domain"
)

type responseKey struct {
	user   id.UserID
	survey id.SurveyID
}

// InMemoryStore holds packages, completions, surveys and responses in maps.
type InMemoryStore struct {
	mu        sync.RWMutex
	packages  []string
	completed map[id.UserID]map[string]struct{}
	surveys   map[id.SurveyID]models.Survey
	responses map[responseKey]struct{}
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		completed: make(map[id.UserID]map[string]struct{}),
		surveys:   make(map[id.SurveyID]models.Survey),
		responses: make(map[responseKey]struct{}),
	}
}

// AddPackage registers a profile package code, appended to display order.
func (s *InMemoryStore) AddPackage(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages = append(s.packages, code)
}

// CompleteSection marks a package completed for a user.
func (s *InMemoryStore) CompleteSection(userID id.UserID, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed[userID] == nil {
		s.completed[userID] = make(map[string]struct{})
	}
	s.completed[userID][code] = struct{}{}
}

func (s *InMemoryStore) SaveSurvey(survey models.Survey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surveys[survey.ID] = survey
}

func (s *InMemoryStore) RecordResponse(userID id.UserID, surveyID id.SurveyID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[responseKey{userID, surveyID}] = struct{}{}
}

func (s *InMemoryStore) MissingPackages(_ context.Context, userID id.UserID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	done := s.completed[userID]
	missing := []string{}
	for _, code := range s.packages {
		if _, ok := done[code]; !ok {
			missing = append(missing, code)
		}
	}
	return missing, nil
}

func (s *InMemoryStore) FindSurvey(_ context.Context, surveyID id.SurveyID) (*models.Survey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	survey, ok := s.surveys[surveyID]
	if !ok {
		return nil, nil
	}
	return &survey, nil
}

func (s *InMemoryStore) HasResponded(_ context.Context, userID id.UserID, surveyID id.SurveyID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.responses[responseKey{userID, surveyID}]
	return ok, nil
}
