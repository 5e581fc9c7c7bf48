package store

import (
	"context"
	"sync"

	"surveygate/internal/eligibility/models"
	id "surveygate/pkg/domain"
	"surveygate/pkg/platform/sentinel"
)

// InMemoryStore keeps profiles, answers and rule documents in maps. It backs
// tests and local runs without a database.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.UserID]models.Profile
	answers  map[id.UserID]models.Answers
	rules    map[id.SurveyID]models.RuleDocument
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		profiles: make(map[id.UserID]models.Profile),
		answers:  make(map[id.UserID]models.Answers),
		rules:    make(map[id.SurveyID]models.RuleDocument),
	}
}

// SaveProfile stores a profile keyed by its UserID.
func (s *InMemoryStore) SaveProfile(_ context.Context, profile models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = profile
	return nil
}

// SaveAnswer stores one dynamic answer.
func (s *InMemoryStore) SaveAnswer(_ context.Context, answer models.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.answers[answer.UserID] == nil {
		s.answers[answer.UserID] = models.Answers{}
	}
	s.answers[answer.UserID][answer.QuestionID.Key()] = answer.Text
	return nil
}

func (s *InMemoryStore) FindProfile(_ context.Context, userID id.UserID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *InMemoryStore) FindAnswers(_ context.Context, userID id.UserID, keys []string) (models.Answers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.answers[userID]
	out := models.Answers{}
	if len(keys) == 0 {
		for k, v := range stored {
			out[k] = v
		}
		return out, nil
	}
	for _, k := range keys {
		if v, ok := stored[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (s *InMemoryStore) FindRules(_ context.Context, surveyID id.SurveyID) (*models.RuleDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.rules[surveyID]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (s *InMemoryStore) SaveRules(_ context.Context, surveyID id.SurveyID, doc *models.RuleDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[surveyID] = *doc
	return nil
}

func (s *InMemoryStore) DeleteRules(_ context.Context, surveyID id.SurveyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rules[surveyID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rules, surveyID)
	return nil
}
