package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"surveygate/internal/eligibility/models"
	id "surveygate/pkg/domain"
)

// maxConcurrentRuleFetches bounds FilterEligible's fan-out to the rule store.
const maxConcurrentRuleFetches = 8

// inputs are the per-user facts an evaluation reads.
type inputs struct {
	profile *models.Profile
	answers models.Answers
}

// gatherInputs fetches the profile and the answers for keys in parallel with
// shared cancellation. Answers are skipped when no advanced rule reads them.
func (s *Service) gatherInputs(ctx context.Context, userID id.UserID, keys []string) (*inputs, error) {
	g, ctx := errgroup.WithContext(ctx)
	in := &inputs{answers: models.Answers{}}

	g.Go(func() error {
		start := time.Now()
		profile, err := s.profiles.FindProfile(ctx, userID)
		s.metrics.ObserveFetchLatency("profile", time.Since(start))
		if err != nil {
			return fetchError(err, "failed to load profile")
		}
		in.profile = profile
		return nil
	})

	if len(keys) > 0 {
		g.Go(func() error {
			start := time.Now()
			answers, err := s.answers.FindAnswers(ctx, userID, keys)
			s.metrics.ObserveFetchLatency("answers", time.Since(start))
			if err != nil {
				return fetchError(err, "failed to load profile answers")
			}
			if answers != nil {
				in.answers = answers
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

// fetchRuleBatch loads one rule document per survey, index-aligned with
// surveyIDs.
func (s *Service) fetchRuleBatch(ctx context.Context, surveyIDs []id.SurveyID) ([]*models.RuleDocument, error) {
	docs := make([]*models.RuleDocument, len(surveyIDs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRuleFetches)

	for i, surveyID := range surveyIDs {
		g.Go(func() error {
			doc, err := s.fetchRules(ctx, surveyID)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
