//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"surveygate/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(context.Background(),
		"profile_packages", "profile_details", "survey_responses", "surveys"))
}

func (s *PostgresStoreSuite) exec(query string, args ...any) {
	_, err := s.pg.DB.Exec(query, args...)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestMissingPackagesInDisplayOrder() {
	ctx := context.Background()
	s.exec(`INSERT INTO profile_packages (code, title, position) VALUES ('work', 'Work', 2), ('basic', 'Basic', 1), ('family', 'Family', 3)`)

	missing, err := s.store.MissingPackages(ctx, 42)
	s.Require().NoError(err)
	s.Equal([]string{"basic", "work", "family"}, missing)

	s.exec(`INSERT INTO profile_details (user_id, section) VALUES (42, 'basic'), (42, 'family')`)
	missing, err = s.store.MissingPackages(ctx, 42)
	s.Require().NoError(err)
	s.Equal([]string{"work"}, missing)
}

func (s *PostgresStoreSuite) TestSurveyAndResponses() {
	ctx := context.Background()
	s.exec(`INSERT INTO surveys (id, title, is_active, allow_multiple) VALUES (7, 'Habits', TRUE, FALSE)`)

	survey, err := s.store.FindSurvey(ctx, 7)
	s.Require().NoError(err)
	s.True(survey.IsActive)

	responded, err := s.store.HasResponded(ctx, 42, 7)
	s.Require().NoError(err)
	s.False(responded)

	s.exec(`INSERT INTO survey_responses (survey_id, user_id) VALUES (7, 42)`)
	responded, err = s.store.HasResponded(ctx, 42, 7)
	s.Require().NoError(err)
	s.True(responded)
}
