package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"surveygate/internal/access/models"
	id "surveygate/pkg/domain"
)

// PostgresStore reads profile progress, surveys and responses from the web
// application's tables.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) MissingPackages(ctx context.Context, userID id.UserID) ([]string, error) {
	completed, err := s.completedSections(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT code FROM profile_packages
		WHERE NOT (code = ANY($1))
		ORDER BY position, code
	`, pq.Array(completed))
	if err != nil {
		return nil, fmt.Errorf("find missing packages: %w", err)
	}
	defer rows.Close()

	missing := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		missing = append(missing, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate packages: %w", err)
	}
	return missing, nil
}

func (s *PostgresStore) completedSections(ctx context.Context, userID id.UserID) ([]string, error) {
	var sections pq.StringArray
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(array_agg(section), '{}') FROM profile_details WHERE user_id = $1`,
		int64(userID)).Scan(&sections)
	if err != nil {
		return nil, fmt.Errorf("find completed sections: %w", err)
	}
	return sections, nil
}

func (s *PostgresStore) FindSurvey(ctx context.Context, surveyID id.SurveyID) (*models.Survey, error) {
	survey := &models.Survey{ID: surveyID}
	err := s.db.QueryRowContext(ctx,
		`SELECT title, is_active, allow_multiple FROM surveys WHERE id = $1`,
		int64(surveyID)).Scan(&survey.Title, &survey.IsActive, &survey.AllowMultiple)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find survey: %w", err)
	}
	return survey, nil
}

func (s *PostgresStore) HasResponded(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM survey_responses WHERE survey_id = $1 AND user_id = $2)`,
		int64(surveyID), int64(userID)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("find response: %w", err)
	}
	return exists, nil
}
