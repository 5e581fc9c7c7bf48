package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"surveygate/internal/eligibility/models"
	id "surveygate/pkg/domain"
	"surveygate/pkg/platform/sentinel"
	txcontext "surveygate/pkg/platform/tx"
)

// PostgresStore reads the web application's profile tables and owns the
// survey_eligibility table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed eligibility store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) FindProfile(ctx context.Context, userID id.UserID) (*models.Profile, error) {
	query := `
		SELECT age, degree, city, family_status, work_type, gender, political_member
		FROM profiles
		WHERE user_id = $1
	`
	var age sql.NullInt64
	var degree, city, famStatus, workType, gender, political sql.NullString
	err := s.db.QueryRowContext(ctx, query, int64(userID)).Scan(
		&age, &degree, &city, &famStatus, &workType, &gender, &political,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	profile := &models.Profile{
		UserID:          userID,
		Degree:          nullString(degree),
		City:            nullString(city),
		FamilyStatus:    nullString(famStatus),
		WorkType:        nullString(workType),
		Gender:          nullString(gender),
		PoliticalMember: nullString(political),
	}
	if age.Valid {
		a := int(age.Int64)
		profile.Age = &a
	}
	return profile, nil
}

// FindAnswers loads answers keyed "q_<question_id>". Keys that do not name a
// question can never have an answer and are skipped.
func (s *PostgresStore) FindAnswers(ctx context.Context, userID id.UserID, keys []string) (models.Answers, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if len(keys) == 0 {
		rows, err = s.db.QueryContext(ctx,
			`SELECT question_id, answer_text FROM profile_answers WHERE user_id = $1`,
			int64(userID))
	} else {
		ids := make([]int64, 0, len(keys))
		for _, k := range keys {
			if qid, perr := id.ParseQuestionKey(k); perr == nil {
				ids = append(ids, int64(qid))
			}
		}
		if len(ids) == 0 {
			return models.Answers{}, nil
		}
		rows, err = s.db.QueryContext(ctx,
			`SELECT question_id, answer_text FROM profile_answers WHERE user_id = $1 AND question_id = ANY($2)`,
			int64(userID), pq.Array(ids))
	}
	if err != nil {
		return nil, fmt.Errorf("find answers: %w", err)
	}
	defer rows.Close()

	answers := models.Answers{}
	for rows.Next() {
		var (
			questionID int64
			text       sql.NullString
		)
		if err := rows.Scan(&questionID, &text); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers[id.QuestionID(questionID).Key()] = text.String
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return answers, nil
}

func (s *PostgresStore) FindRules(ctx context.Context, surveyID id.SurveyID) (*models.RuleDocument, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT rules_json FROM survey_eligibility WHERE survey_id = $1`,
		int64(surveyID)).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find rules: %w", err)
	}
	return decodeRules(raw)
}

func (s *PostgresStore) SaveRules(ctx context.Context, surveyID id.SurveyID, doc *models.RuleDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}
	_, err = s.execer(ctx).ExecContext(ctx, `
		INSERT INTO survey_eligibility (survey_id, rules_json, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (survey_id) DO UPDATE SET rules_json = EXCLUDED.rules_json, updated_at = now()
	`, int64(surveyID), payload)
	if err != nil {
		return fmt.Errorf("save rules: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteRules(ctx context.Context, surveyID id.SurveyID) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM survey_eligibility WHERE survey_id = $1`, int64(surveyID))
	if err != nil {
		return fmt.Errorf("delete rules: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rules: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// decodeRules treats an empty or JSON null column as no document.
func decodeRules(raw []byte) (*models.RuleDocument, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var doc models.RuleDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode stored rules: %w", err)
	}
	return &doc, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
