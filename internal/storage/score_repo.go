package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultScoreLimit bounds score history listings.
const DefaultScoreLimit = 20

// TestScoreRepo persists knowledge-test results in SQLite.
type TestScoreRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewTestScoreRepo creates a TestScoreRepo on a migrated database.
func NewTestScoreRepo(db *sql.DB) *TestScoreRepo {
	return &TestScoreRepo{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Save stores a score and returns it with ID and CreatedAt filled in.
func (r *TestScoreRepo) Save(ctx context.Context, score TestScore) (TestScore, error) {
	score.ID = uuid.New().String()
	score.CreatedAt = r.now()

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO test_scores (id, question, answer, score, assessment, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		score.ID, score.Question, score.Answer, score.Score, score.Assessment, score.CreatedAt,
	)
	if err != nil {
		return TestScore{}, fmt.Errorf("insert test score: %w", err)
	}
	return score, nil
}

// List returns up to limit scores, newest first.
func (r *TestScoreRepo) List(ctx context.Context, limit int) ([]TestScore, error) {
	if limit <= 0 {
		limit = DefaultScoreLimit
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, question, answer, score, assessment, created_at FROM test_scores ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query test scores: %w", err)
	}
	defer rows.Close()

	var scores []TestScore
	for rows.Next() {
		var s TestScore
		if err := rows.Scan(&s.ID, &s.Question, &s.Answer, &s.Score, &s.Assessment, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan test score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate test scores: %w", err)
	}
	return scores, nil
}

// Average returns the mean score across all recorded answers, or 0 when none exist.
func (r *TestScoreRepo) Average(ctx context.Context) (float64, int, error) {
	var avg sql.NullFloat64
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT AVG(score), COUNT(*) FROM test_scores").Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("average test scores: %w", err)
	}
	return avg.Float64, count, nil
}
