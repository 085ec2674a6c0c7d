package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestScoreRepo(t *testing.T) *TestScoreRepo {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return NewTestScoreRepo(db)
}

func TestTestScoreRepo_SaveAndList(t *testing.T) {
	repo := newTestScoreRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	questions := []string{"What do you sell?", "Who are your customers?", "How much does it cost?"}
	for i, q := range questions {
		saved, err := repo.Save(ctx, TestScore{Question: q, Answer: "answer", Score: 60 + i*10, Assessment: "ok"})
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if saved.ID == "" {
			t.Error("Save() did not assign an ID")
		}
		if saved.CreatedAt.IsZero() {
			t.Error("Save() did not set CreatedAt")
		}
	}

	scores, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("List() returned %d scores, want 2", len(scores))
	}
	if scores[0].Question != "How much does it cost?" {
		t.Errorf("List()[0].Question = %q, want newest first", scores[0].Question)
	}
	if scores[0].Score != 80 {
		t.Errorf("List()[0].Score = %d, want 80", scores[0].Score)
	}
	if !scores[0].CreatedAt.Equal(base.Add(3 * time.Minute)) {
		t.Errorf("List()[0].CreatedAt = %v, want %v", scores[0].CreatedAt, base.Add(3*time.Minute))
	}

	avg, count, err := repo.Average(ctx)
	if err != nil {
		t.Fatalf("Average() error = %v", err)
	}
	if count != 3 || avg != 70 {
		t.Errorf("Average() = (%v, %d), want (70, 3)", avg, count)
	}
}

func TestTestScoreRepo_Empty(t *testing.T) {
	repo := newTestScoreRepo(t)

	scores, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("List() = %v, want empty", scores)
	}

	avg, count, err := repo.Average(context.Background())
	if err != nil {
		t.Fatalf("Average() error = %v", err)
	}
	if avg != 0 || count != 0 {
		t.Errorf("Average() = (%v, %d), want (0, 0)", avg, count)
	}
}
