package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store) *UserRecord {
	t.Helper()
	rec := &UserRecord{
		ID:          uuid.NewString(),
		Industry:    "tech-software-development",
		SubIndustry: "Software Development",
		Experience:  4,
		Skills:      []string{"Go", "SQL"},
		Bio:         "Backend engineer.",
	}
	if err := s.UserRepo().Save(context.Background(), rec); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return rec
}

func TestUserRepoSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := seedUser(t, s)

	got, err := s.UserRepo().Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got == nil {
		t.Fatal("expected user, got nil")
	}
	if got.Industry != rec.Industry {
		t.Errorf("industry = %q, want %q", got.Industry, rec.Industry)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "Go" {
		t.Errorf("skills = %v, want [Go SQL]", got.Skills)
	}
}

func TestUserRepoGetMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.UserRepo().Get(context.Background(), "no-such-user")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing user, got %+v", got)
	}
}

func TestUserRepoSaveUpdatesExisting(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := seedUser(t, s)
	rec.Experience = 7
	rec.Skills = []string{"Go", "SQL", "Kubernetes"}
	if err := s.UserRepo().Save(ctx, rec); err != nil {
		t.Fatalf("update user: %v", err)
	}

	got, err := s.UserRepo().Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Experience != 7 {
		t.Errorf("experience = %d, want 7", got.Experience)
	}
	if len(got.Skills) != 3 {
		t.Errorf("skills = %v, want 3 entries", got.Skills)
	}
}

func TestUserRepoFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	got, err := s.UserRepo().First(ctx)
	if err != nil {
		t.Fatalf("first on empty store: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on empty store, got %+v", got)
	}

	rec := seedUser(t, s)
	got, err = s.UserRepo().First(ctx)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if got == nil || got.ID != rec.ID {
		t.Errorf("first user = %+v, want ID %s", got, rec.ID)
	}
}

func TestAttemptRepoSaveAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s)

	results := json.RawMessage(`[{"question":"What is a goroutine?","isCorrect":true}]`)
	first := &AttemptRecord{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		QuizScore: 80,
		Questions: results,
		Category:  "Technical",
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	second := &AttemptRecord{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		QuizScore:      90,
		Questions:      results,
		Category:       "Technical",
		ImprovementTip: "Review channel select semantics.",
	}
	if err := s.AttemptRepo().Save(ctx, first); err != nil {
		t.Fatalf("save first attempt: %v", err)
	}
	if err := s.AttemptRepo().Save(ctx, second); err != nil {
		t.Fatalf("save second attempt: %v", err)
	}

	list, err := s.AttemptRepo().ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	// Oldest first.
	if list[0].ID != first.ID {
		t.Errorf("list[0].ID = %s, want %s", list[0].ID, first.ID)
	}
	if list[0].ImprovementTip != "" {
		t.Errorf("list[0] tip = %q, want empty", list[0].ImprovementTip)
	}
	if list[1].ImprovementTip != second.ImprovementTip {
		t.Errorf("list[1] tip = %q, want %q", list[1].ImprovementTip, second.ImprovementTip)
	}
}

func TestAttemptRepoNullTipRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s)

	rec := &AttemptRecord{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		QuizScore: 100,
		Questions: json.RawMessage(`[]`),
		Category:  "Technical",
	}
	if err := s.AttemptRepo().Save(ctx, rec); err != nil {
		t.Fatalf("save attempt: %v", err)
	}

	var tip *string
	err := s.DB().QueryRowContext(ctx,
		`SELECT improvement_tip FROM attempts WHERE id = ?`, rec.ID).Scan(&tip)
	if err != nil {
		t.Fatalf("query tip: %v", err)
	}
	if tip != nil {
		t.Errorf("improvement_tip = %q, want NULL", *tip)
	}
}

func TestAttemptRepoStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s)

	stats, err := s.AttemptRepo().StatsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("stats on empty history: %v", err)
	}
	if stats.Count != 0 {
		t.Errorf("count = %d, want 0", stats.Count)
	}

	for i, score := range []int{60, 80, 100} {
		rec := &AttemptRecord{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			QuizScore: score,
			Questions: json.RawMessage(`[]`),
			Category:  "Technical",
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Minute),
		}
		if err := s.AttemptRepo().Save(ctx, rec); err != nil {
			t.Fatalf("save attempt %d: %v", i, err)
		}
	}

	stats, err = s.AttemptRepo().StatsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Count != 3 {
		t.Errorf("count = %d, want 3", stats.Count)
	}
	if stats.AverageScore != 80 {
		t.Errorf("average = %v, want 80", stats.AverageScore)
	}
	if stats.LatestScore != 100 {
		t.Errorf("latest = %d, want 100", stats.LatestScore)
	}
}

func TestInsightRepoUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	rec := &InsightRecord{
		Industry:    "tech-software-development",
		Payload:     json.RawMessage(`{"growthRate":4.5}`),
		LastUpdated: now,
		NextUpdate:  now.Add(7 * 24 * time.Hour),
	}
	if err := s.InsightRepo().Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert insight: %v", err)
	}

	got, err := s.InsightRepo().Get(ctx, rec.Industry)
	if err != nil {
		t.Fatalf("get insight: %v", err)
	}
	if got == nil {
		t.Fatal("expected insight, got nil")
	}
	if string(got.Payload) != `{"growthRate":4.5}` {
		t.Errorf("payload = %s", got.Payload)
	}

	// Replacing keeps a single row per industry.
	rec.Payload = json.RawMessage(`{"growthRate":5.0}`)
	rec.NextUpdate = now.Add(14 * 24 * time.Hour)
	if err := s.InsightRepo().Upsert(ctx, rec); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err = s.InsightRepo().Get(ctx, rec.Industry)
	if err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
	if string(got.Payload) != `{"growthRate":5.0}` {
		t.Errorf("payload after upsert = %s", got.Payload)
	}
}

func TestInsightRepoGetMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.InsightRepo().Get(context.Background(), "finance-banking")
	if err != nil {
		t.Fatalf("get insight: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestResumeRepoUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s)

	rec := &ResumeRecord{
		UserID:  user.ID,
		Content: json.RawMessage(`{"summary":"Backend engineer."}`),
	}
	if err := s.ResumeRepo().Upsert(ctx, rec); err != nil {
		t.Fatalf("upsert resume: %v", err)
	}

	got, err := s.ResumeRepo().Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get resume: %v", err)
	}
	if got == nil {
		t.Fatal("expected resume, got nil")
	}
	if string(got.Content) != `{"summary":"Backend engineer."}` {
		t.Errorf("content = %s", got.Content)
	}
}

func TestEventRepoAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := 0; i < 3; i++ {
		data := LLMEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "quiz-gen",
			InputTokens:  100 + i,
			OutputTokens: 200,
			LatencyMs:    50,
			Success:      true,
		}
		if err := repo.AppendLLMEvent(ctx, data); err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].ID <= events[1].ID {
		t.Errorf("expected descending IDs, got %d then %d", events[0].ID, events[1].ID)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("events[0].InputTokens = %d, want 102", events[0].InputTokens)
	}

	one, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if one == nil || one.ID != events[1].ID {
		t.Errorf("got %+v, want ID %d", one, events[1].ID)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestEventRepoFailureEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	data := LLMEventData{
		Provider:     "gemini",
		Model:        "gemini-flash",
		Purpose:      "improvement-tip",
		Success:      false,
		ErrorMessage: "rate limited",
	}
	if err := repo.AppendLLMEvent(ctx, data); err != nil {
		t.Fatalf("append event: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, 0)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Success {
		t.Error("expected Success=false")
	}
	if events[0].ErrorMessage != "rate limited" {
		t.Errorf("error message = %q", events[0].ErrorMessage)
	}
}
