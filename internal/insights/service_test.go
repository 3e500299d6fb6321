package insights

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/store"
)

const insightJSON = `{
	"salaryRanges": [
		{"role": "Backend Engineer", "min": 90000, "max": 180000, "median": 130000, "location": "US"},
		{"role": "SRE", "min": 100000, "max": 190000, "median": 140000, "location": "US"},
		{"role": "Data Engineer", "min": 95000, "max": 175000, "median": 128000, "location": "US"},
		{"role": "Platform Engineer", "min": 98000, "max": 185000, "median": 135000, "location": "US"},
		{"role": "Engineering Manager", "min": 130000, "max": 220000, "median": 170000, "location": "US"}
	],
	"growthRate": 12.5,
	"demandLevel": "High",
	"topSkills": ["Go", "Kubernetes", "SQL", "Terraform", "Observability"],
	"marketOutlook": "Positive",
	"keyTrends": ["AI tooling", "Platform teams", "Cost control", "Edge compute", "Security shift-left"],
	"recommendedSkills": ["Go", "Distributed systems", "Cloud architecture", "LLM integration", "SQL tuning"]
}`

type insightFixture struct {
	svc      *Service
	mock     *llm.MockProvider
	repo     store.InsightRepo
	profiles *profile.Service
}

func newInsightFixture(t *testing.T) *insightFixture {
	t.Helper()
	s, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	profiles := profile.NewService(s.UserRepo(), nil)
	if _, err := profiles.Save(context.Background(), profile.Input{
		Industry:    "tech",
		SubIndustry: "Software Development",
		Experience:  4,
	}); err != nil {
		t.Fatalf("onboard: %v", err)
	}

	mock := llm.NewMockProvider()
	return &insightFixture{
		svc:      NewService(profiles, mock, s.InsightRepo(), nil),
		mock:     mock,
		repo:     s.InsightRepo(),
		profiles: profiles,
	}
}

func TestGetGeneratesAndCaches(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()

	f.mock.AddResponse(llm.MockResponse{Content: json.RawMessage(insightJSON)})

	rep, err := f.svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rep.Industry != "tech-software-development" {
		t.Errorf("industry = %q", rep.Industry)
	}
	if rep.Insight.DemandLevel != "High" || len(rep.Insight.SalaryRanges) != 5 {
		t.Errorf("insight = %+v", rep.Insight)
	}
	if rep.Stale {
		t.Error("fresh report marked stale")
	}
	wantNext := rep.LastUpdated.Add(RefreshInterval)
	if !rep.NextUpdate.Equal(wantNext) {
		t.Errorf("next update = %v, want %v", rep.NextUpdate, wantNext)
	}

	// Second call serves the cache without another provider call.
	rep2, err := f.svc.Get(ctx)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if f.mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", f.mock.CallCount())
	}
	if rep2.Insight.GrowthRate != 12.5 {
		t.Errorf("cached growth rate = %v", rep2.Insight.GrowthRate)
	}
}

func TestGetRegeneratesWhenExpired(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()

	f.mock.AddResponse(llm.MockResponse{Content: json.RawMessage(insightJSON)})
	if _, err := f.svc.Get(ctx); err != nil {
		t.Fatalf("first get: %v", err)
	}

	// Jump past the refresh deadline.
	f.svc.now = func() time.Time { return time.Now().Add(RefreshInterval + time.Hour) }
	f.mock.AddResponse(llm.MockResponse{Content: json.RawMessage(insightJSON)})

	rep, err := f.svc.Get(ctx)
	if err != nil {
		t.Fatalf("get after expiry: %v", err)
	}
	if f.mock.CallCount() != 2 {
		t.Errorf("provider called %d times, want 2", f.mock.CallCount())
	}
	if rep.Stale {
		t.Error("regenerated report marked stale")
	}
}

func TestGetServesStaleOnRefreshFailure(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()

	f.mock.AddResponse(llm.MockResponse{Content: json.RawMessage(insightJSON)})
	if _, err := f.svc.Get(ctx); err != nil {
		t.Fatalf("first get: %v", err)
	}

	f.svc.now = func() time.Time { return time.Now().Add(RefreshInterval + time.Hour) }
	f.mock.AddResponse(llm.MockResponse{Err: errors.New("provider down")})

	rep, err := f.svc.Get(ctx)
	if err != nil {
		t.Fatalf("get with failing refresh: %v", err)
	}
	if !rep.Stale {
		t.Error("expected stale report")
	}
	if rep.Insight.DemandLevel != "High" {
		t.Errorf("stale insight = %+v", rep.Insight)
	}
}

func TestGetFailsWithNoCacheAndNoProvider(t *testing.T) {
	f := newInsightFixture(t)

	f.mock.AddResponse(llm.MockResponse{Err: errors.New("provider down")})
	_, err := f.svc.Get(context.Background())
	if err == nil {
		t.Fatal("expected error with no cache and failed generation")
	}
}

func TestGetWithoutProvider(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()

	// No provider and nothing cached: a typed error, not a panic.
	noAI := NewService(f.profiles, nil, f.repo, nil)
	if _, err := noAI.Get(ctx); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("err = %v, want ErrNoProvider", err)
	}

	// With a cached copy on hand, even an expired one is served stale.
	f.mock.AddResponse(llm.MockResponse{Content: json.RawMessage(insightJSON)})
	if _, err := f.svc.Get(ctx); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	noAI.now = func() time.Time { return time.Now().Add(RefreshInterval + time.Hour) }

	rep, err := noAI.Get(ctx)
	if err != nil {
		t.Fatalf("get without provider: %v", err)
	}
	if !rep.Stale {
		t.Error("expected the expired cached report marked stale")
	}
}

func TestGetRequiresProfile(t *testing.T) {
	s, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	profiles := profile.NewService(s.UserRepo(), nil)
	svc := NewService(profiles, llm.NewMockProvider(), s.InsightRepo(), nil)

	_, err = svc.Get(context.Background())
	if !errors.Is(err, profile.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
