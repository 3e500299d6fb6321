package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/app"
	"github.com/prepdeck/prepdeck/internal/attempts"
	"github.com/prepdeck/prepdeck/internal/insights"
	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/quizgen"
	"github.com/prepdeck/prepdeck/internal/resume"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/tips"
)

// services bundles everything the TUI and CLI subcommands share.
type services struct {
	store    *store.Store
	log      *zap.Logger
	profiles *profile.Service
	attempts *attempts.Service
	insights *insights.Service
	resumes  *resume.Service
	aiReady  bool
}

func (s *services) Close() {
	_ = s.log.Sync()
	_ = s.store.Close()
}

// buildServices opens the store and wires up all services. When no LLM
// provider is configured, AI-backed services are still constructed but
// aiReady is false and calls into them will fail; callers gate on it.
func buildServices(cmd *cobra.Command, quiet bool) (*services, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	log := logger.New(logger.DefaultLogPath(), debug)

	ctx := cmd.Context()
	s := &services{
		store:    st,
		log:      log,
		profiles: profile.NewService(st.UserRepo(), log),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), log)
	if err != nil {
		if !quiet {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		}
	} else {
		s.aiReady = true
	}

	var gen quizgen.Generator
	var tipSvc *tips.Service
	if provider != nil {
		gen = quizgen.New(provider, quizgen.DefaultConfig())
		tipSvc = tips.NewService(provider)
	}
	s.attempts = attempts.NewService(s.profiles, gen, tipSvc, st.AttemptRepo(), log)
	s.insights = insights.NewService(s.profiles, provider, st.InsightRepo(), log)
	s.resumes = resume.NewService(s.profiles, provider, st.ResumeRepo(), log)

	return s, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	s, err := buildServices(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	return app.Run(app.Options{
		Profiles: s.profiles,
		Attempts: s.attempts,
		Insights: s.insights,
		Resumes:  s.resumes,
		AIReady:  s.aiReady,
	})
}
