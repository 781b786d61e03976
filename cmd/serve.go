package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/adilet/learnloop/internal/config"
	"github.com/adilet/learnloop/internal/content"
	"github.com/adilet/learnloop/internal/exams"
	"github.com/adilet/learnloop/internal/httpapi"
	"github.com/adilet/learnloop/internal/lessons"
	"github.com/adilet/learnloop/internal/llm"
	"github.com/adilet/learnloop/internal/logger"
	"github.com/adilet/learnloop/internal/news"
	"github.com/adilet/learnloop/internal/practice"
	"github.com/adilet/learnloop/internal/profile"
	"github.com/adilet/learnloop/internal/quizzes"
	"github.com/adilet/learnloop/internal/schedule"
	"github.com/adilet/learnloop/internal/stats"
	"github.com/adilet/learnloop/internal/store"
	"github.com/adilet/learnloop/internal/terms"
	"github.com/adilet/learnloop/internal/tracks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.DatabaseDSN = dsn
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("opening datastore: %w", err)
	}
	defer st.Close()

	if err := cfg.LLM.Validate(); err != nil {
		return err
	}
	provider, err := llm.NewProvider(ctx, cfg.LLM, st.LLMEvents(), func(msg string, err error) {
		log.Warnw(msg, "error", err)
	})
	if err != nil {
		return fmt.Errorf("building LLM provider: %w", err)
	}

	gen := content.NewGenerator(provider)
	sched := schedule.New(schedule.DefaultConfig())

	statsSvc := stats.NewService(st.Stats(), nil)
	svc := httpapi.Services{
		Lessons:  lessons.NewService(st.Lessons(), st.Attempts(), statsSvc, st.Attempts(), statsSvc, gen, sched, log, nil),
		Tracks:   tracks.NewService(st.Lessons(), st.Attempts(), gen, sched, log),
		Quizzes:  quizzes.NewService(st.Quizzes(), st.Lessons(), st.Attempts(), statsSvc, gen, log),
		Exams:    exams.NewService(st.Exams(), st.Certificates(), st.Attempts(), statsSvc, gen, log),
		News:     news.NewService(st.News(), st.Attempts(), statsSvc, gen, nil),
		Practice: practice.NewService(st.Attempts(), statsSvc, gen),
		Stats:    statsSvc,
		Profile:  profile.NewService(st.Profiles(), st.Badges()),
		Terms:    terms.NewService(st.Terms(), log, nil),
		Sched:    sched,

		LessonCatalog: st.Lessons(),
		QuizCatalog:   st.Quizzes(),

		Views: st.Attempts(),
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewRouter(cfg, svc, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", cfg.Addr, "env", cfg.Env, "model", provider.ModelID())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
