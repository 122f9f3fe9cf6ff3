package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/examtools/vceplay/internal/config"
	"github.com/examtools/vceplay/internal/handler"
	"github.com/examtools/vceplay/internal/logger"
	"github.com/examtools/vceplay/internal/player"
	"github.com/examtools/vceplay/internal/router"
	"github.com/examtools/vceplay/internal/store"
	"github.com/examtools/vceplay/internal/validator"
	"github.com/examtools/vceplay/internal/vce"
	"github.com/examtools/vceplay/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()
	if len(os.Args) > 1 {
		cfg.ExamFile = os.Args[1]
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("exam_file", cfg.ExamFile).
		Msg("Starting VCE Player")

	if cfg.ExamFile == "" {
		log.Fatal().Msg("No exam file given. Pass a path or set EXAM_FILE")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Load Exam ─────────────────────────────────────────────────────
	source := vce.NewSource(log, cfg.DefaultQuestionCount)
	exam, err := source.Load(cfg.ExamFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load exam")
	}
	log.Info().
		Str("title", exam.Title).
		Int("total_questions", exam.TotalQuestions).
		Str("author", exam.Author).
		Msg("Exam loaded")

	// ─── Open Session Store ────────────────────────────────────────────
	sessionStore, err := store.NewSessionStore(cfg.SessionDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open session store")
	}

	// ─── Initialize Player ─────────────────────────────────────────────
	examPlayer := player.New(exam, sessionStore, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Session: handler.NewSessionHandler(examPlayer, log, cfg.QuestionLimit, cfg.RandomizeQuestions),
		WS:      handler.NewWSHandler(examPlayer, log, cfg.AllowedOrigins),
	}

	// ─── Start Autosave Worker ────────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	autosaveWorker := worker.NewAutosaveWorker(examPlayer, cfg.AutosaveInterval, log)
	go autosaveWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// Stop the autosave worker; it runs one final save before exiting.
	workerCancel()
	time.Sleep(time.Second)

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
