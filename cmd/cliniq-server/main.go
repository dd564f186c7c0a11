package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cliniq/cliniq/internal/config"
	"github.com/cliniq/cliniq/internal/domain/appointment"
	"github.com/cliniq/cliniq/internal/domain/availability"
	"github.com/cliniq/cliniq/internal/domain/calendar"
	"github.com/cliniq/cliniq/internal/platform/diag"
	"github.com/cliniq/cliniq/internal/platform/middleware"
	"github.com/cliniq/cliniq/internal/platform/snapshot"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cliniq-server",
		Short: "Clinic scheduling engine server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a one-shot conflict check against a snapshot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshotPath, _ := cmd.Flags().GetString("snapshot")
			consultantStr, _ := cmd.Flags().GetString("consultant")
			dateStr, _ := cmd.Flags().GetString("date")
			startStr, _ := cmd.Flags().GetString("start")
			endStr, _ := cmd.Flags().GetString("end")

			consultant, err := uuid.Parse(consultantStr)
			if err != nil {
				return fmt.Errorf("--consultant must be a uuid: %w", err)
			}
			date, err := calendar.ParseDate(dateStr)
			if err != nil {
				return err
			}
			start, err := calendar.ParseClock(startStr)
			if err != nil {
				return err
			}
			end, err := calendar.ParseClock(endStr)
			if err != nil {
				return err
			}

			logger := newLogger()
			reporter := diag.NewReporter(logger)
			src, err := snapshot.NewFileSource(snapshotPath, time.UTC, reporter)
			if err != nil {
				return err
			}

			records, err := src.RecordsOn(context.Background(), date)
			if err != nil {
				return err
			}

			exp := calendar.NewExpander(reporter)
			candidate := calendar.Interval{Start: start, End: end}
			warning := availability.CheckConflict(exp, candidate, consultant, date, records)
			if warning == nil {
				fmt.Printf("No conflict for %s on %s.\n", candidate, date)
				return nil
			}
			fmt.Println(warning.Message)
			return nil
		},
	}
	cmd.Flags().String("snapshot", "snapshot.json", "Path to the snapshot file")
	cmd.Flags().String("consultant", "", "Consultant id (uuid)")
	cmd.Flags().String("date", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().String("start", "", "Candidate start (HH:MM)")
	cmd.Flags().String("end", "", "Candidate end (HH:MM)")
	return cmd
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func runServer() error {
	logger := newLogger()

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid slot catalog configuration")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("invalid timezone")
	}

	// Snapshot source
	reporter := diag.NewReporter(logger)
	src, err := snapshot.NewFileSource(cfg.SnapshotFile, loc, reporter)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.SnapshotFile).Msg("failed to load snapshot")
	}
	logger.Info().Str("file", cfg.SnapshotFile).Msg("snapshot loaded")

	// Engine
	exp := calendar.NewExpander(reporter)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.RequestTimeout(15 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// API group
	apiV1 := e.Group("/v1")

	availHandler := availability.NewHandler(src, exp)
	availHandler.RegisterRoutes(apiV1)

	agendaHandler := appointment.NewHandler(src, src, exp, catalog)
	agendaHandler.RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
