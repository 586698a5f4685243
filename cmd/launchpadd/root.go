package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/advisor"
	"github.com/fyrsmithlabs/launchpad/internal/config"
	"github.com/fyrsmithlabs/launchpad/internal/genai"
	"github.com/fyrsmithlabs/launchpad/internal/logging"
	"github.com/fyrsmithlabs/launchpad/internal/session"
	"github.com/fyrsmithlabs/launchpad/internal/store"
)

var (
	// configPath is the --config flag value; empty means the default
	// location (~/.config/launchpad/config.yaml).
	configPath string

	// version information (set via ldflags during build)
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "launchpadd",
	Short:   "AI co-founder daemon: build and stress-test startup ideas",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(projectCmd)
}

// app bundles the wired services shared by the subcommands.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *store.Store
	session *session.Session
	advisor *advisor.Service
}

// buildApp loads config and wires the service graph.
func buildApp() (*app, error) {
	if err := config.EnsureConfigDir(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	kv, err := store.NewFileKV(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}
	st, err := store.New(kv, logger)
	if err != nil {
		return nil, err
	}
	sess, err := session.New(st, logger)
	if err != nil {
		return nil, err
	}

	client := genai.NewGeminiClient(genai.Config{
		APIKey:  cfg.GenAI.APIKey,
		BaseURL: cfg.GenAI.BaseURL,
		Timeout: cfg.GenAI.Timeout,
	}, logger)

	adv, err := advisor.NewService(client, advisor.Config{
		TextModel:     cfg.GenAI.TextModel,
		ImageModel:    cfg.GenAI.ImageModel,
		TTSModel:      cfg.GenAI.TTSModel,
		PlanStepDelay: cfg.Plan.StepDelay,
	}, logger)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		session: sess,
		advisor: adv,
	}, nil
}
