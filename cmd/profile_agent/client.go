package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jonathan/jobseeker-profile/internal/apiclient"
	"github.com/jonathan/jobseeker-profile/internal/config"
	"github.com/jonathan/jobseeker-profile/internal/session"
)

// loadConfig layers CLI flags over the config file and environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Resolve(configPath, config.Config{
		APIURL:  apiURL,
		Token:   apiToken,
		Timeout: timeout,
		Verbose: verbose,
	})
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *log.Logger {
	if !cfg.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "[profile_agent] ", log.LstdFlags)
}

// loadPage connects to the API and loads the profile page.
func loadPage(ctx context.Context) (*session.Page, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	logger := newLogger(cfg)
	client, err := apiclient.New(apiclient.Options{
		BaseURL:       cfg.APIURL,
		Timeout:       cfg.TimeoutDuration(),
		Token:         cfg.Token,
		SessionCookie: cfg.SessionCookie,
		Logger:        logger,
	})
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to create API client: %w", err)
	}

	page, err := session.Load(ctx, client, logger)
	if err != nil {
		return nil, config.Config{}, err
	}
	return page, cfg, nil
}
