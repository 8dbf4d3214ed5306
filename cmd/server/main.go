package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/sleepstars/groqgate/internal/config"
	"github.com/sleepstars/groqgate/internal/gateway"
	"github.com/sleepstars/groqgate/internal/provider"
)

// Set by compiler via -ldflags.
var version = "dev"

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Load configuration from the environment (.env merged in if present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	upstream := provider.NewGroqClient(provider.ClientConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.UpstreamBaseURL,
		Model:   cfg.Model,
		Timeout: cfg.UpstreamTimeout,
	})

	handler := gateway.NewHandler(cfg, upstream, version)

	log.WithFields(log.Fields{
		"addr":  cfg.ListenAddr,
		"model": cfg.Model,
	}).Info("Gateway starting")

	if err := handler.Router().Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
