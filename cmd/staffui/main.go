package main

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/spec-kit/staff-service/internal/client"
	"github.com/spec-kit/staff-service/internal/tui"
)

type uiConfig struct {
	APIBaseURL     string `envconfig:"STAFF_API_URL" default:"http://127.0.0.1:8080"`
	TimeoutSeconds int    `envconfig:"STAFF_API_TIMEOUT_SECONDS" default:"10"`
}

func main() {
	var cfg uiConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	api := client.New(cfg.APIBaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	if err := tui.Run(api); err != nil {
		log.Fatalf("staffui: %v", err)
	}
}
