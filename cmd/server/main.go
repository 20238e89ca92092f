// Command server runs the HTTP API.
//
// Usage:
//
//	server [--config=path/to/config.yaml] [--env]
//
// The config path falls back to CONFIG_PATH, then ./config.yaml. Environment
// variables override the file; --env lists them.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/sitebook-backend/internal/app"
	"github.com/heartmarshall/sitebook-backend/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	listEnv := flag.Bool("env", false, "list environment variables and exit")
	flag.Parse()

	if *listEnv {
		config.Usage(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath); err != nil {
		log.Fatalf("server: %v", err)
	}
}
