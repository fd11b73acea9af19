package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"parkmobile/internal/app"
	"parkmobile/internal/config"
	"parkmobile/libs/logging"
)

const usage = `usage: parkmobile <command> [args]

commands:
  register <full-name> <email> <password>
  login <email> <password>
  logout
  whoami
  vehicles
  vehicle-add <license-plate> <car|motorcycle|truck>
  status [session-id]
  sessions [active|completed|cancelled]
  fee
  exit <session-id>
  lot <lot-id>`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}
	defer application.Close()

	if err := application.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, app.Describe(err))
		os.Exit(1)
	}
}
