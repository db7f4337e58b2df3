package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"civicpulse/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}
	if err := cmd.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
