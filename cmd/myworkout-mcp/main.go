// Command myworkout-mcp exposes the workout history over MCP stdio.
// It talks to a running my-workout-app instance through the REST API,
// so it can run on a laptop while the data lives on the home server.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/ibuki-kubota/my-workout-app/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "base URL of the my-workout-app server")
	apiKey := flag.String("api-key", os.Getenv("MYWORKOUT_AUTH_API_KEY"), "API key for the server (optional)")
	flag.Parse()

	// Logs go to stderr; stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ds := mcp.NewHTTPClient(*serverURL, *apiKey)
	s := mcp.New(ds, Version, log)

	log.Info("mcp server starting", "transport", "stdio", "backend", *serverURL)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
