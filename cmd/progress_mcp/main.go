// Package main runs the progress MCP server over stdio, for local assistant clients.
// The backend serves the same tools on /mcp over HTTP, bound to the logged in user.
// Over stdio the tools take a username instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/2beens/physiq/internal/config"
	"github.com/2beens/physiq/internal/db"
	"github.com/2beens/physiq/internal/progress"
	progressmcp "github.com/2beens/physiq/internal/progress/mcp"
	"github.com/2beens/physiq/internal/users"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("location: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     os.Getenv("PHYSIQ_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	usersRepo := users.NewRepo(dbPool)
	resolveUser := func(ctx context.Context, username string) (int, error) {
		if username == "" {
			return 0, progressmcp.ErrNoUser
		}
		user, err := usersRepo.GetUserByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				return 0, fmt.Errorf("unknown user %q", username)
			}
			return 0, err
		}
		return user.ID, nil
	}

	progressService := progress.NewService(progress.NewRepo(dbPool), loc, nil)
	server := progressmcp.NewServer(
		progressmcp.NewContextService(progressmcp.NewPoolSchemaRepo(dbPool), progressService),
		resolveUser,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
