package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"promptdesk/internal/config"
	"promptdesk/internal/repository/postgres"
	"promptdesk/internal/seed"
	"promptdesk/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop the prompts table before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only create the prompts table, don't seed prompts")
	clearData := flag.Bool("clear-data", false, "Delete all prompts (keep schema)")
	fixturePath := flag.String("file", "", "YAML file of prompts to seed (defaults to the built-in samples)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: cannot run destructive operations (-drop-tables or -clear-data) in production")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	table := cfg.PromptsTableName()
	switch {
	case *clearData:
		log.Printf("Clearing prompts (environment: %s, table: %s)", cfg.Environment, table)
	case *schemaOnly:
		log.Printf("Setting up schema only (environment: %s, table: %s)", cfg.Environment, table)
	default:
		log.Printf("Seeding prompts (environment: %s, table: %s)", cfg.Environment, table)
	}

	// Read the fixture before touching the database
	fixture := seed.DefaultFixture()
	if *fixturePath != "" {
		data, err := os.ReadFile(*fixturePath)
		if err != nil {
			log.Fatalf("Failed to read fixture: %v", err)
		}
		fixture = data
	}
	requests, err := seed.ParseFixture(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture: %v", err)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix, cfg.PromptsTable)

	// Drop table if requested
	if *dropTables {
		log.Println("Dropping prompts table...")
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop table: %v", err)
		}
		log.Println("Table dropped")
	}

	// Run schema to ensure the table exists
	log.Println("Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		deleted, err := postgres.ClearPrompts(ctx, pool, tables)
		if err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Printf("Deleted %d prompts", deleted)
		return
	}

	// Create prompts through the service layer
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	promptService := service.NewPromptService(postgres.NewPromptRepository(repoConfig), logger)
	seeder := seed.NewPromptSeeder(promptService, logger)

	created := seeder.Seed(ctx, requests)
	log.Printf("Seeding complete: %d/%d prompts created", created, len(requests))
	if created < len(requests) {
		pool.Close()
		os.Exit(1)
	}
}
