package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"thinklie-backend/config"
	"thinklie-backend/internal/domain/chat"
	"thinklie-backend/internal/domain/project"
	"thinklie-backend/pkg/database"
)

const usage = `
Think-LIE Backend - Database CLI Tool

Usage:
  migrate [command]

Commands:
  up          Apply the schema (chats, messages, projects, media_objects)
  status      Show database connection status
  truncate    Truncate all tables (DANGEROUS)

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go status
`

func main() {
	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.LoadConfig()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	switch flag.Arg(0) {
	case "up":
		if err := db.AutoMigrate(
			&chat.Chat{},
			&chat.Message{},
			&project.Project{},
			&project.MediaObject{},
		); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Schema is up to date")
	case "status":
		if err := database.HealthCheck(db); err != nil {
			log.Fatalf("Database unreachable: %v", err)
		}
		log.Println("Database connection OK")
	case "truncate":
		for _, table := range []string{"messages", "chats", "projects", "media_objects"} {
			if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
				log.Fatalf("Failed to truncate %s: %v", table, err)
			}
		}
		log.Println("All tables truncated")
	default:
		flag.Usage()
		os.Exit(1)
	}
}
