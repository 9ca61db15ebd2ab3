package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"inkwell/app/config"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/seed"

	"github.com/jinzhu/gorm"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	case "seed":
		runSeed()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog API server.
  seed       Load development fixtures (posts, comments, admin account).

Configuration comes from the environment or an optional .env file:
  ADDR, DB_DIALECT, DB_DSN, ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD
`
	fmt.Println(helpText)
}

// serve connects to the database, migrates the schema and runs the API server.
func serve() {
	cfg := config.Load()

	db := mustOpen(cfg)
	defer db.Close()

	router := routes.SetupRoutes(db)

	log.Printf("Starting blog API server on %s", cfg.Addr)
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// runSeed loads the development fixtures and exits.
func runSeed() {
	cfg := config.Load()

	db := mustOpen(cfg)
	defer db.Close()

	if err := seed.Run(db, cfg); err != nil {
		log.Fatalf("Seed error: %v", err)
	}

	log.Println("Development data initialization complete")
}

func mustOpen(cfg *config.Config) *gorm.DB {
	if cfg.DBDialect == "sqlite3" {
		if dir := filepath.Dir(cfg.DBDSN); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatalf("Failed to create database directory: %v", err)
			}
		}
	}

	db, err := repositories.Open(cfg.DBDialect, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}
