// Command migrate applies or rolls back the embedded schema migrations.
//
// Usage:
//
//	migrate [up|down|status|version]
//
// The default command is up. Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/sitebook-backend/migrations"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status|version]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("goose new provider: %v", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		for _, r := range results {
			fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
		}
		if len(results) == 0 {
			fmt.Println("No migrations to apply.")
		}

	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Printf("rolled back %s\n", r.Source.Path)

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("migrate status: %v", err)
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%5d  %-40s %s\n", s.Source.Version, s.Source.Path, applied)
		}

	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			log.Fatalf("migrate version: %v", err)
		}
		fmt.Println(v)

	default:
		flag.Usage()
		os.Exit(2)
	}
}
