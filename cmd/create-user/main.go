// Command create-user adds an account that can sign in to the API. It is used
// to bootstrap the first user, since every /api route requires a token.
//
// Usage:
//
//	create-user --name="Site Admin" --email=admin@example.com
//
// The password is read from the SITEBOOK_PASSWORD environment variable.
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	name := flag.String("name", "", "display name of the user")
	email := flag.String("email", "", "email the user signs in with")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if *name == "" || *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: create-user --name=NAME --email=user@example.com")
		os.Exit(1)
	}

	password := os.Getenv("SITEBOOK_PASSWORD")
	if password == "" {
		log.Fatal("SITEBOOK_PASSWORD environment variable is required")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), *cost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx,
		"INSERT INTO users (name, email, password) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		*name, *email, string(hash),
	)
	if err != nil {
		log.Fatalf("insert user: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("A user with email %q already exists.\n", *email)
		os.Exit(1)
	}

	fmt.Printf("User %q created.\n", *email)
}
