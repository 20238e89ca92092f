// Command validate checks operation arguments offline, without a database.
//
// Usage:
//
//	validate --model=project --op=findMany [file.json]
//
// Arguments are read from the file, or from stdin when no file is given. On
// success the normalized arguments are printed as JSON; otherwise every field
// error is printed and the exit code is 1.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

func main() {
	model := flag.String("model", "", "model name, e.g. project")
	op := flag.String("op", "", "operation name, e.g. findMany")
	list := flag.Bool("list", false, "list models and operations")
	flag.Parse()

	registry := schema.NewRegistry()

	if *list {
		for _, m := range registry.Models() {
			fmt.Printf("%-16s %s\n", m.Name, m.Table)
		}
		fmt.Println()
		for _, o := range schema.Operations() {
			fmt.Println(o)
		}
		return
	}

	if *model == "" || *op == "" {
		fmt.Fprintln(os.Stderr, "Usage: validate --model=MODEL --op=OPERATION [file.json]")
		os.Exit(2)
	}

	body, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	o, err := registry.Decode(*model, *op, body)
	if err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			log.Fatalf("validate: %v", err)
		}
		for _, fe := range ve.Errors {
			field := fe.Field
			if field == "" {
				field = "(body)"
			}
			fmt.Printf("%s: %s\n", field, fe.Message)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o.Args); err != nil {
		log.Fatalf("encode arguments: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
