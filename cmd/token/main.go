// Command token issues a signed API bearer token for a named consumer.
// Usage: go run ./cmd/token <subject>
package main

import (
	"fmt"
	"log"
	"os"

	"polisched/internal/auth"
	"polisched/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: token <subject>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	token, err := auth.NewService(&cfg.JWT).IssueToken(os.Args[1])
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}

	fmt.Println(token)
}
