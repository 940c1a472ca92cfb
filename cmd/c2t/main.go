package main

import (
	"fmt"
	"os"

	"clip2txt/cmd/c2t/cmd"
	"clip2txt/internal/config"
)

func main() {
	// Missing .env is fine; a broken one only warns
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
