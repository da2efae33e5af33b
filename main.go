// main.go
//
// Binary entry point.
// Loads .env (if present) into the environment, then hands off to the CLI.

package main

import (
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/go-solver/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
