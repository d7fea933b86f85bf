package main

import (
	"log"
	"os"

	"tinyfox/cmd/api/app"
)

// main mirrors cmd/api so `go run .` works from the repository root.
func main() {
	if err := app.Run(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
