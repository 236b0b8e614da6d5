package main

import (
	"log"
	"os"

	"github.com/avc-dev/linktree/internal/app"
)

func main() {
	code, err := app.Run()
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(code)
}
