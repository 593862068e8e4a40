package main

import (
	"log/slog"
	"os"

	"github.com/metinatakli/movie-finder/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		slog.Error("movie finder exited", "error", err)
		os.Exit(1)
	}
}
