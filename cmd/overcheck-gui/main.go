package main

import (
	"embed"
	"log"

	"overcheck/internal/gui"
)

//go:embed frontend/index.html
var appAssets embed.FS

func main() {
	app := gui.NewWithAssets(appAssets)

	if err := app.Run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}
