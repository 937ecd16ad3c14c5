package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"robotlab/internal/config"
	"robotlab/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load("robotlab.toml")
	if err != nil {
		log.Fatal(err)
	}

	g := game.New(cfg)
	if err := g.Run("assets/scenes/robot.json"); err != nil {
		log.Fatal(err)
	}
}
