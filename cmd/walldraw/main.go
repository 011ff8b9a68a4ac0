package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"planner/internal/common/config"
	"planner/internal/drawing"
	"planner/internal/editor"
	"planner/internal/geometry"
	"planner/internal/models"
	"planner/internal/placement"

	"github.com/gdamore/tcell/v2"
)

// ============================================================
// Wall Drawing Tool
// ============================================================

func main() {
	cfg := config.Load()

	tol := geometry.Tolerance{Epsilon: cfg.Geometry.Epsilon}
	rules := placement.DefaultRules()
	rules.MinLength = cfg.Geometry.MinWallLength
	rules.MaxLength = cfg.Geometry.MaxWallLength
	rules.MinSpacing = cfg.Geometry.MinWallSpacing
	rules.SnapTolerance = cfg.Geometry.SnapTolerance

	var preload []geometry.Wall
	if len(os.Args) > 1 {
		walls, err := loadWalls(os.Args[1])
		if err != nil {
			log.Fatalf("[DRAW] %v", err)
		}
		preload = walls
		log.Printf("[DRAW] Loaded %d walls from %s", len(walls), os.Args[1])
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[DRAW] Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[DRAW] Failed to init screen: %v", err)
	}

	session := drawing.NewSession(
		screen,
		tol,
		placement.New(tol, rules),
		editor.New(tol, editor.WithMaxJoinDistance(cfg.Geometry.MaxJoinDistance)),
	)
	session.Load(preload)
	session.Fit()

	runErr := session.Run()
	screen.Fini()
	if runErr != nil {
		log.Fatalf("[DRAW] %v", runErr)
	}

	// The host owns persistence; print the final snapshot for it.
	out, err := json.MarshalIndent(models.WallsResponse{Walls: session.Walls()}, "", "  ")
	if err != nil {
		log.Fatalf("[DRAW] Failed to encode walls: %v", err)
	}
	fmt.Println(string(out))
}

func loadWalls(path string) ([]geometry.Wall, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read walls: %w", err)
	}
	var req models.WallsRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return req.Walls, nil
}
