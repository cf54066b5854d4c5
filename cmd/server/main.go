package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/store"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	cfg := config.Load()

	repo, err := repository.NewFileSnapshotRepo(cfg.StateDir)
	if err != nil {
		log.Fatalf("state dir not usable: %v", err)
	}

	// Restore before wiring anything that renders, so a returning session
	// never observes the empty initial state.
	st := store.Restore(repo)
	if snap := st.State(); snap.APIKey == "" && cfg.APIKey != "" {
		st.SetAPIKey(cfg.APIKey)
	}
	if snap := st.State(); snap.Language == "" {
		st.SetLanguage(cfg.DefaultLanguage)
	}

	rasterizer := infra.NewChromedpRasterizer(cfg.ChromePath)
	exporter := usecase.NewExporter(rasterizer)

	app := fiber.New()
	h := httpadapter.NewHandler(st, exporter, ai.NewClient())
	h.Register(app)

	log.Printf("resume builder listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
