package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/foxhands/generationTextSerega/api"
	"github.com/foxhands/generationTextSerega/catalog"
	"github.com/foxhands/generationTextSerega/config"
	"github.com/foxhands/generationTextSerega/generator"
	"github.com/foxhands/generationTextSerega/storage"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	daily := flag.Bool("daily", false, "generate one article per category per language, then exit")
	flag.Parse()

	addr := ":" + config.DefaultPort
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	var llm generator.LLMClient
	if os.Getenv("USE_MOCK_LLM") == "true" {
		llm = generator.MockLLM{}
		log.Println("Using mock LLM (USE_MOCK_LLM=true)")
	} else {
		llm, err = generator.NewLLMClientFromEnv()
		if err != nil {
			log.Fatalf("failed to configure LLM: %v", err)
		}
	}
	log.Printf("Using model: %s", llm.ModelName())

	articlesDir := os.Getenv("ARTICLES_DIR")
	if articlesDir == "" {
		articlesDir = config.ArticlesDir
	}
	store, err := storage.NewStore(articlesDir)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	if archive := storage.NewArchiveFromEnv(context.Background()); archive != nil {
		store = store.WithArchive(archive)
		log.Println("S3 article mirroring enabled")
	}

	gen := generator.New(llm)

	if *daily {
		runDaily(gen, cat, store)
		return
	}

	server := api.NewServer(cat, gen, store)
	if cache := storage.NewResultCacheFromEnv(); cache != nil {
		server = server.WithCache(cache)
		log.Println("Redis result cache enabled")
	}
	if trending := catalog.NewTrendingFromEnv(); trending != nil {
		server = server.WithTrending(trending)
		log.Println("RSS trending topics enabled")
	}

	r := server.Router()
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /")
	log.Println("  GET  /api/categories")
	log.Println("  GET  /api/topics")
	log.Println("  POST /api/generate")
	log.Println("  GET  /download/:filename")
	log.Println("  GET  /health")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// runDaily produces the daily publication batch and reports the outcome.
func runDaily(gen *generator.Generator, cat *catalog.Catalog, store *storage.Store) {
	log.Println("=== Daily article generation ===")
	res := generator.GenerateDaily(context.Background(), gen, cat, store)

	log.Printf("Generated: %d files", len(res.Saved))
	for _, file := range res.Saved {
		log.Printf("✓ %s", file)
	}
	if len(res.Failed) > 0 {
		log.Printf("Failed: %d articles", len(res.Failed))
		for _, topic := range res.Failed {
			log.Printf("✗ %s", topic)
		}
		os.Exit(1)
	}
}
