package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"go-jobpost-extraction/internal/config"
	"go-jobpost-extraction/internal/extractor"
	"go-jobpost-extraction/internal/extractor/browser"
	"go-jobpost-extraction/internal/extractor/scrape"
	"go-jobpost-extraction/internal/extractor/snapshot"
	"go-jobpost-extraction/internal/llm"
)

func main() {
	url := flag.String("url", "", "job posting URL to extract")
	configPath := flag.String("config", "configs/config.yaml", "path to YAML config")
	flag.Parse()

	if *url == "" {
		log.Fatal("❌ Missing -url flag")
	}

	//load config
	cfg := config.Load(*configPath)
	log.Printf("🔧 Config loaded. Extracting: %s", *url)

	pipeline := buildPipeline(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ScrapeTimeout+cfg.NavigationTimeout+cfg.SnapshotTimeout)
	defer cancel()

	log.Println("🚀 Starting extraction pipeline...")
	job, err := pipeline.Extract(ctx, *url)
	if err != nil {
		log.Fatalf("❌ Extraction failed: %v", err)
	}

	log.Printf("✅ Extracted %q @ %q via tier %s", job.Title, job.Company, job.ExtractionTier)

	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to marshal result: %v", err)
	}
	os.Stdout.Write(append(data, '\n'))
}

// buildPipeline wires the three tiers in escalation order. Tiers with missing
// credentials still get registered; they skip themselves at runtime.
func buildPipeline(cfg *config.Config) *extractor.Pipeline {
	client := llm.NewGroqClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqVisionModel, nil)

	tier1 := scrape.New(
		scrape.NewFirecrawlClient(cfg.FirecrawlEndpoint, cfg.FirecrawlAPIKey, nil),
		client,
	)
	tier2 := browser.New(browser.NewPlaywrightRenderer(cfg.NavigationTimeout))
	tier3 := snapshot.New(
		snapshot.NewScreenshotClient(cfg.ScreenshotEndpoint, cfg.ScreenshotAPIKey, nil),
		client,
		nil,
	)

	return extractor.NewPipeline(tier1, tier2, tier3)
}
