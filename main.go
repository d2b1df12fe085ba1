// Command netshot analyzes a mobile-network status screenshot: it runs
// OCR, classifies which operator label is visually active, extracts
// signal and speed-test fields, and prints the structured result as JSON.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"netshot/internal/config"
	"netshot/internal/imgio"
	"netshot/internal/ocr"
	"netshot/internal/pipeline"
	"netshot/internal/version"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	imagePath := flag.String("image", "", "Path to screenshot (PNG, JPEG, GIF, BMP, or TIFF)")
	configPath := flag.String("config", "", "Optional YAML config file")
	languages := flag.String("languages", "", "Tesseract language list (default chi_sim+eng)")
	pretty := flag.Bool("pretty", true, "Indent JSON output")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: netshot -image <path> [-config <path>] [-languages chi_sim+eng] [-pretty=false]")
		os.Exit(1)
	}

	log.Printf("netshot v%s", version.Version)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *languages != "" {
		cfg.Languages = *languages
	}

	img, err := imgio.Load(*imagePath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}
	bounds := img.Bounds()
	log.Printf("Loaded image: %dx%d pixels", bounds.Dx(), bounds.Dy())

	engine, err := ocr.NewEngine(cfg.Languages)
	if err != nil {
		log.Fatalf("Failed to create OCR engine: %v", err)
	}
	defer engine.Close()

	pipe, err := pipeline.New(engine, cfg)
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}

	result, err := pipe.Analyze(img)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	data, err := result.JSON(*pretty)
	if err != nil {
		log.Fatalf("Failed to serialize result: %v", err)
	}
	fmt.Println(string(data))
}
