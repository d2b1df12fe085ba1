// Command regionstats prints brightness profiles for every recognized
// word region in a screenshot. Useful for tuning the activation
// thresholds against real captures.
package main

import (
	"flag"
	"fmt"
	"os"

	"netshot/internal/imgio"
	"netshot/internal/ocr"
	"netshot/internal/vision"
)

func main() {
	imagePath := flag.String("image", "", "Path to screenshot image")
	languages := flag.String("languages", ocr.DefaultLanguages, "Tesseract language list")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: regionstats -image <path> [-languages chi_sim+eng]")
		os.Exit(1)
	}

	img, err := imgio.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	engine, err := ocr.NewEngine(*languages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create OCR engine: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	_, regions, err := engine.Recognize(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OCR failed: %v\n", err)
		os.Exit(1)
	}

	gray := vision.Grayscale(img)

	fmt.Printf("%d regions:\n", len(regions))
	fmt.Printf("%-20s %8s %8s %8s %10s %10s\n", "Text", "Mean", "StdDev", "Median", "Sharpness", "Level")
	for _, r := range regions {
		p := vision.Measure(vision.SampleRegion(gray, r.Box))
		if p.InsufficientData {
			fmt.Printf("%-20s %8s\n", r.Text, "<empty>")
			continue
		}
		fmt.Printf("%-20s %8.1f %8.1f %8.1f %10.1f %10s\n",
			r.Text, p.Mean, p.StdDev, p.Median, p.Sharpness, vision.LevelFromMean(p.Mean))
	}
}
