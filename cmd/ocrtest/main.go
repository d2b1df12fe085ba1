// Command ocrtest runs OCR on a screenshot and dumps the recognized text
// and per-word regions, for checking recognition quality in isolation.
package main

import (
	"flag"
	"fmt"
	"os"

	"netshot/internal/imgio"
	"netshot/internal/ocr"
)

func main() {
	imagePath := flag.String("image", "", "Path to screenshot image")
	languages := flag.String("languages", ocr.DefaultLanguages, "Tesseract language list")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: ocrtest -image <path> [-languages chi_sim+eng]")
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

	text, regions, err := engine.Recognize(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OCR failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recognized text:\n%s\n\n", text)
	fmt.Printf("%d word regions (average confidence %.2f):\n", len(regions), ocr.AverageConfidence(regions))
	fmt.Printf("%-20s %6s %6s %6s %6s %10s\n", "Text", "X", "Y", "W", "H", "Conf")
	for _, r := range regions {
		fmt.Printf("%-20s %6d %6d %6d %6d %10.2f\n",
			r.Text, r.Box.X, r.Box.Y, r.Box.Width, r.Box.Height, r.Confidence)
	}
}
