// Package ocr provides OCR (Optical Character Recognition) for status
// screenshots using Tesseract.
package ocr

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"netshot/pkg/geometry"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// DefaultLanguages covers the mixed Chinese/English text on mobile-network
// status screens.
const DefaultLanguages = "chi_sim+eng"

// TextRegion is one recognized word with its location in the source image.
type TextRegion struct {
	Text       string           `json:"text"`
	Box        geometry.RectInt `json:"box"`
	Confidence float64          `json:"confidence"` // 0-1
}

// Engine provides OCR functionality using Tesseract.
type Engine struct {
	client *gosseract.Client
}

// NewEngine creates a new OCR engine. languages is a "+"-separated
// Tesseract language list; empty selects DefaultLanguages.
func NewEngine(languages string) (*Engine, error) {
	if languages == "" {
		languages = DefaultLanguages
	}

	client := gosseract.NewClient()
	if err := client.SetLanguage(strings.Split(languages, "+")...); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}

	return &Engine{client: client}, nil
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// Recognize performs OCR on an image and returns the full recognized text
// plus per-word regions. Region boxes are in the same pixel frame as the
// supplied image: preprocessing never rescales, so the boxes can be used
// directly to sample brightness from the original pixels.
func (e *Engine) Recognize(img image.Image) (string, []TextRegion, error) {
	if img == nil {
		return "", nil, fmt.Errorf("nil image")
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return "", nil, fmt.Errorf("zero-dimension image")
	}

	processed, err := preprocess(img)
	if err != nil {
		return "", nil, err
	}
	defer processed.Close()

	buf, err := gocv.IMEncode(gocv.PNGFileExt, processed)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode image: %w", err)
	}
	defer buf.Close()

	// PSM 6 = assume a single uniform block of text
	if err := e.client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", nil, fmt.Errorf("failed to set PSM: %w", err)
	}
	if err := e.client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return "", nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", nil, fmt.Errorf("OCR failed: %w", err)
	}
	text = strings.TrimSpace(text)

	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get boxes: %w", err)
	}

	var regions []TextRegion
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		regions = append(regions, TextRegion{
			Text: word,
			Box: geometry.RectInt{
				X:      box.Box.Min.X,
				Y:      box.Box.Min.Y,
				Width:  box.Box.Dx(),
				Height: box.Box.Dy(),
			},
			Confidence: clamp01(box.Confidence / 100),
		})
	}

	return text, regions, nil
}

// preprocess prepares a screenshot for OCR: grayscale, Gaussian denoise,
// then adaptive thresholding for clean text/background separation. All
// steps are per-pixel; image geometry is preserved.
func preprocess(img image.Image) (gocv.Mat, error) {
	rgba := toRGBA(img)

	src, err := gocv.ImageToMatRGBA(rgba)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("failed to convert image: %w", err)
	}
	defer src.Close()

	gray := gocv.NewMat()
	gocv.CvtColor(src, &gray, gocv.ColorRGBAToGray)

	blurred := gocv.NewMat()
	gocv.GaussianBlur(gray, &blurred, image.Point{X: 5, Y: 5}, 0, 0, gocv.BorderDefault)
	gray.Close()

	thresh := gocv.NewMat()
	gocv.AdaptiveThreshold(blurred, &thresh, 255, gocv.AdaptiveThresholdGaussian, gocv.ThresholdBinary, 11, 2)
	blurred.Close()

	return thresh, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// AverageConfidence returns the mean confidence across regions, 0 when
// there are none.
func AverageConfidence(regions []TextRegion) float64 {
	if len(regions) == 0 {
		return 0
	}
	var sum float64
	for _, r := range regions {
		sum += r.Confidence
	}
	return sum / float64(len(regions))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
