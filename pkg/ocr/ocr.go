package ocr

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// ocrLanguages covers the mixed Chinese/English quiz text on screen.
const ocrLanguages = "chi_sim+eng"

// ExtractTextFromImage performs light preprocessing plus several Tesseract
// page-segmentation passes over the frame at path and returns the longest
// recognized text. Returns ErrNoText when every pass comes back blank.
func ExtractTextFromImage(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open frame: %w", err)
	}
	gray := imaging.Grayscale(img)
	gray = imaging.AdjustContrast(gray, 15)
	gray = imaging.Sharpen(gray, 0.7)
	if gray.Bounds().Dy() < 900 {
		gray = imaging.Resize(gray, 0, 1300, imaging.Lanczos)
	}
	bin := adaptiveThreshold(gray, 15, 7)

	tmp := path
	if tmpFile, terr := os.CreateTemp("", "frame-*.png"); terr == nil {
		candidate := tmpFile.Name()
		_ = tmpFile.Close()
		if serr := imaging.Save(bin, candidate); serr == nil {
			tmp = candidate
		} else {
			_ = os.Remove(candidate)
		}
	}
	if tmp != path {
		defer os.Remove(tmp)
	}

	// Quiz frames vary between one dense block and sparse overlaid text,
	// so try several segmentation modes and keep the richest result.
	psmModes := []gosseract.PageSegMode{
		gosseract.PSM_SINGLE_BLOCK,
		gosseract.PSM_SPARSE_TEXT,
		gosseract.PSM_SPARSE_TEXT_OSD,
		gosseract.PSM_AUTO,
	}
	var variants []string
	for _, mode := range psmModes {
		cl := gosseract.NewClient()
		_ = cl.SetLanguage(ocrLanguages)
		_ = cl.SetPageSegMode(mode)
		cl.SetImage(tmp)
		if t, terr := cl.Text(); terr == nil {
			variants = append(variants, collapseText(t))
		}
		cl.Close()
	}
	// Unprocessed pass catches frames where binarization eats thin strokes.
	cl := gosseract.NewClient()
	_ = cl.SetLanguage(ocrLanguages)
	cl.SetImage(path)
	if t, terr := cl.Text(); terr == nil {
		variants = append(variants, collapseText(t))
	}
	cl.Close()

	best := ""
	for _, v := range variants {
		if len(v) > len(best) {
			best = v
		}
	}
	best = fixCommonMisreads(best)
	if strings.TrimSpace(best) == "" {
		return "", ErrNoText
	}
	log.Printf("OCR frame %s passes=%d length=%d snippet=%q", path, len(variants), len(best), snippet(best, 120))
	return best, nil
}
