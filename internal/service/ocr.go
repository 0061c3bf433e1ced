package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultOCRURL = "https://api.ocr.space/parse/image"

// ErrOCRUnavailable is returned when no API key is configured.
var ErrOCRUnavailable = errors.New("ocr service not configured")

// OCRService extracts text from recipe photos through the OCR.space API.
// It satisfies TextExtractor; failures are reported as errors and the
// recipe parser converts them into fallback ingredient sets.
type OCRService struct {
	client *resty.Client
	apiKey string
	logger *zap.Logger
}

// NewOCRService creates an OCRService. An empty apiKey leaves the service
// permanently unavailable, which callers treat as a hard OCR failure.
func NewOCRService(apiKey string, logger *zap.Logger) *OCRService {
	client := resty.New().
		SetBaseURL(defaultOCRURL).
		SetTimeout(30 * time.Second)
	return &OCRService{client: client, apiKey: apiKey, logger: logger}
}

// SetBaseURL overrides the upstream endpoint, used by tests.
func (s *OCRService) SetBaseURL(url string) {
	s.client.SetBaseURL(url)
}

type ocrSpaceResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool        `json:"IsErroredOnProcessing"`
	ErrorMessage          interface{} `json:"ErrorMessage"`
}

// ExtractText runs the image through a grayscale pre-pass and submits it
// for recognition. Returns the concatenated parsed text; empty string plus
// an error on any failure.
func (s *OCRService) ExtractText(ctx context.Context, img []byte) (string, error) {
	if s.apiKey == "" {
		return "", ErrOCRUnavailable
	}

	prepared := s.preprocess(img)
	encoded := base64.StdEncoding.EncodeToString(prepared)

	var payload ocrSpaceResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"apikey":      s.apiKey,
			"base64Image": "data:image/jpeg;base64," + encoded,
			"language":    "eng",
			"OCREngine":   "2",
		}).
		SetResult(&payload).
		Post("")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("ocr API returned %s", resp.Status())
	}
	if payload.IsErroredOnProcessing {
		return "", fmt.Errorf("ocr processing failed: %v", payload.ErrorMessage)
	}

	var text bytes.Buffer
	for _, result := range payload.ParsedResults {
		text.WriteString(result.ParsedText)
		text.WriteString("\n")
	}
	return text.String(), nil
}

// preprocess re-encodes the image as grayscale JPEG to improve contrast
// for the recognition engine. Bytes that do not decode as an image are
// sent unchanged; the API performs its own normalization.
func (s *OCRService) preprocess(raw []byte) []byte {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		s.logger.Debug("image decode failed, sending raw bytes", zap.Error(err))
		return raw
	}

	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(src.At(x, y)))
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, gray, &jpeg.Options{Quality: 90}); err != nil {
		return raw
	}
	return buf.Bytes()
}
