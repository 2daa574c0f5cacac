package templates

import (
	"context"
	"strings"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/usecase"
	"boardingpass-service/pkg/logger"
)

// symbologies that carry BCBP data
var boardingPassFormats = map[string]bool{
	"PDF417":     true,
	"AZTEC":      true,
	"QRCODE":     true,
	"DATAMATRIX": true,
}

// BoardingPassHandler handles payloads decoded from boarding pass barcodes
type BoardingPassHandler struct {
	processor *usecase.BoardingPassProcessor
	logger    logger.Logger
}

// NewBoardingPassHandler creates a new boarding pass handler
func NewBoardingPassHandler(processor *usecase.BoardingPassProcessor, logger logger.Logger) *BoardingPassHandler {
	return &BoardingPassHandler{
		processor: processor,
		logger:    logger,
	}
}

// Name identifies the handler
func (h *BoardingPassHandler) Name() string {
	return "bcbp"
}

// CanHandle accepts the 2D symbologies used on boarding passes. An empty
// format is accepted since not every reader reports one.
func (h *BoardingPassHandler) CanHandle(format string) bool {
	key := normalizeFormat(format)
	return key == "" || boardingPassFormats[key]
}

// Process decodes the payload as a boarding pass
func (h *BoardingPassHandler) Process(ctx context.Context, payload entity.RawBarcodePayload) (*entity.ScanResult, error) {
	h.logger.Debug("Processing boarding pass payload", "format", payload.Format)
	return h.processor.Process(ctx, payload), nil
}

// normalizeFormat folds "PDF_417", "pdf-417" and "PDF 417" to "PDF417"
func normalizeFormat(format string) string {
	replacer := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToUpper(replacer.Replace(strings.TrimSpace(format)))
}
