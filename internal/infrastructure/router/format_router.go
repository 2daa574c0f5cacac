package router

import (
	"boardingpass-service/internal/usecase"
	"boardingpass-service/pkg/logger"
)

// FormatRouter routes payloads to handlers based on barcode format
type FormatRouter struct {
	handlers []usecase.PayloadHandler
	logger   logger.Logger
}

// NewFormatRouter creates a new format router
func NewFormatRouter(logger logger.Logger) *FormatRouter {
	return &FormatRouter{
		handlers: make([]usecase.PayloadHandler, 0),
		logger:   logger,
	}
}

// Register registers a handler; earlier registrations win
func (r *FormatRouter) Register(handler usecase.PayloadHandler) {
	r.handlers = append(r.handlers, handler)
	r.logger.Info("Registered payload handler", "handler", handler.Name())
}

// GetHandler returns the appropriate handler for a given format
func (r *FormatRouter) GetHandler(format string) usecase.PayloadHandler {
	for _, handler := range r.handlers {
		if handler.CanHandle(format) {
			return handler
		}
	}
	return nil
}
