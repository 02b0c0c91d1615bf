// Package rest provides the HTTP handlers for the dealership API.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abryzgalov/motostore/internal/inventory"
	"github.com/abryzgalov/motostore/internal/service"
	"github.com/abryzgalov/motostore/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  service.DealerService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the dealership API with the provided service.
func NewHandler(service service.DealerService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the dealership service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", h.Catalog)
		r.Get("/catalog/{category}", h.CatalogByCategory)

		r.Route("/purchases", func(r chi.Router) {
			r.Post("/", h.Purchase)
			r.Post("/batch", h.PurchaseBatch)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// Catalog returns the full floor listing.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request to list catalog")
	sections, err := h.service.Catalog(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving catalog", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch catalog")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved catalog", "sections", len(sections))
	web.RespondJSON(w, mLogger, http.StatusOK, sections)
}

// CatalogByCategory returns one section of the floor listing.
func (h *Handler) CatalogByCategory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	category := r.PathValue("category")
	mLogger.DebugContext(r.Context(), "Received request to list category", "category", category)
	section, err := h.service.CatalogByCategory(r.Context(), category)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			mLogger.WarnContext(r.Context(), "Category not found", "category", category)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Category %s not found", category))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving category", "category", category, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve category %s", category))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved category", "category", category, "bikes", len(section.Bikes))
	web.RespondJSON(w, mLogger, http.StatusOK, section)
}

// Purchase handles a single purchase request.
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var purchaseDto service.PurchaseDto
	if err := json.NewDecoder(r.Body).Decode(&purchaseDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received purchase request", "purchase", purchaseDto)
	if !h.validateStruct(w, r, mLogger, purchaseDto) {
		return
	}

	receipt, err := h.service.Purchase(r.Context(), purchaseDto)
	if err != nil {
		h.respondPurchaseError(w, r, mLogger, purchaseDto.Category, purchaseDto.Bike, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Purchase completed", "receipt_id", receipt.ID, "bike", receipt.Bike, "total", receipt.Total)
	web.RespondJSON(w, mLogger, http.StatusCreated, receipt)
}

// PurchaseBatch handles a batch purchase request against one category.
func (h *Handler) PurchaseBatch(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var batchDto service.BatchPurchaseDto
	if err := json.NewDecoder(r.Body).Decode(&batchDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received batch purchase request", "batch", batchDto)
	if !h.validateStruct(w, r, mLogger, batchDto) {
		return
	}

	result, err := h.service.PurchaseBatch(r.Context(), batchDto)
	if err != nil {
		h.respondPurchaseError(w, r, mLogger, batchDto.Category, "", err)
		return
	}
	mLogger.InfoContext(r.Context(), "Batch purchase completed",
		"category", batchDto.Category, "sold", len(result.Sold), "unavailable", len(result.Unavailable))
	web.RespondJSON(w, mLogger, http.StatusOK, result)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// validateStruct runs the request DTO through the validator and writes the
// field-level error response on failure. Returns true when the DTO is valid.
func (h *Handler) validateStruct(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dto any) bool {
	err := h.validate.Struct(dto)
	if err == nil {
		return true
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		// If the error is a validation error, we can extract field-specific errors.
		errorResponse := make(map[string]string)
		for _, fieldErr := range validationErrors {
			// fieldErr.Tag() returns "required", "gte", etc.
			errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
		}
		mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
		web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
		return false
	}
	mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
	web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
	return false
}

// respondPurchaseError maps service failures to HTTP statuses.
func (h *Handler) respondPurchaseError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, category, bike string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownCategory):
		mLogger.WarnContext(r.Context(), "Category not found", "category", category)
		web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Category %s not found", category))
	case errors.Is(err, inventory.ErrNotAvailable):
		mLogger.WarnContext(r.Context(), "Bike not available", "category", category, "bike", bike)
		web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("%s is out of our inventory", bike))
	default:
		mLogger.ErrorContext(r.Context(), "Error processing purchase", "category", category, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to process purchase")
	}
}

// loggerWithReqID returns the handler logger enriched with the request ID.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	if reqID, ok := web.GetRequestID(r.Context()); ok {
		return h.logger.With("request_id", reqID)
	}
	return h.logger
}
