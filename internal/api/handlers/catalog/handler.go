package catalog

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bsmobile/salon-booking/internal/api/handlers"
	catalogService "github.com/bsmobile/salon-booking/internal/service/catalog"
	"github.com/bsmobile/salon-booking/pkg/ptr"
)

const (
	msgInvalidCategoryID = "некорректный ID категории"
	msgCategoryNotFound  = "категория не найдена"
	msgInvalidPriceRange = "некорректный диапазон цен"
)

// Handler обслуживает публичный каталог: категории, услуги, мастера
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleListCategories GET /api/v1/categories
func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /categories - Failed to list categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /categories - Returned %d categories", len(result.Categories))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListServices GET /api/v1/categories/{categoryId}/services
func (h *Handler) HandleListServices(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID, err := strconv.ParseInt(vars["categoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /categories/{id}/services - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	result, err := h.service.ListServicesByCategory(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrCategoryNotFound):
			h.logger.Warn("GET /categories/{id}/services - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("GET /categories/{id}/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)

		default:
			h.logger.Error("GET /categories/{id}/services - Failed to list services: category_id=%d, error=%v", categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /categories/{id}/services - Returned %d services for category_id=%d",
		len(result.Services), categoryID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListServicesByPrice GET /api/v1/services
// Query params: minPrice, maxPrice (опционально)
func (h *Handler) HandleListServicesByPrice(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	minPrice := 0.0
	maxPrice := math.MaxFloat64

	if raw := query.Get("minPrice"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.logger.Warn("GET /services - Invalid minPrice: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPriceRange)
			return
		}
		minPrice = parsed
	}

	if raw := query.Get("maxPrice"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.logger.Warn("GET /services - Invalid maxPrice: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPriceRange)
			return
		}
		maxPrice = parsed
	}

	result, err := h.service.ListServicesByPriceRange(r.Context(), minPrice, maxPrice)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("GET /services - Invalid price range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPriceRange)

		default:
			h.logger.Error("GET /services - Failed to list services: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services - Returned %d services", len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListMasters GET /api/v1/masters
// Query params: specialty (опционально)
func (h *Handler) HandleListMasters(w http.ResponseWriter, r *http.Request) {
	var specialty *string
	if raw := r.URL.Query().Get("specialty"); raw != "" {
		specialty = ptr.Ptr(raw)
	}

	result, err := h.service.ListMasters(r.Context(), specialty)
	if err != nil {
		h.logger.Error("GET /masters - Failed to list masters: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /masters - Returned %d masters", len(result.Masters))
	handlers.RespondJSON(w, http.StatusOK, result)
}
