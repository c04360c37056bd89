package check_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bsmobile/salon-booking/internal/api/handlers"
	checkSlot "github.com/bsmobile/salon-booking/internal/usecase/check_slot"
)

const (
	msgInvalidServiceID  = "некорректный ID услуги"
	msgInvalidMasterID   = "некорректный ID мастера"
	msgMissingParams     = "обязательные параметры: serviceId, masterId, date, time"
	msgInvalidDateOrTime = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/check
// Query params: serviceId, masterId, date (YYYY-MM-DD), time (HH:MM) — все обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceIDStr := query.Get("serviceId")
	masterIDStr := query.Get("masterId")
	dateStr := query.Get("date")
	timeStr := query.Get("time")

	if serviceIDStr == "" || masterIDStr == "" || dateStr == "" || timeStr == "" {
		h.logger.Warn("GET /availability/check - Missing required params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	masterID, err := strconv.ParseInt(masterIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(serviceID, masterID, dateStr, timeStr)
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("GET /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingParams)

		default:
			h.logger.Error("GET /availability/check - Failed to check slot: service_id=%d, master_id=%d, error=%v",
				serviceID, masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/check - service_id=%d, master_id=%d, date=%s, time=%s, available=%v",
		serviceID, masterID, dateStr, timeStr, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
