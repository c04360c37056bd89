package check_slot

import (
	"time"

	"github.com/bsmobile/salon-booking/internal/domain"
	checkSlot "github.com/bsmobile/salon-booking/internal/usecase/check_slot"
	"github.com/bsmobile/salon-booking/pkg/types"
)

// CheckSlotResponse HTTP модель ответа проверки доступности
type CheckSlotResponse struct {
	ServiceID int64  `json:"serviceId"`
	MasterID  int64  `json:"masterId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "11:30"
	Available bool   `json:"available"`
}

// ToUseCaseRequest формирует запрос к use case из параметров HTTP запроса
func ToUseCaseRequest(serviceID, masterID int64, dateStr, timeStr string) (*checkSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	return &checkSlot.Request{
		ServiceID: serviceID,
		MasterID:  masterID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlot.Response) *CheckSlotResponse {
	return &CheckSlotResponse{
		ServiceID: resp.ServiceID,
		MasterID:  resp.MasterID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		Available: resp.Available,
	}
}
