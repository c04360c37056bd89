package get_available_masters

import (
	"time"

	"github.com/bsmobile/salon-booking/internal/domain"
	getAvailableMasters "github.com/bsmobile/salon-booking/internal/usecase/get_available_masters"
	"github.com/bsmobile/salon-booking/pkg/types"
)

// MasterResponse HTTP модель свободного мастера
type MasterResponse struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	Specialty string `json:"specialty"`
}

// AvailableMastersResponse HTTP модель ответа
type AvailableMastersResponse struct {
	ServiceID int64            `json:"serviceId"`
	Date      string           `json:"date"`      // "2025-10-15"
	StartTime string           `json:"startTime"` // "11:30"
	Masters   []MasterResponse `json:"masters"`
}

// ToUseCaseRequest формирует запрос к use case из параметров HTTP запроса
func ToUseCaseRequest(serviceID int64, dateStr, timeStr string) (*getAvailableMasters.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableMasters.Request{
		ServiceID: serviceID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableMasters.Response) *AvailableMastersResponse {
	masters := make([]MasterResponse, 0, len(resp.Masters))
	for _, m := range resp.Masters {
		masters = append(masters, MasterResponse{
			ID:        m.ID,
			FullName:  m.FullName,
			Specialty: m.Specialty,
		})
	}

	return &AvailableMastersResponse{
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		Masters:   masters,
	}
}
