package models

import "github.com/bsmobile/salon-booking/internal/domain"

// CategoryResponse ответ с данными категории
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryListResponse ответ со списком категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	CategoryID      int64   `json:"categoryId"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// MasterResponse ответ с данными мастера
type MasterResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	FullName  string `json:"fullName"`
	Specialty string `json:"specialty"`
}

// MasterListResponse ответ со списком мастеров
type MasterListResponse struct {
	Masters []MasterResponse `json:"masters"`
}

// Методы конвертации

// FromDomainCategoryList конвертирует список категорий в DTO
func FromDomainCategoryList(categories []*domain.Category) *CategoryListResponse {
	list := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		list = append(list, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return &CategoryListResponse{Categories: list}
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	list := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		list = append(list, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			CategoryID:      s.CategoryID,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return &ServiceListResponse{Services: list}
}

// FromDomainMasterList конвертирует список мастеров в DTO
func FromDomainMasterList(masters []*domain.Master) *MasterListResponse {
	list := make([]MasterResponse, 0, len(masters))
	for _, m := range masters {
		list = append(list, MasterResponse{
			ID:        m.ID,
			Name:      m.Name,
			Surname:   m.Surname,
			FullName:  m.FullName(),
			Specialty: m.Specialty,
		})
	}
	return &MasterListResponse{Masters: list}
}
