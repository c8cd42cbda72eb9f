package get_services

import "github.com/m04kA/SMC-BookingPortal/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Duration int     `json:"duration"` // минуты
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// ListResponse список услуг каталога
type ListResponse struct {
	Services []ServiceResponse `json:"services"`
}

func toResponse(list []domain.Service) *ListResponse {
	services := make([]ServiceResponse, len(list))
	for i, s := range list {
		services[i] = ServiceResponse{
			ID:       s.ID,
			Title:    s.Title,
			Duration: s.DurationMinutes,
			Price:    s.Price,
			ImageURL: s.ImageURL,
		}
	}
	return &ListResponse{Services: services}
}
