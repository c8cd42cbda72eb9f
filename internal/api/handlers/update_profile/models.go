package update_profile

import "github.com/m04kA/SMC-BookingPortal/internal/service/account"

// UpdateProfileRequest тело запроса на обновление профиля
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ProfileResponse профиль после сохранения
type ProfileResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (r *UpdateProfileRequest) ToServiceRequest() *account.UpdateProfileRequest {
	return &account.UpdateProfileRequest{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}
