package response

import (
	"fuelpos/internal/usecase/queries"
)

type LoginResponse struct {
	Status      string                      `json:"status"`
	Message     string                      `json:"message"`
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

func NewLoginResponse(token string, user *queries.AuthorizedUserView) LoginResponse {
	return LoginResponse{
		Status:      "success",
		Message:     "Login successful",
		AccessToken: token,
		User:        user,
	}
}
