package response

import (
	"github.com/google/uuid"
)

type CreateUserResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`
}

func NewCreateUserResponse(userID uuid.UUID) CreateUserResponse {
	return CreateUserResponse{
		Status:  "success",
		Message: "User created successfully",
		UserID:  userID,
	}
}

type SetUserActiveResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewSetUserActiveResponse(active bool) SetUserActiveResponse {
	msg := "User deactivated successfully"
	if active {
		msg = "User activated successfully"
	}
	return SetUserActiveResponse{
		Status:  "success",
		Message: msg,
	}
}
