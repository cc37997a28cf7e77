package request

import (
	"fuelpos/internal/domain/user"
	"fuelpos/internal/pkg/password"
)

type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	MobileNo string `json:"mobile_no" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (r CreateUserRequest) ToDomain() (*user.User, error) {
	username, err := user.NewUsername(r.Username)
	if err != nil {
		return nil, err
	}
	mobileNo, err := user.NewMobileNo(r.MobileNo)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, err
	}
	return user.NewUser(r.FullName, username, hash, mobileNo, role), nil
}

type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
