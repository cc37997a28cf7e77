package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Attendants and admins share one account type; the role
// decides what the HTTP layer lets them reach. Accounts are never hard
// deleted, only deactivated.
type User struct {
	id           uuid.UUID
	fullName     string
	username     Username
	passwordHash string
	mobileNo     MobileNo
	role         Role
	isActive     bool
	createdAt    time.Time
}

func NewUser(fullName string, username Username, passwordHash string, mobileNo MobileNo, role Role) *User {
	return &User{
		id:           uuid.New(),
		fullName:     fullName,
		username:     username,
		passwordHash: passwordHash,
		mobileNo:     mobileNo,
		role:         role,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	fullName string,
	username Username,
	passwordHash string,
	mobileNo MobileNo,
	role Role,
	isActive bool,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		fullName:     fullName,
		username:     username,
		passwordHash: passwordHash,
		mobileNo:     mobileNo,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) Activate() {
	u.isActive = true
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FullName() string     { return u.fullName }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) MobileNo() MobileNo   { return u.mobileNo }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
