package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("invalid username format")
	ErrInvalidMobileNo = errors.New("invalid mobile number format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 6 characters long")
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,50}$`)
	mobileNoRegex = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type MobileNo struct {
	value string
}

func NewMobileNo(s string) (MobileNo, error) {
	s = strings.TrimSpace(s)
	if !mobileNoRegex.MatchString(s) {
		return MobileNo{}, ErrInvalidMobileNo
	}
	return MobileNo{value: s}, nil
}

func (m MobileNo) Value() string {
	return m.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 6 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	username Username
	password Password
}

func NewCredentials(username, password string) (Credentials, error) {
	u, err := NewUsername(username)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{username: u, password: p}, nil
}

func (c Credentials) Username() Username { return c.username }
func (c Credentials) Password() Password { return c.password }
