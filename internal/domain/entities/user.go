package entities

import (
	"errors"
	"strings"
)

type User struct {
	Id       int64
	Username string
}

func NewUser(username string) *User {
	return &User{
		Username: strings.TrimSpace(username),
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	return nil
}
