package entity

import "github.com/gofrs/uuid/v5"

type UserType string

const (
	UserTypeEmployee UserType = "Employee"
	UserTypeAdmin    UserType = "Admin"
)

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Type  UserType  `json:"type"`
}

func (u User) IsAdmin() bool {
	return u.Type == UserTypeAdmin
}
