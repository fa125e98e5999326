package gorm

import (
	"time"

	"github.com/bornholm/backlog/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Handle string `gorm:"unique"`
	Email  string `gorm:"unique"`

	FirstName  string
	MiddleName string
	LastName   string

	PasswordHash string
	Avatar       string
	LastLogin    *time.Time
}

func fromUser(u *model.User) *User {
	return &User{
		ID:           string(u.ID),
		CreatedAt:    u.CreatedAt,
		Handle:       u.Handle,
		Email:        u.Email,
		FirstName:    u.Name.First,
		MiddleName:   u.Name.Middle,
		LastName:     u.Name.Last,
		PasswordHash: u.PasswordHash,
		Avatar:       u.Avatar,
		LastLogin:    u.LastLogin,
	}
}

func toUser(u *User) *model.User {
	return &model.User{
		ID:     model.UserID(u.ID),
		Handle: u.Handle,
		Name: model.Name{
			First:  u.FirstName,
			Middle: u.MiddleName,
			Last:   u.LastName,
		},
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Avatar:       u.Avatar,
		LastLogin:    u.LastLogin,
		CreatedAt:    u.CreatedAt,
	}
}
