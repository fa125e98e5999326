package model

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type Name struct {
	First  string `json:"first"`
	Middle string `json:"middle,omitempty"`
	Last   string `json:"last"`
}

// Parts returns the non-empty name parts, in order.
func (n Name) Parts() []string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.First, n.Middle, n.Last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

type User struct {
	ID UserID

	// Handle is the application identifier, exposed as "userId"
	Handle string

	Name         Name
	Email        string
	PasswordHash string
	Avatar       string
	LastLogin    *time.Time
	CreatedAt    time.Time
}

func NewUser(name Name, handle string, email string, passwordHash string) *User {
	return &User{
		ID:           NewUserID(),
		Handle:       handle,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Avatar:       DefaultAvatar(name.First),
		CreatedAt:    time.Now(),
	}
}

func DefaultAvatar(seed string) string {
	return fmt.Sprintf("https://avatars.dicebear.com/api/identicon/%s.svg", url.PathEscape(seed))
}

type UserView struct {
	ID     string `json:"id"`
	Name   Name   `json:"name"`
	Handle string `json:"userId"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Populate implements Materializable. Users carry no references.
func (u *User) Populate(ctx context.Context, resolver Resolver) error {
	return nil
}

// Clean implements Materializable.
func (u *User) Clean() UserView {
	return UserView{
		ID:     string(u.ID),
		Name:   u.Name,
		Handle: u.Handle,
		Email:  u.Email,
		Avatar: u.Avatar,
	}
}

var _ Materializable[UserView] = &User{}
