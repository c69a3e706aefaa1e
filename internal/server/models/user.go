package models

import "time"

// User is a registered account. PasswordHash never leaves the server;
// handlers and services expose users only through PublicUser.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	City         string
	Phone        string
	CreatedAt    time.Time
}

// PublicUser is the safe projection of a User returned to clients.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	City      string    `json:"city,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips credential material from a User.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		City:      u.City,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
