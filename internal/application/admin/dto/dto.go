package dto

import "time"

// AccessCheckDTO is the /admin/check payload. It is derived solely from the
// presence (and owner flag) of the caller's admin row.
type AccessCheckDTO struct {
	Authenticated bool `json:"authenticated"`
	IsAdmin       bool `json:"is_admin"`
	IsOwner       bool `json:"is_owner"`
}

type AdminDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	IsOwner   bool      `json:"is_owner"`
	CreatedBy *uint     `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UserDTO struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	EmailVerified bool      `json:"email_verified"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
}
