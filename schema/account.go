package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Role is the closed set of actor roles. Authorization checks switch
// over it exhaustively and treat anything else as a deny.
type Role string

const (
	RoleRequester Role = "user"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether a role read from storage or request input is
// one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRequester, RoleVolunteer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Account is the identity record of a requester, volunteer or admin.
// Aggregate counters live in the mongo Profile document, not here.
type Account struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name           string         `json:"name"`
	Email          string         `json:"email" gorm:"unique_index"`
	Username       string         `json:"username" gorm:"unique_index"`
	PasswordDigest string         `json:"-"`
	Role           Role           `json:"role" sql:"default:'user'"`
	Skills         pq.StringArray `json:"skills" gorm:"type:text[]"`
	Location       string         `json:"location"`
	Bio            string         `json:"bio"`
	Phone          string         `json:"phone"`
	Enabled        bool           `json:"enabled" sql:"default:true"`
	Suspended      bool           `json:"suspended" sql:"default:false"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// UserDigest is the read-side join shape attached to pickups, messages
// and audit entries for display. It never carries credentials.
type UserDigest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
}

// Digest returns the display shape of an account.
func (a *Account) Digest() *UserDigest {
	return &UserDigest{
		ID:       a.ID.String(),
		Name:     a.Name,
		Username: a.Username,
		Email:    a.Email,
		Phone:    a.Phone,
		Role:     a.Role,
	}
}
