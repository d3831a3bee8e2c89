package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"` // identity provider uid
	Email     string    `gorm:"unique;not null" json:"email"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Provider  string    `json:"provider"`
	Address   Address   `gorm:"embedded" json:"address"`
	Orders    []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Address model embedded in User
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

// Role tags; admin is a superset of moderator.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

type UserRole struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"index;uniqueIndex:idx_user_role" json:"user_id"`
	Role   Role   `gorm:"type:VARCHAR(20);uniqueIndex:idx_user_role" json:"role"`
}

// HasAdmin reports whether the role set contains the admin tag.
func HasAdmin(roles []UserRole) bool {
	for _, r := range roles {
		if r.Role == RoleAdmin {
			return true
		}
	}
	return false
}

// HasModerator is satisfied by either tag; admins moderate too.
func HasModerator(roles []UserRole) bool {
	for _, r := range roles {
		if r.Role == RoleModerator || r.Role == RoleAdmin {
			return true
		}
	}
	return false
}

type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ActivityLog records back-office mutations for the audit screen.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ActorID   string    `gorm:"index" json:"actor_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
