package users

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStatus is the account state of an admin-managed user
type UserStatus string

const (
	UserActive    UserStatus = "Active"
	UserSuspended UserStatus = "Suspended"
	UserDeleted   UserStatus = "Deleted"
)

// AdminUser is the admin view of a marketplace user account
type AdminUser struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`
	WalletAddress string         `json:"wallet_address"`
	DisplayName   string         `json:"display_name"`
	Status        UserStatus     `gorm:"not null;default:'Active'" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	ActivityLog []UserActivity `gorm:"foreignKey:UserID" json:"activity_log"`
	AuditLog    []UserAudit    `gorm:"foreignKey:UserID" json:"audit_log"`
}

// UserActivity is a user-visible activity record, append-only
type UserActivity struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Action    string    `gorm:"not null" json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// UserAudit is an admin-side audit record, append-only and distinct from the
// activity log
type UserAudit struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Action    string    `gorm:"not null" json:"action"`
	Actor     string    `gorm:"not null" json:"actor"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// UserTableFilterState is the admin user table filter configuration
type UserTableFilterState struct {
	Search    string `json:"search" form:"search"`
	Status    string `json:"status" form:"status"`
	SortBy    string `json:"sort_by" form:"sort_by"`
	SortOrder string `json:"sort_order" form:"sort_order"`
}

// DefaultUserTableFilterState returns the filter state a fresh table starts with
func DefaultUserTableFilterState() UserTableFilterState {
	return UserTableFilterState{
		Status:    "all",
		SortBy:    "email",
		SortOrder: "asc",
	}
}

// MaskEmail hides the local part of an address for display. The stored value
// is never changed.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return email
	}
	return email[:1] + strings.Repeat("*", at-1) + email[at:]
}

// MaskWallet shortens a wallet address to its first and last four characters
func MaskWallet(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
