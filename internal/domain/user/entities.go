package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// User is an authentication principal. A CUSTOMER user is tied to the
// customer record it may act on; ADMIN users have no customer binding.
type User struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	Username     string    `gorm:"size:100;not null;uniqueIndex:ux_users_username"`
	PasswordHash string    `gorm:"size:100;not null"`
	Role         Role      `gorm:"size:20;not null"`
	CustomerID   *uint64   `gorm:"index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }
