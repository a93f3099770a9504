package models

import "time"

// UserRole represents the authorization role of a user.
type UserRole string

const (
	RoleEmployee UserRole = "employee"
	RoleAdmin    UserRole = "admin"
)

// User represents the user model in the database
type User struct {
	Base
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	EmployeeID  string     `gorm:"uniqueIndex;not null" json:"employee_id"`
	Role        UserRole   `gorm:"not null;default:employee" json:"role"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	Grants       []StockGrant  `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"grants,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"transactions,omitempty"`
}

// IsAdmin reports whether the user holds the elevated role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
