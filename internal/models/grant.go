package models

import "time"

// GrantType represents the kind of equity award.
type GrantType string

const (
	GrantTypeISO  GrantType = "iso"  // Incentive Stock Options
	GrantTypeNSO  GrantType = "nso"  // Non-Qualified Stock Options
	GrantTypeRSU  GrantType = "rsu"  // Restricted Stock Units
	GrantTypeESPP GrantType = "espp" // Employee Stock Purchase Plan
)

// GrantStatus represents the lifecycle state of a stock grant.
type GrantStatus string

const (
	GrantStatusActive    GrantStatus = "active"
	GrantStatusExercised GrantStatus = "exercised"
	GrantStatusExpired   GrantStatus = "expired"
	GrantStatusCancelled GrantStatus = "cancelled"
)

// VestingSchedule is an immutable vesting policy definition. Grants reference
// a schedule by ID; a schedule is never mutated after creation.
type VestingSchedule struct {
	Base
	Name                  string `gorm:"not null" json:"name"`
	Description           string `json:"description"`
	TotalYears            int    `gorm:"not null" json:"total_years"`
	CliffMonths           int    `gorm:"not null" json:"cliff_months"`
	VestingIntervalMonths int    `gorm:"not null;default:1" json:"vesting_interval_months"`
}

// StockGrant represents an equity award made to one employee.
type StockGrant struct {
	Base
	EmployeeID        string      `gorm:"index;not null" json:"employee_id"`
	GrantDate         time.Time   `gorm:"not null" json:"grant_date"`
	TotalShares       float64     `gorm:"not null" json:"total_shares"`
	VestingScheduleID string      `gorm:"type:uuid;not null" json:"vesting_schedule_id"`
	GrantPrice        float64     `gorm:"not null" json:"grant_price"`
	GrantType         GrantType   `gorm:"not null" json:"grant_type"`
	Status            GrantStatus `gorm:"not null;default:active" json:"status"`
}
