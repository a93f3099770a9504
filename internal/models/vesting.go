package models

import "time"

// VestingEventStatus is a read-time projection of whether a vesting event has
// occurred. It is derived from comparing the vesting date to "now" and is
// never persisted, so stored state cannot drift from actual time.
type VestingEventStatus string

const (
	VestingStatusPending   VestingEventStatus = "pending"
	VestingStatusVested    VestingEventStatus = "vested"
	VestingStatusCancelled VestingEventStatus = "cancelled"
)

// VestingEvent is one shares-vesting occurrence for a grant, derived from the
// grant and its schedule at read time. CumulativeVested is the running total
// across the grant's events in date order.
type VestingEvent struct {
	ID               string             `json:"id"`
	EmployeeID       string             `json:"employee_id"`
	GrantID          string             `json:"grant_id"`
	VestingDate      time.Time          `json:"vesting_date"`
	SharesVested     float64            `json:"shares_vested"`
	CumulativeVested float64            `json:"cumulative_vested"`
	Status           VestingEventStatus `json:"status"`
}
