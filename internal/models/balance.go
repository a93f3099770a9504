package models

import "time"

// StockBalance is a derived snapshot of one employee's equity position at
// read time. It is never persisted; callers recompute it from grants,
// vesting events, and completed transactions.
type StockBalance struct {
	EmployeeID          string    `json:"employee_id"`
	TotalGranted        float64   `json:"total_granted"`
	TotalVested         float64   `json:"total_vested"`
	TotalExercised      float64   `json:"total_exercised"`
	AvailableToExercise float64   `json:"available_to_exercise"`
	Unvested            float64   `json:"unvested"`
	CurrentValue        float64   `json:"current_value"`
	LastUpdated         time.Time `json:"last_updated"`
}
