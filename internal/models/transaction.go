package models

import "time"

// TransactionType represents the kind of action taken against a grant.
type TransactionType string

const (
	TransactionTypeExercise TransactionType = "exercise"
	TransactionTypeSale     TransactionType = "sale"
	TransactionTypeGrant    TransactionType = "grant"
	TransactionTypeVest     TransactionType = "vest"
)

// TransactionStatus represents the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Transaction is one exercise/sale/grant/vest action against a stock grant.
// The transaction log is append-only; balance calculations only consider
// completed transactions.
type Transaction struct {
	Base
	EmployeeID      string            `gorm:"index;not null" json:"employee_id"`
	GrantID         string            `gorm:"type:uuid;not null" json:"grant_id"`
	TransactionType TransactionType   `gorm:"not null" json:"transaction_type"`
	Shares          float64           `gorm:"not null" json:"shares"`
	PricePerShare   float64           `gorm:"not null" json:"price_per_share"`
	TotalAmount     float64           `gorm:"not null" json:"total_amount"`
	TransactionDate time.Time         `gorm:"not null" json:"transaction_date"`
	Status          TransactionStatus `gorm:"not null;default:pending" json:"status"`
}
