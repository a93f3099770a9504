package services

import (
	"time"

	"equivest/internal/models"
	"equivest/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName, employeeID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByEmployeeID(employeeID string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// GrantDetails bundles a grant with its derived vesting events and the
// schedule it references. VestingSchedule is nil when the referenced
// schedule no longer resolves; the rest of the detail is still returned.
type GrantDetails struct {
	Grant           models.StockGrant       `json:"grant"`
	VestingEvents   []models.VestingEvent   `json:"vesting_events"`
	VestingSchedule *models.VestingSchedule `json:"vesting_schedule"`
}

// GrantFilter narrows a grant listing by optional enum fields. Empty
// fields match everything.
type GrantFilter struct {
	Type   string
	Status string
}

// TransactionFilter narrows a transaction listing by optional enum fields.
// Empty fields match everything.
type TransactionFilter struct {
	Type   string
	Status string
}

// DashboardSummary is the composed dashboard view for one employee.
type DashboardSummary struct {
	Balance            models.StockBalance   `json:"balance"`
	RecentTransactions []models.Transaction  `json:"recent_transactions"`
	UpcomingVesting    []models.VestingEvent `json:"upcoming_vesting"`
	GrantsCount        int                   `json:"grants_count"`
}

// StockServicer defines the contract for stock-related business logic.
// All queries are scoped to a single employee ID; authorization of that
// scope is the caller's responsibility.
type StockServicer interface {
	GetBalance(employeeID string) (*models.StockBalance, error)
	CalculateBalance(employeeID string, asOf time.Time) (*models.StockBalance, error)
	GetGrants(employeeID string, filter GrantFilter) ([]models.StockGrant, error)
	GetGrantDetails(grantID, employeeID string, elevated bool) (*GrantDetails, error)
	GetVestingEvents(employeeID string) ([]models.VestingEvent, error)
	GetTransactionHistory(employeeID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetDashboard(employeeID string) (*DashboardSummary, error)
}
