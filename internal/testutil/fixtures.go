package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"equivest/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an active employee user with a hashed password and
// unique email and employee ID.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithRole(t, db,
		fmt.Sprintf("user%d@test.com", n),
		fmt.Sprintf("EMP%03d", n),
		models.RoleEmployee,
	)
}

// CreateTestAdmin creates an active admin user.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithRole(t, db,
		fmt.Sprintf("admin%d@test.com", n),
		fmt.Sprintf("ADM%03d", n),
		models.RoleAdmin,
	)
}

// CreateTestUserWithRole creates a user with the given email, employee ID,
// and role. The password is always "Password123!".
func CreateTestUserWithRole(t *testing.T, db *gorm.DB, email, employeeID string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:      email,
		Password:   string(hash),
		EmployeeID: employeeID,
		Role:       role,
		IsActive:   true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSchedule creates a vesting schedule.
func CreateTestSchedule(t *testing.T, db *gorm.DB, totalYears, cliffMonths int) *models.VestingSchedule {
	t.Helper()

	schedule := &models.VestingSchedule{
		Name:                  fmt.Sprintf("Test Schedule %d", nextID()),
		TotalYears:            totalYears,
		CliffMonths:           cliffMonths,
		VestingIntervalMonths: 1,
	}
	if err := db.Create(schedule).Error; err != nil {
		t.Fatalf("failed to create test schedule: %v", err)
	}
	return schedule
}

// CreateTestGrant creates an active ISO grant for an employee.
func CreateTestGrant(t *testing.T, db *gorm.DB, employeeID, scheduleID string, totalShares float64, grantDate time.Time) *models.StockGrant {
	t.Helper()

	grant := &models.StockGrant{
		EmployeeID:        employeeID,
		GrantDate:         grantDate,
		TotalShares:       totalShares,
		VestingScheduleID: scheduleID,
		GrantPrice:        10.0,
		GrantType:         models.GrantTypeISO,
		Status:            models.GrantStatusActive,
	}
	if err := db.Create(grant).Error; err != nil {
		t.Fatalf("failed to create test grant: %v", err)
	}
	return grant
}

// CreateTestTransaction creates a completed exercise transaction against a
// grant.
func CreateTestTransaction(t *testing.T, db *gorm.DB, employeeID, grantID string, shares float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		EmployeeID:      employeeID,
		GrantID:         grantID,
		TransactionType: models.TransactionTypeExercise,
		Shares:          shares,
		PricePerShare:   10.0,
		TotalAmount:     shares * 10.0,
		TransactionDate: date,
		Status:          models.TransactionStatusCompleted,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
