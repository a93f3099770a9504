package database

import (
	"time"

	"equivest/internal/logger"
	"equivest/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// demoPassword is the shared password for all seeded demo accounts.
const demoPassword = "password123"

// Seed loads the demo dataset: three users, one standard vesting schedule,
// two grants, and one completed exercise. It is a no-op when users already
// exist, so restarting against a persistent database does not duplicate
// records.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{
			Email:      "john.doe@company.com",
			Password:   string(hash),
			FirstName:  "John",
			LastName:   "Doe",
			EmployeeID: "EMP001",
			Role:       models.RoleEmployee,
			IsActive:   true,
		},
		{
			Email:      "jane.smith@company.com",
			Password:   string(hash),
			FirstName:  "Jane",
			LastName:   "Smith",
			EmployeeID: "EMP002",
			Role:       models.RoleEmployee,
			IsActive:   true,
		},
		{
			Email:      "admin@company.com",
			Password:   string(hash),
			FirstName:  "Admin",
			LastName:   "User",
			EmployeeID: "ADM001",
			Role:       models.RoleAdmin,
			IsActive:   true,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	schedule := models.VestingSchedule{
		Name:                  "Standard 4-Year Vesting",
		Description:           "25% after 1 year cliff, then monthly for 3 years",
		TotalYears:            4,
		CliffMonths:           12,
		VestingIntervalMonths: 1,
	}
	if err := db.Create(&schedule).Error; err != nil {
		return err
	}

	grants := []models.StockGrant{
		{
			EmployeeID:        "EMP001",
			GrantDate:         time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			TotalShares:       1000,
			VestingScheduleID: schedule.ID,
			GrantPrice:        10.0,
			GrantType:         models.GrantTypeISO,
			Status:            models.GrantStatusActive,
		},
		{
			EmployeeID:        "EMP002",
			GrantDate:         time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			TotalShares:       500,
			VestingScheduleID: schedule.ID,
			GrantPrice:        12.0,
			GrantType:         models.GrantTypeRSU,
			Status:            models.GrantStatusActive,
		},
	}
	if err := db.Create(&grants).Error; err != nil {
		return err
	}

	exercise := models.Transaction{
		EmployeeID:      "EMP001",
		GrantID:         grants[0].ID,
		TransactionType: models.TransactionTypeExercise,
		Shares:          100,
		PricePerShare:   10.0,
		TotalAmount:     1000.0,
		TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:          models.TransactionStatusCompleted,
	}
	if err := db.Create(&exercise).Error; err != nil {
		return err
	}

	logger.Get().Infow("demo data seeded",
		"users", len(users),
		"grants", len(grants),
		"schedule", schedule.Name,
	)
	return nil
}
