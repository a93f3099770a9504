package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "equivest/internal/errors"
	"equivest/internal/logger"
	"equivest/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user with the default employee role.
func (s *userService) CreateUser(email, password, firstName, lastName, employeeID string) (*models.User, error) {
	if email == "" || password == "" || employeeID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email, password, and employee ID are required")
	}

	// Check if user with email exists
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&count)
	if count > 0 {
		logger.Get().Warnw("registration attempt with existing email", "email", email)
		return nil, apperrors.ErrDuplicateEmail
	}

	// Check if user with employee ID exists
	s.db.Model(&models.User{}).Where("employee_id = ?", employeeID).Count(&count)
	if count > 0 {
		logger.Get().Warnw("registration attempt with existing employee ID", "employee_id", employeeID)
		return nil, apperrors.ErrDuplicateEmployeeID
	}

	if violations := ValidatePasswordStrength(password); len(violations) > 0 {
		logger.Get().Warnw("registration attempt with weak password", "email", email)
		return nil, apperrors.WithDetails(apperrors.ErrWeakPassword, violations)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:      strings.ToLower(email),
		Password:   string(hashedPassword),
		FirstName:  firstName,
		LastName:   lastName,
		EmployeeID: employeeID,
		Role:       models.RoleEmployee,
		IsActive:   true,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("user registered",
		"user_id", user.ID,
		"email", user.Email,
		"employee_id", user.EmployeeID,
	)
	return user, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByEmployeeID retrieves a user by their employee identifier.
func (s *userService) GetUserByEmployeeID(employeeID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("employee_id = ?", employeeID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// AttemptLogin authenticates a user by email and password. Disabled
// accounts are rejected even with a correct password.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		logger.Get().Warnw("login attempt with unknown email", "email", email)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Get().Warnw("login attempt by inactive user", "email", email, "user_id", user.ID)
		return nil, apperrors.ErrAccountDisabled
	}

	if !s.VerifyPassword(user, password) {
		logger.Get().Warnw("login attempt with invalid password", "email", email, "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.Model(user).Update("last_login_at", now).Error; err != nil {
		// Login still succeeds; the timestamp is best-effort.
		logger.Get().Warnw("failed to record last login", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}
