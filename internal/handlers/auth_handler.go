package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "equivest/internal/errors"
	"equivest/internal/logger"
	"equivest/internal/middleware"
	"equivest/internal/models"
	"equivest/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email,max=255"`
	Password   string `json:"password" binding:"required,max=128"`
	FirstName  string `json:"first_name" binding:"max=100"`
	LastName   string `json:"last_name" binding:"max=100"`
	EmployeeID string `json:"employee_id" binding:"required,max=32"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ValidateTokenRequest represents the token validation request payload
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// UserResponse represents the user data in a response
type UserResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	EmployeeID string          `json:"employee_id"`
	Role       models.UserRole `json:"role"`
	IsActive   bool            `json:"is_active"`
}

// AuthTokens carries issued tokens.
type AuthTokens struct {
	AccessToken string `json:"access_token"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	User   UserResponse `json:"user"`
	Tokens AuthTokens   `json:"tokens"`
}

// sanitizeUser maps a user model to its public representation, dropping
// the password hash.
func sanitizeUser(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		EmployeeID: user.EmployeeID,
		Role:       user.Role,
		IsActive:   user.IsActive,
	}
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new employee account and issue a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} AuthResponse "User registered and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input or weak password"
// @Failure     409 {object} ErrorResponse "Duplicate email or employee ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req.Email, req.Password, req.FirstName, req.LastName, req.EmployeeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	respondSuccessMessage(c, http.StatusCreated, AuthResponse{
		User:   sanitizeUser(user),
		Tokens: AuthTokens{AccessToken: token},
	}, "Registration successful")
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials or disabled account"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	logger.Get().Infow("login successful",
		"user_id", user.ID,
		"email", user.Email,
		"ip", c.ClientIP(),
	)

	respondSuccessMessage(c, http.StatusOK, AuthResponse{
		User:   sanitizeUser(user),
		Tokens: AuthTokens{AccessToken: token},
	}, "Login successful")
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !user.IsActive {
		respondWithError(c, apperrors.ErrAccountDisabled)
		return
	}

	respondSuccess(c, http.StatusOK, sanitizeUser(user))
}

// ValidateToken validates a token string and returns the associated user.
// @Summary     Validate a token
// @Description Verify a JWT and resolve the user it belongs to
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body ValidateTokenRequest true "Token to validate"
// @Success     200 {object} UserResponse "Token is valid"
// @Failure     400 {object} ErrorResponse "Missing token"
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Router      /auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Token is required"))
		return
	}

	claims, err := middleware.VerifyToken(req.Token)
	if err != nil {
		logger.Get().Warnw("token validation failed", "error", err.Error())
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	user, err := h.userService.GetUserByID(claims.UserID)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}
	if !user.IsActive {
		respondWithError(c, apperrors.ErrAccountDisabled)
		return
	}

	respondSuccessMessage(c, http.StatusOK, sanitizeUser(user), "Token is valid")
}

// Logout acknowledges a logout. Token invalidation is handled client-side
// by discarding the token; the server only records the event.
// @Summary     Logout user
// @Description Log the logout event; tokens are discarded client-side
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Logout successful"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Get().Infow("user logged out", "user_id", userID, "ip", c.ClientIP())
	respondSuccessMessage(c, http.StatusOK, nil, "Logout successful")
}
