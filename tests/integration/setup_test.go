package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"equivest/internal/handlers"
	"equivest/internal/logger"
	"equivest/internal/middleware"
	"equivest/internal/models"
	"equivest/internal/services"
	"equivest/internal/validator"
)

const testMarketPrice = 25.0

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

// empCounter hands out unique employee IDs across tests.
var empCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.VestingSchedule{},
		&models.StockGrant{},
		&models.Transaction{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	stockService := services.NewStockService(db, userService, testMarketPrice)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	stockHandler := handlers.NewStockHandler(stockService, userService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/validate", authHandler.ValidateToken)

	authProtected := auth.Group("/")
	authProtected.Use(middleware.AuthMiddleware())
	authProtected.GET("/profile", authHandler.GetProfile)
	authProtected.POST("/logout", authHandler.Logout)

	stock := router.Group("/stock")
	stock.Use(middleware.AuthMiddleware())
	stock.GET("/dashboard", stockHandler.GetDashboard)
	stock.GET("/balance", stockHandler.GetBalance)
	stock.GET("/grants", stockHandler.GetGrants)
	stock.GET("/grants/:grantId", stockHandler.GetGrantDetails)
	stock.GET("/vesting", stockHandler.GetVestingSchedule)
	stock.GET("/transactions", stockHandler.GetTransactionHistory)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// dataOf extracts the data object from a success envelope.
func dataOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got: %s", rec.Body.String())
	}
	return data
}

// nextEmployeeID returns a unique employee ID for registration.
func nextEmployeeID() string {
	return fmt.Sprintf("EMP%03d", empCounter.Add(1))
}

// registerUser registers a new employee and returns the access token and
// employee ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, employeeID string) {
	t.Helper()
	employeeID = nextEmployeeID()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User","employee_id":%q}`,
		email, password, employeeID)
	rec := app.request("POST", "/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	data := dataOf(t, rec)
	tokens := data["tokens"].(map[string]interface{})
	return tokens["access_token"].(string), employeeID
}

// loginUser logs in and returns the access token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	data := dataOf(t, rec)
	tokens := data["tokens"].(map[string]interface{})
	return tokens["access_token"].(string)
}

// createAdmin inserts an admin user directly and returns an access token.
func (app *testApp) createAdmin(t *testing.T, email, password string) (accessToken, employeeID string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	employeeID = fmt.Sprintf("ADM%03d", empCounter.Add(1))
	admin := &models.User{
		Email:      email,
		Password:   string(hash),
		EmployeeID: employeeID,
		Role:       models.RoleAdmin,
		IsActive:   true,
	}
	if err := app.DB.Create(admin).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	return app.loginUser(t, email, password), employeeID
}

// createGrant inserts a schedule and grant for an employee.
func (app *testApp) createGrant(t *testing.T, employeeID string, totalShares float64, grantDate time.Time, totalYears, cliffMonths int) *models.StockGrant {
	t.Helper()

	schedule := &models.VestingSchedule{
		Name:                  fmt.Sprintf("Schedule %d", empCounter.Add(1)),
		TotalYears:            totalYears,
		CliffMonths:           cliffMonths,
		VestingIntervalMonths: 1,
	}
	if err := app.DB.Create(schedule).Error; err != nil {
		t.Fatalf("failed to create schedule: %v", err)
	}

	grant := &models.StockGrant{
		EmployeeID:        employeeID,
		GrantDate:         grantDate,
		TotalShares:       totalShares,
		VestingScheduleID: schedule.ID,
		GrantPrice:        10.0,
		GrantType:         models.GrantTypeISO,
		Status:            models.GrantStatusActive,
	}
	if err := app.DB.Create(grant).Error; err != nil {
		t.Fatalf("failed to create grant: %v", err)
	}
	return grant
}

// createExercise inserts a completed exercise transaction.
func (app *testApp) createExercise(t *testing.T, employeeID, grantID string, shares float64, date time.Time) *models.Transaction {
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
	if err := app.DB.Create(tx).Error; err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return tx
}
