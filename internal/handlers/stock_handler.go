package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "equivest/internal/errors"
	"equivest/internal/pagination"
	"equivest/internal/services"
)

// StockHandler handles stock grant, vesting, transaction, and dashboard
// requests.
type StockHandler struct {
	stockService services.StockServicer
	userService  services.UserServicer
}

// grantListQuery holds the optional filters for the grant listing.
type grantListQuery struct {
	Type   string `form:"type" binding:"omitempty,grant_type"`
	Status string `form:"status" binding:"omitempty,grant_status"`
}

// transactionListQuery holds pagination plus the optional filters for the
// transaction history listing.
type transactionListQuery struct {
	pagination.PageRequest
	Type   string `form:"type" binding:"omitempty,transaction_type"`
	Status string `form:"status" binding:"omitempty,transaction_status"`
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService services.StockServicer, userService services.UserServicer) *StockHandler {
	return &StockHandler{stockService: stockService, userService: userService}
}

// resolveEmployeeScope determines which employee's records the caller may
// query. Admins may target any employee via the employeeId query parameter;
// everyone else is pinned to their own employee ID, and supplying a foreign
// one is rejected.
func (h *StockHandler) resolveEmployeeScope(c *gin.Context) (string, bool, error) {
	userID, err := getUserID(c)
	if err != nil {
		return "", false, err
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		return "", false, err
	}

	// The role on the freshly loaded user wins over the token claim, so a
	// role change takes effect without waiting for the token to expire.
	elevated := user.IsAdmin()

	if requested := c.Query("employeeId"); requested != "" && requested != user.EmployeeID {
		if !elevated {
			return "", false, apperrors.ErrForbidden
		}
		return requested, elevated, nil
	}

	return user.EmployeeID, elevated, nil
}

// GetDashboard returns the composed dashboard summary.
// @Summary     Get dashboard summary
// @Description Balance, recent transactions, upcoming vesting, and grant count
// @Tags        stock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       employeeId query string false "Employee ID (admin only)"
// @Success     200 {object} services.DashboardSummary "Dashboard summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Foreign employee scope"
// @Failure     404 {object} ErrorResponse "Unknown employee"
// @Router      /stock/dashboard [get]
func (h *StockHandler) GetDashboard(c *gin.Context) {
	employeeID, _, err := h.resolveEmployeeScope(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.stockService.GetDashboard(employeeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, summary)
}

// GetBalance returns the employee's stock balance snapshot.
// @Summary     Get stock balance
// @Description Point-in-time balance snapshot for the employee
// @Tags        stock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       employeeId query string false "Employee ID (admin only)"
// @Success     200 {object} models.StockBalance "Balance snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Foreign employee scope"
// @Failure     404 {object} ErrorResponse "Unknown employee"
// @Router      /stock/balance [get]
func (h *StockHandler) GetBalance(c *gin.Context) {
	employeeID, _, err := h.resolveEmployeeScope(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.stockService.GetBalance(employeeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, balance)
}

// GetGrants lists the employee's stock grants.
// @Summary     List stock grants
// @Description Grants for the employee, optionally filtered by type and status
// @Tags        stock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       employeeId query string false "Employee ID (admin only)"
// @Param       type query string false "Grant type (iso, nso, rsu, espp)"
// @Param       status query string false "Grant status (active, exercised, expired, cancelled)"
// @Success     200 {array} models.StockGrant "Stock grants"
// @Failure     400 {object} ErrorResponse "Invalid filter value"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Foreign employee scope"
// @Router      /stock/grants [get]
func (h *StockHandler) GetGrants(c *gin.Context) {
	employeeID, _, err := h.resolveEmployeeScope(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query grantListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	grants, err := h.stockService.GetGrants(employeeID, services.GrantFilter{
		Type:   query.Type,
		Status: query.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, grants)
}

// GetGrantDetails returns one grant with its vesting detail.
// @Summary     Get grant details
// @Description A grant with its derived vesting events and schedule
// @Tags        stock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       grantId path string true "Grant ID"
// @Success     200 {object} services.GrantDetails "Grant details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Grant belongs to another employee"
// @Failure     404 {object} ErrorResponse "Unknown grant"
// @Router      /stock/grants/{grantId} [get]
func (h *StockHandler) GetGrantDetails(c *gin.Context) {
	employeeID, elevated, err := h.resolveEmployeeScope(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	details, err := h.stockService.GetGrantDetails(c.Param("grantId"), employeeID, elevated)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, details)
}

// GetVestingSchedule returns the employee's derived vesting event list.
// @Summary     Get vesting events
// @Description Derived vesting events across all grants, earliest first
// @Tags        stock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       employeeId query string false "Employee ID (admin only)"
// @Success     200 {array} models.VestingEvent "Vesting events"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Foreign employee scope"
// @Router      /stock/vesting [get]
func (h *StockHandler) GetVestingSchedule(c *gin.Context) {
	employeeID, _, err := h.resolveEmployeeScope(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	events, err := h.stockService.GetVestingEvents(employeeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, events)
}

// GetTransactionHistory lists the employee's transactions, most recent
// first.
// @Summary     Get transaction history
// @Description Paginated transaction history, most recent first
// @Tags        stock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       employeeId query string false "Employee ID (admin only)"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Param       type query string false "Transaction type (exercise, sale, grant, vest)"
// @Param       status query string false "Transaction status (pending, completed, failed, cancelled)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid pagination or filter parameters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Foreign employee scope"
// @Router      /stock/transactions [get]
func (h *StockHandler) GetTransactionHistory(c *gin.Context) {
	employeeID, _, err := h.resolveEmployeeScope(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query transactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactions, err := h.stockService.GetTransactionHistory(employeeID, services.TransactionFilter{
		Type:   query.Type,
		Status: query.Status,
	}, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, transactions)
}
