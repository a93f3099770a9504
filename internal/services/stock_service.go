package services

import (
	"errors"
	"math"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	apperrors "equivest/internal/errors"
	"equivest/internal/logger"
	"equivest/internal/models"
	"equivest/internal/pagination"
	"equivest/internal/uuid"
	"equivest/internal/vesting"
)

// dashboardListLimit caps the recent-transaction and upcoming-vesting lists
// on the dashboard.
const dashboardListLimit = 5

// stockService handles grant, vesting, transaction, and balance queries.
// All reads are pure; vesting events and balances are derived on every call
// rather than stored.
type stockService struct {
	db          *gorm.DB
	users       UserServicer
	marketPrice float64
	now         func() time.Time
}

// NewStockService creates a new StockServicer. marketPrice is the current
// per-share valuation used for balance computation; it is injected here so
// the aggregation stays a pure function of its inputs.
func NewStockService(db *gorm.DB, users UserServicer, marketPrice float64) StockServicer {
	return &stockService{
		db:          db,
		users:       users,
		marketPrice: marketPrice,
		now:         time.Now,
	}
}

// GetBalance computes the employee's balance snapshot as of now.
func (s *stockService) GetBalance(employeeID string) (*models.StockBalance, error) {
	return s.CalculateBalance(employeeID, s.now())
}

// CalculateBalance folds the employee's grants, derived vesting events, and
// completed exercise transactions into a point-in-time balance snapshot.
func (s *stockService) CalculateBalance(employeeID string, asOf time.Time) (*models.StockBalance, error) {
	if _, err := s.users.GetUserByEmployeeID(employeeID); err != nil {
		return nil, err
	}

	grants, err := s.findGrants(employeeID)
	if err != nil {
		return nil, err
	}
	events, err := s.deriveVestingEvents(grants, asOf)
	if err != nil {
		return nil, err
	}
	transactions, err := s.findTransactions(employeeID)
	if err != nil {
		return nil, err
	}

	var totalGranted float64
	for _, grant := range grants {
		totalGranted += grant.TotalShares
	}

	var totalVested float64
	for _, event := range events {
		if event.Status == models.VestingStatusVested {
			totalVested += event.SharesVested
		}
	}

	var totalExercised float64
	for _, tx := range transactions {
		if tx.TransactionType == models.TransactionTypeExercise && tx.Status == models.TransactionStatusCompleted {
			totalExercised += tx.Shares
		}
	}

	// Exercises can exceed recorded vesting in erroneous data; the
	// available figure is clamped, the unvested figure is not.
	available := math.Max(0, totalVested-totalExercised)

	balance := &models.StockBalance{
		EmployeeID:          employeeID,
		TotalGranted:        totalGranted,
		TotalVested:         totalVested,
		TotalExercised:      totalExercised,
		AvailableToExercise: available,
		Unvested:            totalGranted - totalVested,
		CurrentValue:        available * s.marketPrice,
		LastUpdated:         asOf,
	}

	logger.Get().Infow("stock balance computed",
		"employee_id", employeeID,
		"total_granted", balance.TotalGranted,
		"total_vested", balance.TotalVested,
		"available_to_exercise", balance.AvailableToExercise,
	)
	return balance, nil
}

// GetGrants lists an employee's grants, optionally narrowed by grant type
// and status.
func (s *stockService) GetGrants(employeeID string, filter GrantFilter) ([]models.StockGrant, error) {
	query := s.db.Where("employee_id = ?", employeeID)
	if filter.Type != "" {
		query = query.Where("grant_type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var grants []models.StockGrant
	if err := query.Find(&grants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return grants, nil
}

// GetGrantDetails returns a grant with its derived vesting events and
// schedule. Non-elevated callers may only see their own grants. A grant
// whose schedule no longer resolves is returned with a nil schedule and no
// events rather than failing the whole request.
func (s *stockService) GetGrantDetails(grantID, employeeID string, elevated bool) (*GrantDetails, error) {
	if !uuid.IsValid(grantID) {
		return nil, apperrors.ErrGrantNotFound
	}

	var grant models.StockGrant
	if err := s.db.Where("id = ?", grantID).First(&grant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGrantNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !elevated && grant.EmployeeID != employeeID {
		return nil, apperrors.ErrGrantAccessDenied
	}

	details := &GrantDetails{
		Grant:         grant,
		VestingEvents: []models.VestingEvent{},
	}

	schedule, err := s.findSchedule(grant.VestingScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		logger.Get().Warnw("grant references missing vesting schedule",
			"grant_id", grant.ID,
			"vesting_schedule_id", grant.VestingScheduleID,
		)
		return details, nil
	}

	details.VestingSchedule = schedule
	details.VestingEvents = vesting.GenerateEvents(&grant, schedule, s.now())
	return details, nil
}

// GetVestingEvents derives the full vesting event list across all of the
// employee's grants, sorted by vesting date ascending.
func (s *stockService) GetVestingEvents(employeeID string) ([]models.VestingEvent, error) {
	grants, err := s.findGrants(employeeID)
	if err != nil {
		return nil, err
	}
	return s.deriveVestingEvents(grants, s.now())
}

// GetTransactionHistory lists the employee's transactions, most recent
// first, optionally narrowed by transaction type and status.
func (s *stockService) GetTransactionHistory(employeeID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	query := s.db.Model(&models.Transaction{}).Where("employee_id = ?", employeeID)
	if filter.Type != "" {
		query = query.Where("transaction_type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := query.Order("transaction_date DESC").Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	response := pagination.NewPageResponse(transactions, page.Page, page.PageSize, total)
	return &response, nil
}

// GetDashboard assembles the composed summary view: balance, the five most
// recent transactions, the next five upcoming vesting events, and the grant
// count. The sub-queries are independent and run concurrently.
func (s *stockService) GetDashboard(employeeID string) (*DashboardSummary, error) {
	now := s.now()

	var (
		balance      *models.StockBalance
		transactions []models.Transaction
		events       []models.VestingEvent
		grants       []models.StockGrant

		balanceErr, txErr, eventsErr, grantsErr error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		balance, balanceErr = s.CalculateBalance(employeeID, now)
	}()
	go func() {
		defer wg.Done()
		transactions, txErr = s.findTransactions(employeeID)
	}()
	go func() {
		defer wg.Done()
		var gs []models.StockGrant
		if gs, eventsErr = s.findGrants(employeeID); eventsErr == nil {
			events, eventsErr = s.deriveVestingEvents(gs, now)
		}
	}()
	go func() {
		defer wg.Done()
		grants, grantsErr = s.findGrants(employeeID)
	}()
	wg.Wait()

	for _, err := range []error{balanceErr, txErr, eventsErr, grantsErr} {
		if err != nil {
			return nil, err
		}
	}

	recent := transactions
	if len(recent) > dashboardListLimit {
		recent = recent[:dashboardListLimit]
	}

	upcoming := make([]models.VestingEvent, 0, dashboardListLimit)
	for _, event := range events {
		if event.VestingDate.After(now) {
			upcoming = append(upcoming, event)
			if len(upcoming) == dashboardListLimit {
				break
			}
		}
	}

	summary := &DashboardSummary{
		Balance:            *balance,
		RecentTransactions: recent,
		UpcomingVesting:    upcoming,
		GrantsCount:        len(grants),
	}

	logger.Get().Infow("dashboard summary composed",
		"employee_id", employeeID,
		"grants_count", summary.GrantsCount,
		"recent_transactions", len(summary.RecentTransactions),
		"upcoming_vesting", len(summary.UpcomingVesting),
	)
	return summary, nil
}

// findGrants loads all grants for an employee.
func (s *stockService) findGrants(employeeID string) ([]models.StockGrant, error) {
	var grants []models.StockGrant
	if err := s.db.Where("employee_id = ?", employeeID).Find(&grants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return grants, nil
}

// findTransactions loads all transactions for an employee, most recent
// first.
func (s *stockService) findTransactions(employeeID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("employee_id = ?", employeeID).Order("transaction_date DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// findSchedule loads a vesting schedule by ID, returning nil (not an
// error) when it does not exist. Grants with dangling schedule references
// resolve tolerantly instead of failing the request.
func (s *stockService) findSchedule(scheduleID string) (*models.VestingSchedule, error) {
	var schedule models.VestingSchedule
	if err := s.db.Where("id = ?", scheduleID).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &schedule, nil
}

// deriveVestingEvents runs the vesting engine over each grant and merges
// the results into one list sorted by vesting date ascending. Grants whose
// schedule is missing contribute no events.
func (s *stockService) deriveVestingEvents(grants []models.StockGrant, now time.Time) ([]models.VestingEvent, error) {
	events := make([]models.VestingEvent, 0)
	for i := range grants {
		schedule, err := s.findSchedule(grants[i].VestingScheduleID)
		if err != nil {
			return nil, err
		}
		if schedule == nil {
			logger.Get().Warnw("grant references missing vesting schedule",
				"grant_id", grants[i].ID,
				"vesting_schedule_id", grants[i].VestingScheduleID,
			)
			continue
		}
		events = append(events, vesting.GenerateEvents(&grants[i], schedule, now)...)
	}

	sort.Slice(events, func(a, b int) bool {
		return events[a].VestingDate.Before(events[b].VestingDate)
	})
	return events, nil
}
