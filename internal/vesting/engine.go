// Package vesting derives vesting events from a stock grant and its
// schedule. The computation is pure: given the same grant, schedule, and
// reference time it always produces the same event sequence, so events are
// recomputed on every read instead of being persisted.
package vesting

import (
	"fmt"
	"time"

	"equivest/internal/models"
)

// cliffFraction is the share of the grant that vests at the cliff,
// independent of the cliff's fraction of the total duration. Carried from
// the reference plan definition; see the degenerate-schedule note below
// before changing it.
const cliffFraction = 0.25

// GenerateEvents derives the ordered vesting event sequence for a grant.
//
// The cliff event fires at grantDate + cliffMonths and vests 25% of the
// grant. Each following month up to totalYears*12 vests an equal slice of
// the remainder. Events come back in ascending date order with a running
// cumulative total; for a non-degenerate schedule the final cumulative
// equals the grant's total shares.
//
// Degenerate schedules where cliffMonths == totalYears*12 produce only the
// cliff event, leaving 75% of the grant unscheduled. The loop bound also
// guards the per-month division from a zero denominator in that case.
//
// Each event's status is a projection against now: vested if its date is
// not after now, pending otherwise.
func GenerateEvents(grant *models.StockGrant, schedule *models.VestingSchedule, now time.Time) []models.VestingEvent {
	totalVestingMonths := schedule.TotalYears * 12

	cliffDate := grant.GrantDate.AddDate(0, schedule.CliffMonths, 0)
	cliffShares := grant.TotalShares * cliffFraction

	events := make([]models.VestingEvent, 0, totalVestingMonths-schedule.CliffMonths+1)
	events = append(events, models.VestingEvent{
		ID:               eventID(grant.ID, 0),
		EmployeeID:       grant.EmployeeID,
		GrantID:          grant.ID,
		VestingDate:      cliffDate,
		SharesVested:     cliffShares,
		CumulativeVested: cliffShares,
		Status:           StatusAt(cliffDate, now),
	})

	cumulative := cliffShares
	for month := schedule.CliffMonths + 1; month <= totalVestingMonths; month++ {
		vestingDate := grant.GrantDate.AddDate(0, month, 0)
		monthlyShares := (grant.TotalShares - cliffShares) / float64(totalVestingMonths-schedule.CliffMonths)
		cumulative += monthlyShares

		events = append(events, models.VestingEvent{
			ID:               eventID(grant.ID, month-schedule.CliffMonths),
			EmployeeID:       grant.EmployeeID,
			GrantID:          grant.ID,
			VestingDate:      vestingDate,
			SharesVested:     monthlyShares,
			CumulativeVested: cumulative,
			Status:           StatusAt(vestingDate, now),
		})
	}

	return events
}

// StatusAt projects a vesting event's status from its date and a reference
// time: vested once the date has passed, pending until then.
func StatusAt(vestingDate, now time.Time) models.VestingEventStatus {
	if !vestingDate.After(now) {
		return models.VestingStatusVested
	}
	return models.VestingStatusPending
}

// eventID builds a deterministic identifier so that repeated reads of the
// same grant yield the same event IDs.
func eventID(grantID string, seq int) string {
	return fmt.Sprintf("%s:%d", grantID, seq)
}
