package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBadgeStatus(t *testing.T) {
	assert.Equal(t, StatusCancelled, BadgeStatus("cancelled"))
	assert.Equal(t, StatusConfirmed, BadgeStatus("confirmed"))

	// всё незнакомое схлопывается в confirmed
	assert.Equal(t, StatusConfirmed, BadgeStatus("pending"))
	assert.Equal(t, StatusConfirmed, BadgeStatus(""))
	assert.Equal(t, StatusConfirmed, BadgeStatus("CANCELLED!"))
}

func TestIsUpcoming(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	future := Booking{Status: StatusConfirmed, ScheduleTime: now.Add(time.Hour)}
	assert.True(t, future.IsUpcoming(now))

	past := Booking{Status: StatusConfirmed, ScheduleTime: now.Add(-time.Hour)}
	assert.False(t, past.IsUpcoming(now))

	// отмененное бронирование не бывает предстоящим, даже в будущем
	cancelled := Booking{Status: StatusCancelled, ScheduleTime: now.Add(time.Hour)}
	assert.False(t, cancelled.IsUpcoming(now))
}

func TestNewRescheduleDraft_CarriesOnlyService(t *testing.T) {
	b := Booking{
		ID:           "doc1",
		UserEmail:    "u@example.com",
		ScheduleTime: time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC),
		Status:       StatusConfirmed,
		Service:      Service{ID: "svc1", Title: "Massage"},
	}

	draft := NewRescheduleDraft(&b)
	assert.Equal(t, "svc1", draft.ServiceID)
	assert.Equal(t, "Massage", draft.ServiceTitle)
	assert.Equal(t, "u@example.com", draft.UserEmail)
}
