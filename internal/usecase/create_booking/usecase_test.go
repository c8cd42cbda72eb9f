package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	serviceModels "github.com/m04kA/SMC-BookingPortal/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeBookingsService struct {
	create func(req *serviceModels.CreateBookingRequest) (*domain.Booking, error)
	got    *serviceModels.CreateBookingRequest
}

func (f *fakeBookingsService) Create(_ context.Context, req *serviceModels.CreateBookingRequest) (*domain.Booking, error) {
	f.got = req
	return f.create(req)
}

func newTestUseCase(svc BookingsService, loc *time.Location, now time.Time) *UseCase {
	uc := NewUseCase(svc, loc, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserEmail: "u@example.com",
		ServiceID: "svc1",
		Date:      "2026-09-15",
		SlotLabel: "2:00 PM",
	}
}

func TestExecute_CombinesDateAndSlotInObserverZone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	svc := &fakeBookingsService{
		create: func(req *serviceModels.CreateBookingRequest) (*domain.Booking, error) {
			return &domain.Booking{
				ID:           "new1",
				UserEmail:    req.UserEmail,
				ScheduleTime: req.ScheduleTime,
				Status:       domain.StatusConfirmed,
			}, nil
		},
	}
	uc := newTestUseCase(svc, loc, time.Date(2026, 9, 1, 10, 0, 0, 0, loc))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 15-е число + метка "2:00 PM" = 14:00 в зоне наблюдателя
	want := time.Date(2026, 9, 15, 14, 0, 0, 0, loc)
	assert.True(t, svc.got.ScheduleTime.Equal(want),
		"got %s, want %s", svc.got.ScheduleTime, want)
	assert.Equal(t, "new1", resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingsService{}, time.UTC, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"malformed email", func(r *Request) { r.UserEmail = "nope" }, ErrInvalidEmail},
		{"missing service", func(r *Request) { r.ServiceID = "" }, ErrInvalidService},
		{"missing date", func(r *Request) { r.Date = "" }, ErrInvalidDate},
		{"bad date format", func(r *Request) { r.Date = "15.09.2026" }, ErrInvalidDate},
		{"past date", func(r *Request) { r.Date = "2026-08-31" }, ErrInvalidDate},
		{"missing slot", func(r *Request) { r.SlotLabel = "" }, ErrInvalidSlot},
		{"slot outside catalog", func(r *Request) { r.SlotLabel = "6:00 PM" }, ErrInvalidSlot},
		{"24h slot format", func(r *Request) { r.SlotLabel = "14:00" }, ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_TodayIsBookable(t *testing.T) {
	svc := &fakeBookingsService{
		create: func(req *serviceModels.CreateBookingRequest) (*domain.Booking, error) {
			return &domain.Booking{ID: "b1", ScheduleTime: req.ScheduleTime}, nil
		},
	}
	uc := newTestUseCase(svc, time.UTC, time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC))

	req := validRequest()
	req.Date = "2026-09-15"
	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ServiceErrorPassesThroughRaw(t *testing.T) {
	storeErr := errors.New("400 validation error: service relation missing")
	svc := &fakeBookingsService{
		create: func(*serviceModels.CreateBookingRequest) (*domain.Booking, error) {
			return nil, storeErr
		},
	}
	uc := newTestUseCase(svc, time.UTC, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, storeErr)
}
