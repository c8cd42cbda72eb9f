package bookingview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/internal/integrations/authprovider"
	"github.com/m04kA/SMC-BookingPortal/internal/service/bookings"
	bookingmodels "github.com/m04kA/SMC-BookingPortal/internal/service/bookings/models"
	"github.com/m04kA/SMC-BookingPortal/internal/view"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeLifecycle struct {
	fetch  func(email string) ([]domain.Booking, error)
	exists func(id domain.BookingID) (*bookingmodels.ExistenceResult, error)
	cancel func(id domain.BookingID) error

	cancelCalls []domain.BookingID
}

func (f *fakeLifecycle) FetchForUser(_ context.Context, email string) ([]domain.Booking, error) {
	return f.fetch(email)
}

func (f *fakeLifecycle) ExistenceCheck(_ context.Context, id domain.BookingID) (*bookingmodels.ExistenceResult, error) {
	return f.exists(id)
}

func (f *fakeLifecycle) Cancel(_ context.Context, id domain.BookingID) error {
	f.cancelCalls = append(f.cancelCalls, id)
	return f.cancel(id)
}

var testNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

func testSession() *authprovider.Session {
	return &authprovider.Session{UID: "uid1", Email: "u@example.com"}
}

func fixtureBookings() []domain.Booking {
	return []domain.Booking{
		{ID: "up1", UserEmail: "u@example.com", Status: domain.StatusConfirmed,
			ScheduleTime: testNow.Add(24 * time.Hour)},
		{ID: "past1", UserEmail: "u@example.com", Status: domain.StatusConfirmed,
			ScheduleTime: testNow.Add(-24 * time.Hour)},
		{ID: "cancelled-future", UserEmail: "u@example.com", Status: domain.StatusCancelled,
			ScheduleTime: testNow.Add(48 * time.Hour)},
	}
}

func newTestController(svc BookingLifecycle) (*Controller, *fakeClock) {
	clock := &fakeClock{now: testNow}
	return NewController(svc, clock, nopLogger{}), clock
}

func loggedIn(t *testing.T, svc BookingLifecycle) (*Controller, *fakeClock) {
	t.Helper()
	c, clock := newTestController(svc)
	require.NoError(t, c.HandleSessionChange(context.Background(), testSession()))
	return c, clock
}

func TestController_LoginLoadsBookings(t *testing.T) {
	svc := &fakeLifecycle{
		fetch: func(email string) ([]domain.Booking, error) {
			assert.Equal(t, "u@example.com", email)
			return fixtureBookings(), nil
		},
	}
	c, _ := loggedIn(t, svc)

	upcoming := c.VisibleBookings()
	require.Len(t, upcoming, 1)
	assert.Equal(t, domain.BookingID("up1"), upcoming[0].ID)
}

func TestController_CancelledFutureBookingIsPast(t *testing.T) {
	svc := &fakeLifecycle{
		fetch: func(string) ([]domain.Booking, error) { return fixtureBookings(), nil },
	}
	c, _ := loggedIn(t, svc)

	c.SelectTab(TabPast)
	past := c.VisibleBookings()
	require.Len(t, past, 2)

	ids := []domain.BookingID{past[0].ID, past[1].ID}
	assert.Contains(t, ids, domain.BookingID("past1"))
	assert.Contains(t, ids, domain.BookingID("cancelled-future"))
}

func TestController_ModalVisibleIffSelected(t *testing.T) {
	svc := &fakeLifecycle{
		fetch: func(string) ([]domain.Booking, error) { return fixtureBookings(), nil },
	}
	c, _ := loggedIn(t, svc)

	assert.False(t, c.ModalVisible())
	assert.True(t, c.OpenCancelModal("up1"))
	assert.True(t, c.ModalVisible())

	c.CloseModal()
	assert.False(t, c.ModalVisible())

	// неизвестный идентификатор диалог не открывает
	assert.False(t, c.OpenCancelModal("ghost"))
	assert.False(t, c.ModalVisible())
}

func TestConfirmCancel_SuccessPurgesAndCloses(t *testing.T) {
	svc := &fakeLifecycle{
		fetch: func(string) ([]domain.Booking, error) { return fixtureBookings(), nil },
		exists: func(id domain.BookingID) (*bookingmodels.ExistenceResult, error) {
			return &bookingmodels.ExistenceResult{Exists: true}, nil
		},
		cancel: func(domain.BookingID) error { return nil },
	}
	c, _ := loggedIn(t, svc)

	require.True(t, c.OpenCancelModal("up1"))
	c.ConfirmCancel(context.Background())

	assert.False(t, c.ModalVisible())
	assert.False(t, c.CancelInFlight())
	assert.Empty(t, c.VisibleBookings())
	assert.Equal(t, []domain.BookingID{"up1"}, svc.cancelCalls)

	msg := c.Message()
	require.NotNil(t, msg)
	assert.Equal(t, view.MessageInfo, msg.Kind)
}

func TestConfirmCancel_NotFoundPurgesWithoutCancel(t *testing.T) {
	svc := &fakeLifecycle{
		fetch: func(string) ([]domain.Booking, error) { return fixtureBookings(), nil },
		exists: func(domain.BookingID) (*bookingmodels.ExistenceResult, error) {
			return &bookingmodels.ExistenceResult{Exists: false}, nil
		},
	}
	c, _ := loggedIn(t, svc)

	require.True(t, c.OpenCancelModal("up1"))
	c.ConfirmCancel(context.Background())

	assert.Empty(t, svc.cancelCalls)
	assert.Empty(t, c.VisibleBookings())
	assert.False(t, c.ModalVisible())
}

func TestConfirmCancel_FailureKeepsBookingShowsError(t *testing.T) {
	svc := &fakeLifecycle{
		fetch: func(string) ([]domain.Booking, error) { return fixtureBookings(), nil },
		exists: func(domain.BookingID) (*bookingmodels.ExistenceResult, error) {
			return &bookingmodels.ExistenceResult{Exists: true}, nil
		},
		cancel: func(domain.BookingID) error {
			return errors.New("boom")
		},
	}
	c, _ := loggedIn(t, svc)

	require.True(t, c.OpenCancelModal("up1"))
	c.ConfirmCancel(context.Background())

	// бронирование остается в списке, диалог закрыт, показана ошибка
	assert.Len(t, c.VisibleBookings(), 1)
	assert.False(t, c.ModalVisible())
	msg := c.Message()
	require.NotNil(t, msg)
	assert.Equal(t, view.MessageError, msg.Kind)
}

func TestConfirmCancel_AlreadyGoneTreatedAsPurge(t *testing.T) {
	svc := &fakeLifecycle{
		fetch: func(string) ([]domain.Booking, error) { return fixtureBookings(), nil },
		exists: func(domain.BookingID) (*bookingmodels.ExistenceResult, error) {
			return &bookingmodels.ExistenceResult{Exists: true}, nil
		},
		cancel: func(domain.BookingID) error { return bookings.ErrBookingNotFound },
	}
	c, _ := loggedIn(t, svc)

	require.True(t, c.OpenCancelModal("up1"))
	c.ConfirmCancel(context.Background())

	assert.Empty(t, c.VisibleBookings())
	msg := c.Message()
	require.NotNil(t, msg)
	assert.Equal(t, view.MessageInfo, msg.Kind)
}

func TestConfirmCancel_NoSelectionIsNoop(t *testing.T) {
	svc := &fakeLifecycle{
		fetch: func(string) ([]domain.Booking, error) { return fixtureBookings(), nil },
	}
	c, _ := loggedIn(t, svc)

	c.ConfirmCancel(context.Background())
	assert.Empty(t, svc.cancelCalls)
}

func TestHandleSessionChange_LogoutResetsState(t *testing.T) {
	svc := &fakeLifecycle{
		fetch: func(string) ([]domain.Booking, error) { return fixtureBookings(), nil },
	}
	c, _ := loggedIn(t, svc)
	require.True(t, c.OpenCancelModal("up1"))

	require.NoError(t, c.HandleSessionChange(context.Background(), nil))

	assert.False(t, c.ModalVisible())
	assert.Empty(t, c.VisibleBookings())
	assert.Equal(t, TabUpcoming, c.ActiveTab())
	assert.Nil(t, c.Message())
}

func TestMessage_ExpiresWithClock(t *testing.T) {
	svc := &fakeLifecycle{
		fetch: func(string) ([]domain.Booking, error) { return fixtureBookings(), nil },
		exists: func(domain.BookingID) (*bookingmodels.ExistenceResult, error) {
			return &bookingmodels.ExistenceResult{Exists: false}, nil
		},
	}
	c, clock := loggedIn(t, svc)

	require.True(t, c.OpenCancelModal("up1"))
	c.ConfirmCancel(context.Background())
	require.NotNil(t, c.Message())

	clock.now = clock.now.Add(view.MessageTTL + time.Second)
	assert.Nil(t, c.Message())
}

func TestRefresh_ErrorShowsBanner(t *testing.T) {
	calls := 0
	svc := &fakeLifecycle{
		fetch: func(string) ([]domain.Booking, error) {
			calls++
			if calls == 1 {
				return fixtureBookings(), nil
			}
			return nil, errors.New("store down")
		},
	}
	c, _ := loggedIn(t, svc)

	err := c.Refresh(context.Background())
	require.Error(t, err)

	msg := c.Message()
	require.NotNil(t, msg)
	assert.Equal(t, view.MessageError, msg.Kind)
	// старый список сохраняется до успешной перезагрузки
	assert.Len(t, c.VisibleBookings(), 1)
}
