package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/internal/integrations/contentstore"
)

// foundStore заглушка, в которой запись существует и находится первой фазой
func foundStore(id string) *fakeStore {
	return &fakeStore{
		getBooking:    func(got string) (*domain.Booking, error) { return testBooking(id), nil },
		filterByDocID: func(string) ([]domain.Booking, error) { return nil, nil },
	}
}

func TestCancel_DeleteSucceeds(t *testing.T) {
	store := foundStore("doc1")
	store.deleteBooking = func(string) error { return nil }
	svc := NewService(store, nopLogger{})

	err := svc.Cancel(context.Background(), "doc1")
	require.NoError(t, err)
	assert.Equal(t, []string{"doc1"}, store.deleteCalls)
	assert.Empty(t, store.updateCalls)
}

func TestCancel_DeleteFailsUpdateSucceeds(t *testing.T) {
	store := foundStore("doc1")
	store.deleteBooking = func(string) error {
		return &contentstore.RemoteRequestError{Status: 405, Body: "method not allowed"}
	}
	store.updateStatus = func(_ string, status domain.BookingStatus) error {
		assert.Equal(t, domain.StatusCancelled, status)
		return nil
	}
	svc := NewService(store, nopLogger{})

	err := svc.Cancel(context.Background(), "doc1")
	require.NoError(t, err)
	assert.Len(t, store.deleteCalls, 1)
	assert.Len(t, store.updateCalls, 1)
}

func TestCancel_UpdateGets404AfterFailedDelete(t *testing.T) {
	// Удаление упало, но повторная смена статуса дает 404: запись на самом
	// деле исчезла, наблюдался stale-read. Это успех.
	store := foundStore("doc1")
	store.deleteBooking = func(string) error { return errors.New("internal server error") }
	store.updateStatus = func(string, domain.BookingStatus) error {
		return contentstore.ErrNotFound
	}
	svc := NewService(store, nopLogger{})

	assert.NoError(t, svc.Cancel(context.Background(), "doc1"))
}

func TestCancel_AlreadyDeletedTextIsSuccess(t *testing.T) {
	store := foundStore("doc1")
	store.deleteBooking = func(string) error {
		return &contentstore.RemoteRequestError{Status: 500, Body: "record already deleted"}
	}
	svc := NewService(store, nopLogger{})

	err := svc.Cancel(context.Background(), "doc1")
	require.NoError(t, err)
	assert.Empty(t, store.updateCalls)
}

func TestCancel_BothStrategiesFail(t *testing.T) {
	store := foundStore("doc1")
	store.deleteBooking = func(string) error { return errors.New("boom delete") }
	store.updateStatus = func(string, domain.BookingStatus) error { return errors.New("boom update") }
	svc := NewService(store, nopLogger{})

	err := svc.Cancel(context.Background(), "doc1")
	require.ErrorIs(t, err, ErrCancellationFailed)
	assert.Contains(t, err.Error(), "boom delete")
	assert.Contains(t, err.Error(), "boom update")
}

func TestCancel_CleanMissIsNotFound(t *testing.T) {
	store := &fakeStore{
		getBooking:    func(string) (*domain.Booking, error) { return nil, contentstore.ErrNotFound },
		filterByDocID: func(string) ([]domain.Booking, error) { return nil, nil },
	}
	svc := NewService(store, nopLogger{})

	err := svc.Cancel(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, store.deleteCalls)
	assert.Empty(t, store.updateCalls)
}

func TestCancel_UsesCanonicalIDFromProbe(t *testing.T) {
	// Вызывающий передал legacy id, зондирование нашло запись с documentId:
	// стратегии должны работать с каноническим идентификатором
	store := &fakeStore{
		getBooking:    func(string) (*domain.Booking, error) { return nil, contentstore.ErrNotFound },
		filterByDocID: func(string) ([]domain.Booking, error) {
			return []domain.Booking{*testBooking("canonical-doc")}, nil
		},
		deleteBooking: func(string) error { return nil },
	}
	svc := NewService(store, nopLogger{})

	err := svc.Cancel(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"canonical-doc"}, store.deleteCalls)
}

func TestCancel_InconclusiveProbeStillAttemptsCancel(t *testing.T) {
	netErr := errors.New("connection refused")
	store := &fakeStore{
		getBooking:    func(string) (*domain.Booking, error) { return nil, netErr },
		filterByDocID: func(string) ([]domain.Booking, error) { return nil, netErr },
		deleteBooking: func(string) error { return nil },
	}
	svc := NewService(store, nopLogger{})

	err := svc.Cancel(context.Background(), "doc1")
	require.NoError(t, err)
	assert.Equal(t, []string{"doc1"}, store.deleteCalls)
}

func TestCancel_EmptyID(t *testing.T) {
	svc := NewService(&fakeStore{}, nopLogger{})
	assert.ErrorIs(t, svc.Cancel(context.Background(), ""), ErrInvalidInput)
}
