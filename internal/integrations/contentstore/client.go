package contentstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/pkg/storemetrics"
)

// Client клиент content store (Strapi-совместимый REST API)
// Пути и форма query-параметров фиксированы контрактом хранилища
// и не должны меняться
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента content store
// timeout = 0 означает запросы без таймаута
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// BaseURL возвращает базовый адрес хранилища
// Используется нормализатором для достройки относительных URL изображений
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListBookings получает бронирования пользователя, отсортированные по
// времени записи по убыванию, с вложенными данными услуги и изображения
// Возвращает пустой список (не nil), если ничего не найдено
func (c *Client) ListBookings(ctx context.Context, email string) ([]domain.Booking, error) {
	ctx = storemetrics.WithOperation(ctx, "list_bookings")
	reqURL := fmt.Sprintf("%s/api/bookings?filters[userEmail][$eq]=%s&populate=service.image&sort=scheduleTime:desc",
		c.baseURL, url.QueryEscape(email))

	body, err := c.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := decodeEnvelope(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: ListBookings - decode response: %v", ErrInternal, err)
	}

	bookings := make([]domain.Booking, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		bookings = append(bookings, NormalizeBooking(raw, c.baseURL))
	}
	return bookings, nil
}

// GetBooking получает бронирование по идентификатору
// 404 от хранилища транслируется в ErrNotFound
func (c *Client) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	ctx = storemetrics.WithOperation(ctx, "get_booking")
	reqURL := fmt.Sprintf("%s/api/bookings/%s?populate=*", c.baseURL, url.PathEscape(id))

	body, err := c.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	var envelope singleEnvelope
	if err := decodeEnvelope(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: GetBooking - decode response: %v", ErrInternal, err)
	}
	if envelope.Data == nil {
		return nil, ErrNotFound
	}

	booking := NormalizeBooking(envelope.Data, c.baseURL)
	return &booking, nil
}

// FilterBookingsByDocumentID ищет бронирования по альтернативной схеме
// идентификаторов (documentId) через фильтрованный запрос
func (c *Client) FilterBookingsByDocumentID(ctx context.Context, id string) ([]domain.Booking, error) {
	ctx = storemetrics.WithOperation(ctx, "filter_bookings")
	reqURL := fmt.Sprintf("%s/api/bookings?filters[documentId][$eq]=%s&populate=*",
		c.baseURL, url.QueryEscape(id))

	body, err := c.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := decodeEnvelope(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: FilterBookingsByDocumentID - decode response: %v", ErrInternal, err)
	}

	bookings := make([]domain.Booking, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		bookings = append(bookings, NormalizeBooking(raw, c.baseURL))
	}
	return bookings, nil
}

// CreateBooking создает бронирование с минимальным набором полей
// Ошибки валидации хранилища (400) доходят до вызывающего как RemoteRequestError
func (c *Client) CreateBooking(ctx context.Context, data *CreateBookingData) (*domain.Booking, error) {
	ctx = storemetrics.WithOperation(ctx, "create_booking")
	reqURL := fmt.Sprintf("%s/api/bookings", c.baseURL)

	body, err := c.do(ctx, http.MethodPost, reqURL, requestEnvelope{Data: data})
	if err != nil {
		return nil, err
	}

	var envelope singleEnvelope
	if err := decodeEnvelope(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: CreateBooking - decode response: %v", ErrInternal, err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: CreateBooking - empty response data", ErrInternal)
	}

	booking := NormalizeBooking(envelope.Data, c.baseURL)
	return &booking, nil
}

// UpdateBookingStatus обновляет статус бронирования
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	ctx = storemetrics.WithOperation(ctx, "update_booking")
	reqURL := fmt.Sprintf("%s/api/bookings/%s", c.baseURL, url.PathEscape(id))

	_, err := c.do(ctx, http.MethodPut, reqURL, requestEnvelope{Data: UpdateBookingData{
		BookingStatus: string(status),
	}})
	return err
}

// DeleteBooking удаляет бронирование
// Тело ответа хранилища может быть пустым - это не ошибка
func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	ctx = storemetrics.WithOperation(ctx, "delete_booking")
	reqURL := fmt.Sprintf("%s/api/bookings/%s", c.baseURL, url.PathEscape(id))

	_, err := c.do(ctx, http.MethodDelete, reqURL, nil)
	return err
}

// ListServices получает каталог услуг с вложенными данными
func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	ctx = storemetrics.WithOperation(ctx, "list_services")
	reqURL := fmt.Sprintf("%s/api/services?populate=*", c.baseURL)

	body, err := c.do(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := decodeEnvelope(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: ListServices - decode response: %v", ErrInternal, err)
	}

	services := make([]domain.Service, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		services = append(services, NormalizeService(raw, c.baseURL))
	}
	return services, nil
}

// do выполняет HTTP запрос и обрабатывает статус-коды единообразно:
// 2xx - тело ответа наружу, 404 - ErrNotFound, остальные - RemoteRequestError
// Ошибка выполнения запроса (не ответ) - ErrNetwork
func (c *Client) do(ctx context.Context, method, reqURL string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, reqURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrNetwork, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	default:
		msg := string(body)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		c.log.Warn("ContentStore: %s %s failed with status %d", method, reqURL, resp.StatusCode)
		return nil, &RemoteRequestError{Status: resp.StatusCode, Body: msg}
	}
}
