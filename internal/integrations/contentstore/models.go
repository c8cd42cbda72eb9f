package contentstore

import "encoding/json"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// listEnvelope конверт ответа хранилища для списков: {"data": [...]}
type listEnvelope struct {
	Data []map[string]interface{} `json:"data"`
}

// singleEnvelope конверт ответа хранилища для одиночных записей: {"data": {...}}
type singleEnvelope struct {
	Data map[string]interface{} `json:"data"`
}

// requestEnvelope конверт тела запроса: {"data": {...}}
type requestEnvelope struct {
	Data interface{} `json:"data"`
}

// CreateBookingData минимальный набор полей для создания бронирования
type CreateBookingData struct {
	Service       string `json:"service"`
	UserEmail     string `json:"userEmail"`
	ScheduleTime  string `json:"scheduleTime"` // RFC3339, абсолютный момент
	BookingStatus string `json:"bookingStatus"`
}

// UpdateBookingData поля для обновления бронирования
type UpdateBookingData struct {
	BookingStatus string `json:"bookingStatus"`
}

// decodeEnvelope распаковывает тело ответа, допуская пустое тело
// (ответ DELETE может не содержать тела)
func decodeEnvelope(body []byte, out interface{}) error {
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
