package contentstore

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
)

// Нормализация сырых записей хранилища в каноническую форму.
//
// Хранилище отдает записи в нескольких вариантах (разные поколения API:
// плоские поля, вложенные attributes, legacy-имена полей), поэтому все
// fallback-правила собраны здесь в явные упорядоченные списки приоритетов.
// Нормализация никогда не возвращает ошибку: отсутствующее поле дает
// sentinel-значение, чтобы слою отображения всегда было что показать.

// Упорядоченные списки приоритетов полей
var (
	scheduleFields = []string{"scheduleTime", "date"}
	statusFields   = []string{"bookingStatus", "status"}
	emailFields    = []string{"userEmail", "email"}
	titleFields    = []string{"title", "name"}
)

// Поддерживаемые форматы момента времени
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	domain.DateFormat,
}

// NormalizeBooking приводит сырую запись бронирования к канонической форме
// Канонический id выбирается один раз: documentId предпочтительнее legacy
// числового id; legacy id сохраняется отдельно для диагностики
func NormalizeBooking(raw map[string]interface{}, baseURL string) domain.Booking {
	rec := unwrapRecord(raw)

	legacyID := intField(rec, "id")

	canonical := stringField(rec, "documentId")
	if canonical == "" && legacyID != 0 {
		canonical = strconv.FormatInt(legacyID, 10)
	}

	booking := domain.Booking{
		ID:           domain.BookingID(canonical),
		LegacyID:     legacyID,
		UserEmail:    firstStringField(rec, emailFields),
		ScheduleTime: parseSchedule(rec),
		Status:       normalizeStatus(rec),
		Service:      NormalizeService(rec["service"], baseURL),
	}

	return booking
}

// NormalizeService приводит сырое представление услуги к канонической форме
// Принимает любой из вариантов вложенности (плоский объект, data/attributes)
func NormalizeService(raw interface{}, baseURL string) domain.Service {
	svc := domain.Service{
		Title:    domain.ValueNotAvailable,
		ImageURL: domain.PlaceholderImageURL,
	}

	rec, ok := asRecord(raw)
	if !ok {
		return svc
	}
	rec = unwrapRecord(rec)

	svc.LegacyID = intField(rec, "id")
	svc.ID = stringField(rec, "documentId")
	if svc.ID == "" && svc.LegacyID != 0 {
		svc.ID = strconv.FormatInt(svc.LegacyID, 10)
	}

	if title := firstStringField(rec, titleFields); title != "" {
		svc.Title = title
	}
	svc.DurationMinutes = int(intField(rec, "duration"))
	svc.Price = floatField(rec, "price")
	svc.ImageURL = ResolveImageURL(rec["image"], baseURL)

	return svc
}

// ResolveImageURL извлекает URL изображения из любого поддерживаемого
// представления, в порядке приоритета:
//  1. строка
//  2. объект с полем url
//  3. вложенный путь data.attributes.url
//  4. вложенный путь attributes.url
//
// Если ничего не нашлось - заглушка; относительный путь дополняется
// базовым адресом хранилища
func ResolveImageURL(raw interface{}, baseURL string) string {
	url := extractImageURL(raw)
	if url == "" {
		return domain.PlaceholderImageURL
	}
	if !strings.HasPrefix(url, "http") {
		return strings.TrimRight(baseURL, "/") + url
	}
	return url
}

func extractImageURL(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case map[string]interface{}:
		if url := stringField(v, "url"); url != "" {
			return url
		}
		if data, ok := asRecord(v["data"]); ok {
			if attrs, ok := asRecord(data["attributes"]); ok {
				if url := stringField(attrs, "url"); url != "" {
					return url
				}
			}
		}
		if attrs, ok := asRecord(v["attributes"]); ok {
			if url := stringField(attrs, "url"); url != "" {
				return url
			}
		}
	}
	return ""
}

// unwrapRecord разворачивает вложенность поколений API хранилища:
// {"id": 1, "attributes": {...}} или {"data": {...}}
// Поля attributes поднимаются на верхний уровень, id остается внешним
func unwrapRecord(rec map[string]interface{}) map[string]interface{} {
	if data, ok := asRecord(rec["data"]); ok && len(rec) <= 2 {
		rec = data
	}

	attrs, ok := asRecord(rec["attributes"])
	if !ok {
		return rec
	}

	merged := make(map[string]interface{}, len(attrs)+2)
	for k, v := range attrs {
		merged[k] = v
	}
	if id, exists := rec["id"]; exists {
		merged["id"] = id
	}
	if docID, exists := rec["documentId"]; exists {
		merged["documentId"] = docID
	}
	return merged
}

func parseSchedule(rec map[string]interface{}) time.Time {
	for _, field := range scheduleFields {
		value := stringField(rec, field)
		if value == "" {
			continue
		}
		for _, layout := range scheduleLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func normalizeStatus(rec map[string]interface{}) domain.BookingStatus {
	for _, field := range statusFields {
		if value := stringField(rec, field); value != "" {
			return domain.BadgeStatus(value)
		}
	}
	return domain.DefaultStatus
}

// Низкоуровневые помощники доступа к полям

func asRecord(v interface{}) (map[string]interface{}, bool) {
	rec, ok := v.(map[string]interface{})
	return rec, ok
}

func stringField(rec map[string]interface{}, key string) string {
	if s, ok := rec[key].(string); ok {
		return s
	}
	return ""
}

func firstStringField(rec map[string]interface{}, keys []string) string {
	for _, key := range keys {
		if s := stringField(rec, key); s != "" {
			return s
		}
	}
	return ""
}

func intField(rec map[string]interface{}, key string) int64 {
	switch v := rec[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

func floatField(rec map[string]interface{}, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}
