package domain

// Calendar grid constants
const (
	// CalendarGridCells размер сетки календаря: 6 строк по 7 дней
	CalendarGridCells = 42
	// CalendarGridColumns число колонок (неделя начинается с воскресенья)
	CalendarGridColumns = 7
)

// Business hours and slot constants
const (
	BusinessOpenHour    = 9  // 9:00 AM
	BusinessCloseHour   = 17 // последний слот 5:30 PM
	BusinessCloseMinute = 30
	SlotStepMinutes     = 30
	SlotCount           = 18
)

// Sentinel defaults
// Нормализатор никогда не возвращает ошибку: отсутствующие поля получают
// эти значения, чтобы слою отображения всегда было что показать
const (
	ValueNotAvailable = "N/A"

	// PlaceholderImageURL картинка-заглушка для услуг без изображения
	PlaceholderImageURL = "https://placehold.co/600x400?text=Service"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"   // YYYY-MM
)

// DefaultStatus канонический статус по умолчанию
// Исходные реализации расходились (pending в одном месте, confirmed в другом);
// выбран единый дефолт confirmed, см. DESIGN.md
const DefaultStatus = StatusConfirmed
