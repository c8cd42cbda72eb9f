package get_schedule

import (
	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/pkg/types"
)

// SlotCatalog возвращает фиксированный упорядоченный список слотов:
// 18 получасовых интервалов с 9:00 AM до 5:30 PM
//
// Каталог не сверяется с уже существующими бронированиями на дату -
// каждый слот всегда доступен для выбора. Это известный пробел исходной
// системы, сохраненный сознательно, см. DESIGN.md
func SlotCatalog() []types.SlotTime {
	slots := make([]types.SlotTime, 0, domain.SlotCount)
	current := types.NewSlotTime(domain.BusinessOpenHour, 0)
	last := types.NewSlotTime(domain.BusinessCloseHour, domain.BusinessCloseMinute)

	for !last.Before(current) {
		slots = append(slots, current)
		current = current.AddMinutes(domain.SlotStepMinutes)
	}

	return slots
}

// SlotLabels возвращает каталог слотов в виде меток 12-часового формата
func SlotLabels() []string {
	catalog := SlotCatalog()
	labels := make([]string, len(catalog))
	for i, slot := range catalog {
		labels[i] = slot.String()
	}
	return labels
}

// IsValidSlotLabel проверяет, что метка присутствует в каталоге
func IsValidSlotLabel(label string) bool {
	for _, known := range SlotLabels() {
		if known == label {
			return true
		}
	}
	return false
}
