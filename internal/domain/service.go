package domain

// Service represents a bookable service owned by the content store
// Read-only from the portal's perspective
type Service struct {
	ID              string
	LegacyID        int64
	Title           string
	DurationMinutes int
	Price           float64
	ImageURL        string
}
