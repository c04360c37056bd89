package domain

// Service услуга салона
type Service struct {
	ID              int64
	Name            string
	CategoryID      int64
	Price           float64
	DurationMinutes int // всегда > 0, задает длину интервала записи
}
