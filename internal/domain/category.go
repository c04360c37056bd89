package domain

// Category категория услуг салона (маникюр, стрижка, ...).
// Создается при инициализации данных, на практике неизменяема.
type Category struct {
	ID   int64
	Name string
}
