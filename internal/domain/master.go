package domain

// Master мастер салона.
// Specialty — свободный текст, ожидается совпадение с Category.Name.
// Ссылочная целостность не обеспечивается (сопоставление по строке, не FK) —
// унаследованное свойство модели данных, см. DESIGN.md.
type Master struct {
	ID        int64
	Name      string
	Surname   string
	Specialty string
}

// FullName возвращает полное имя мастера для отображения
func (m *Master) FullName() string {
	return m.Name + " " + m.Surname
}
