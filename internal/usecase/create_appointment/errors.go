package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("create_appointment: master not found")

	// ErrMasterSpecialtyMismatch возвращается, когда специальность мастера
	// не соответствует категории услуги
	ErrMasterSpecialtyMismatch = errors.New("create_appointment: master specialty does not match service category")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrSalonClosed возвращается, когда салон не работает в указанную дату
	// (еженедельный выходной или праздник)
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrTimeInPast возвращается, когда момент начала записи уже прошел
	ErrTimeInPast = errors.New("create_appointment: appointment time is in the past")

	// ErrInvalidTimeSlot возвращается, когда время вне рабочих часов
	// или не выровнено по сетке слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда интервал у мастера занят
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrUserAlreadyBooked возвращается, когда у пользователя уже есть запись
	// на этот же момент времени (к любому мастеру)
	ErrUserAlreadyBooked = errors.New("create_appointment: user already has an appointment at this time")

	// ErrDuplicateAppointment возвращается при попытке создать точный дубликат
	// записи (та же услуга, мастер, дата и время)
	ErrDuplicateAppointment = errors.New("create_appointment: duplicate appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
