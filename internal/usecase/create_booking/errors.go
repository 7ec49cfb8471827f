package create_booking

import "errors"

var (
	// ErrMissingField возвращается, когда обязательное поле пустое после trim
	ErrMissingField = errors.New("create_booking: missing required field")

	// ErrInvalidSlot возвращается, когда метка слота не входит в фиксированный набор
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidDate возвращается, когда дата не разбирается или выпадает на выходной
	ErrInvalidDate = errors.New("create_booking: date must be a weekday")

	// ErrTooSoon возвращается, когда дата раньше минимально бронируемой (завтра)
	ErrTooSoon = errors.New("create_booking: must book at least one day in advance")

	// ErrSlotNotAvailable возвращается, когда слот уже занят активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
