package booking

import "errors"

var (
	// ErrStoreDisabled возвращается при попытке записи, когда хранилище не сконфигурировано
	ErrStoreDisabled = errors.New("booking.repository: store is not configured")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят активным бронированием
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrRead возвращается при ошибке чтения ключа бронирований
	ErrRead = errors.New("booking.repository: failed to read bookings key")

	// ErrWrite возвращается при ошибке записи ключа бронирований
	ErrWrite = errors.New("booking.repository: failed to write bookings key")

	// ErrDecode возвращается, когда содержимое ключа не разбирается как список бронирований
	ErrDecode = errors.New("booking.repository: failed to decode bookings payload")

	// ErrTxConflict возвращается, когда оптимистичная транзакция не прошла
	// после всех повторов из-за конкурентных записей
	ErrTxConflict = errors.New("booking.repository: transaction conflict, too many concurrent writes")
)
