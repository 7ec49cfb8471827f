package get_availability

import "context"

// UseCase use case для получения занятых слотов.
// Публичная страница по этому списку гасит занятые слоты; группировок
// и подсчётов нет - клиент сам проверяет членство пары (дата, слот).
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает проекцию активных бронирований в пары (дата, слот).
// Ошибка чтения хранилища деградирует до пустого списка: страница
// показывает "всё свободно", а настоящей защитой остаётся повторная
// проверка занятости при создании бронирования.
func (uc *UseCase) Execute(ctx context.Context) *Response {
	bookings, err := uc.bookingRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list bookings, degrading to empty list: %v", err)
		return &Response{BookedSlots: []BookedSlot{}}
	}

	bookedSlots := make([]BookedSlot, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		bookedSlots = append(bookedSlots, BookedSlot{
			Date:     b.Date,
			TimeSlot: b.TimeSlot,
		})
	}

	uc.logger.Info("GetAvailability: %d booked slots", len(bookedSlots))
	return &Response{BookedSlots: bookedSlots}
}
