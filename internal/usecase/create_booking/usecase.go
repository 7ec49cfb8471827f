package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/ASTB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/ASTB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/ASTB-BookingService/internal/integrations/resend"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости идёт по свежему списку из хранилища, а затем
// повторяется атомарно внутри записи - две почти одновременные заявки
// на один слот дают ровно одно бронирование и один конфликт.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, slot=%s", req.Date, req.TimeSlot)

	// 1. Нормализация и валидация входных данных
	normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты: будний день, минимум за один календарный день
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: unparseable date %q: %v", req.Date, err)
		return nil, ErrInvalidDate
	}
	if !domain.IsWeekday(date) {
		uc.logger.Warn("CreateBooking: date %s is not a weekday", req.Date)
		return nil, ErrInvalidDate
	}

	now := uc.timeProvider.Now()
	if date.Before(domain.MinBookableDate(now)) {
		uc.logger.Warn("CreateBooking: date %s is before the minimum bookable date", req.Date)
		return nil, ErrTooSoon
	}

	// 3. Свежее чтение списка непосредственно перед проверкой занятости -
	// проверка никогда не идёт по закэшированному состоянию
	bookings, err := uc.bookingRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	if domain.IsSlotTaken(bookings, req.Date, req.TimeSlot) {
		uc.logger.Warn("CreateBooking: slot %s %s is taken", req.Date, req.TimeSlot)
		return nil, ErrSlotNotAvailable
	}

	// 4. Создаем бронирование в статусе pending
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Name:      req.Name,
		Email:     req.Email,
		Status:    domain.StatusPending,
		Note:      req.Note,
		CreatedAt: now,
	}

	created, err := uc.bookingRepo.Append(ctx, booking)
	if err != nil {
		// Проигранная гонка за слот выглядит для клиента так же,
		// как обычный конфликт
		if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot %s %s was taken concurrently", req.Date, req.TimeSlot)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to persist booking: %v", err)
		return nil, fmt.Errorf("%w: failed to persist booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	// 5. Уведомление строго после успешной записи; его сбой логируется
	// и проглатывается - бронирование никогда не откатывается
	notification := &resend.BookingNotification{
		Name:     created.Name,
		Email:    created.Email,
		Date:     created.Date,
		TimeSlot: created.TimeSlot,
		Note:     created.Note,
	}
	if err := uc.notifier.SendBookingNotification(ctx, notification); err != nil {
		uc.logger.Error("CreateBooking: failed to send notification for booking id=%s: %v", created.ID, err)
	}

	return &Response{
		ID:        created.ID,
		Date:      created.Date,
		TimeSlot:  created.TimeSlot,
		Name:      created.Name,
		Email:     created.Email,
		Status:    string(created.Status),
		Note:      created.Note,
		CreatedAt: created.CreatedAt,
	}, nil
}
