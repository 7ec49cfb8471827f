package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ASTB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/ASTB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/ASTB-BookingService/internal/service/bookings/models"
)

// Service сервис администрирования бронирований: просмотр полного списка
// и подтверждение оплаты. Авторизация по общему секрету выполняется
// middleware'ом до вызова сервиса.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List возвращает полный список бронирований для админской страницы
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Confirm переводит бронирование в статус confirmed после ручной проверки
// оплаты. Переход только pending -> confirmed; повторное подтверждение
// уже подтверждённого бронирования молча успешно - идемпотентность
// не гарантируется, отдельной ошибки для этого случая нет.
func (s *Service) Confirm(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%s", id)

	booking, err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusConfirmed)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}
