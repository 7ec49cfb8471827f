package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/ASTB-BookingService/internal/domain"
	"github.com/m04kA/ASTB-BookingService/internal/integrations/resend"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Notifier интерфейс внешнего отправителя уведомлений
type Notifier interface {
	SendBookingNotification(ctx context.Context, n *resend.BookingNotification) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
