package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/ASTB-BookingService/internal/domain"
)

// Количество повторов оптимистичной транзакции при конкурентных записях.
// Каждый повтор заново перечитывает список и повторяет проверку занятости.
// Каждая проигранная попытка означает чужой успешный EXEC, так что N
// попыток гарантируют успех при N одновременных одноразовых писателях.
const maxTxRetries = 8

// Repository репозиторий бронирований поверх одного list-valued ключа
// в key-value хранилище. Весь список читается и переписывается целиком -
// построчного обновления у хранилища нет.
//
// Исходная схема check-then-write здесь закрыта: Append и UpdateStatus
// выполняются внутри WATCH-транзакции, конкурентная запись ключа роняет
// транзакцию вместо молчаливой перезаписи чужого append'а.
type Repository struct {
	client *redis.Client
	key    string
}

// NewRepository creates a booking repository over the given redis client.
// Клиент может быть nil - хранилище отключено конфигурацией: чтение
// возвращает пустой список, запись - ErrStoreDisabled.
func NewRepository(client *redis.Client, key string) *Repository {
	return &Repository{
		client: client,
		key:    key,
	}
}

// ListAll возвращает полный список бронирований.
// Отсутствующий ключ и отключённое хранилище дают пустой список.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	if r.client == nil {
		return []*domain.Booking{}, nil
	}

	data, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return []*domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll: %v", ErrRead, err)
	}

	return decodeBookings([]byte(data))
}

// Append добавляет новое бронирование в конец списка.
// Занятость слота перепроверяется по самому свежему списку внутри
// транзакции; занятый слот даёт ErrSlotNotAvailable.
func (r *Repository) Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.client == nil {
		return nil, ErrStoreDisabled
	}

	err := r.withRetries(ctx, func(tx *redis.Tx) error {
		bookings, err := r.readForUpdate(ctx, tx)
		if err != nil {
			return err
		}

		if domain.IsSlotTaken(bookings, booking.Date, booking.TimeSlot) {
			return ErrSlotNotAvailable
		}

		bookings = append(bookings, booking)
		return r.writeAll(ctx, tx, bookings)
	})
	if errors.Is(err, ErrTxConflict) {
		// Повторы исчерпаны - значит слот успел занять кто-то другой.
		// Проигравший в гонке за слот получает обычный конфликт занятости,
		// а не внутреннюю ошибку.
		if bookings, listErr := r.ListAll(ctx); listErr == nil &&
			domain.IsSlotTaken(bookings, booking.Date, booking.TimeSlot) {
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// UpdateStatus переводит бронирование с указанным id в новый статус и
// переписывает список. Повторный перевод в тот же статус не ошибка.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if r.client == nil {
		// Без хранилища бронирований не существует
		return nil, ErrBookingNotFound
	}

	var updated *domain.Booking

	err := r.withRetries(ctx, func(tx *redis.Tx) error {
		bookings, err := r.readForUpdate(ctx, tx)
		if err != nil {
			return err
		}

		updated = nil
		for _, b := range bookings {
			if b.ID == id {
				b.Status = status
				updated = b
				break
			}
		}
		if updated == nil {
			return ErrBookingNotFound
		}

		return r.writeAll(ctx, tx, bookings)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// withRetries выполняет fn внутри WATCH-транзакции над ключом бронирований,
// повторяя её при конфликте с конкурентной записью
func (r *Repository) withRetries(ctx context.Context, fn func(tx *redis.Tx) error) error {
	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, fn, r.key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrTxConflict
}

// readForUpdate читает список внутри транзакции (ключ уже под WATCH)
func (r *Repository) readForUpdate(ctx context.Context, tx *redis.Tx) ([]*domain.Booking, error) {
	data, err := tx.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return []*domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: readForUpdate: %v", ErrRead, err)
	}

	return decodeBookings([]byte(data))
}

// writeAll переписывает ключ целиком; SET уходит в EXEC и срабатывает,
// только если ключ не менялся с момента WATCH
func (r *Repository) writeAll(ctx context.Context, tx *redis.Tx, bookings []*domain.Booking) error {
	payload, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: writeAll - marshal: %v", ErrWrite, err)
	}

	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key, payload, 0)
		return nil
	})
	if err != nil {
		// TxFailedErr пробрасываем как есть - его обрабатывает retry-цикл
		if errors.Is(err, redis.TxFailedErr) {
			return err
		}
		return fmt.Errorf("%w: writeAll - exec: %v", ErrWrite, err)
	}

	return nil
}

func decodeBookings(data []byte) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return bookings, nil
}
