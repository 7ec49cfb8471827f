package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ASTB-BookingService/internal/domain"
)

const testKey = "astb:bookings"

func newTestRepository(t *testing.T) (*Repository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRepository(client, testKey), mr
}

func newBooking(id, date, slot string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		Date:      date,
		TimeSlot:  slot,
		Name:      "Ada",
		Email:     "ada@x.com",
		Status:    status,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestListAllEmptyKey(t *testing.T) {
	repo, _ := newTestRepository(t)

	bookings, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestAppendAndListAll(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Append(ctx, newBooking("b1", "2025-03-10", "5-6pm", domain.StatusPending))
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "2025-03-10", bookings[0].Date)
	assert.Equal(t, "5-6pm", bookings[0].TimeSlot)
	assert.Equal(t, domain.StatusPending, bookings[0].Status)
}

func TestAppendSlotTaken(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Append(ctx, newBooking("b1", "2025-03-10", "5-6pm", domain.StatusPending))
	require.NoError(t, err)

	// Второй claim на ту же пару (date, slot) отбивается независимо от контактов
	second := newBooking("b2", "2025-03-10", "5-6pm", domain.StatusPending)
	second.Name = "Bob"
	second.Email = "bob@x.com"

	_, err = repo.Append(ctx, second)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestAppendFreeSlotSameDate(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Append(ctx, newBooking("b1", "2025-03-10", "5-6pm", domain.StatusPending))
	require.NoError(t, err)

	_, err = repo.Append(ctx, newBooking("b2", "2025-03-10", "6-7pm", domain.StatusPending))
	require.NoError(t, err)

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestUpdateStatus(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Append(ctx, newBooking("b1", "2025-03-10", "5-6pm", domain.StatusPending))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, "b1", domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	// Повторное подтверждение не ошибка и не меняет состояние
	updated, err = repo.UpdateStatus(ctx, "b1", domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.UpdateStatus(context.Background(), "missing", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDecodeErrorOnCorruptPayload(t *testing.T) {
	repo, mr := newTestRepository(t)
	mr.Set(testKey, "not-json")

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}

func TestDisabledStore(t *testing.T) {
	repo := NewRepository(nil, testKey)
	ctx := context.Background()

	// Чтение деградирует до пустого списка
	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	// Запись невозможна
	_, err = repo.Append(ctx, newBooking("b1", "2025-03-10", "5-6pm", domain.StatusPending))
	assert.ErrorIs(t, err, ErrStoreDisabled)

	// Подтверждать нечего
	_, err = repo.UpdateStatus(ctx, "b1", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestStoredPayloadShape(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	note := "bring practice materials"
	b := newBooking("b1", "2025-03-10", "5-6pm", domain.StatusPending)
	b.Note = &note

	_, err := repo.Append(ctx, b)
	require.NoError(t, err)

	raw, err := mr.Get(testKey)
	require.NoError(t, err)

	var stored []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 1)

	assert.Equal(t, "b1", stored[0]["id"])
	assert.Equal(t, "2025-03-10", stored[0]["date"])
	assert.Equal(t, "5-6pm", stored[0]["timeSlot"])
	assert.Equal(t, "pending", stored[0]["status"])
	assert.Equal(t, note, stored[0]["note"])
}

func TestConcurrentAppendDistinctSlots(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	// Восемь писателей на разные свободные слоты: каждый должен выиграть
	// свой WATCH-раунд за отведённые повторы, потерянных записей нет
	dates := []string{"2025-03-10", "2025-03-11"}
	var wg sync.WaitGroup
	errs := make([]error, len(dates)*len(domain.TimeSlots))

	i := 0
	for _, date := range dates {
		for _, slot := range domain.TimeSlots {
			wg.Add(1)
			go func(idx int, date, slot string) {
				defer wg.Done()
				b := newBooking(fmt.Sprintf("b-%d", idx), date, slot, domain.StatusPending)
				_, errs[idx] = repo.Append(ctx, b)
			}(i, date, slot)
			i++
		}
	}
	wg.Wait()

	for idx, err := range errs {
		assert.NoError(t, err, "writer %d", idx)
	}

	stored, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(errs))
}

func TestConcurrentAppendSameSlot(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	// Четыре почти одновременные заявки на один слот: ровно один победитель,
	// каждый проигравший получает конфликт занятости, а не внутреннюю ошибку
	const writers = 4
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			b := newBooking(fmt.Sprintf("b-%d", idx), "2025-03-10", "5-6pm", domain.StatusPending)
			_, errs[idx] = repo.Append(ctx, b)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		if err == nil {
			won++
			continue
		}
		lost++
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, writers-1, lost)

	stored, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "2025-03-10", stored[0].Date)
	assert.Equal(t, "5-6pm", stored[0].TimeSlot)
}
