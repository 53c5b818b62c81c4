package booking

import (
	"sync"
	"time"

	"github.com/m04kA/HMS-TriageService/internal/domain"
)

// Repository хранилище заявок в памяти.
// Единственный владелец всех записей Booking: записи живут только в
// процессе, диспетчеризованная заявка удаляется навсегда, без архива.
// ID монотонно возрастают и никогда не переиспользуются.
type Repository struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	index    map[int64]*domain.Booking
	nextID   int64
}

// NewRepository создает пустое хранилище заявок
func NewRepository() *Repository {
	return &Repository{
		bookings: make([]*domain.Booking, 0),
		index:    make(map[int64]*domain.Booking),
		nextID:   1,
	}
}

// Create сохраняет новую заявку, присваивая следующий ID.
// BookingTime устанавливается вызывающим кодом (usecase берёт его у
// своего TimeProvider); если он нулевой, подставляется текущее время.
func (r *Repository) Create(b *domain.Booking) *domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := *b
	record.ID = r.nextID
	r.nextID++

	if record.BookingTime.IsZero() {
		record.BookingTime = time.Now()
	}

	r.bookings = append(r.bookings, &record)
	r.index[record.ID] = &record

	result := record
	return &result
}

// GetByID возвращает копию заявки по ID
func (r *Repository) GetByID(id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.index[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	result := *b
	return &result, nil
}

// Confirm устанавливает авторитетный приоритет и переводит заявку в
// статус CONFIRMED. Повторное подтверждение повторно применяет
// приоритет - это не ошибка. BookingTime и ID не изменяются.
func (r *Repository) Confirm(id int64, priority domain.Priority) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.index[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	b.Priority = priority
	b.Status = domain.StatusConfirmed

	result := *b
	return &result, nil
}

// ListPending возвращает заявки в статусе PENDING в порядке создания
func (r *Repository) ListPending() []*domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.IsPending() {
			record := *b
			result = append(result, &record)
		}
	}
	return result
}

// ListConfirmedByEquipment возвращает CONFIRMED заявки на указанное
// оборудование в порядке создания. Возвращаются копии.
func (r *Repository) ListConfirmedByEquipment(equipmentID int64) []*domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.IsConfirmed() && b.EquipmentID == equipmentID {
			record := *b
			result = append(result, &record)
		}
	}
	return result
}

// CountConfirmedByEquipment возвращает длину очереди на оборудование
func (r *Repository) CountConfirmedByEquipment(equipmentID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, b := range r.bookings {
		if b.IsConfirmed() && b.EquipmentID == equipmentID {
			count++
		}
	}
	return count
}

// Remove безвозвратно удаляет заявку
func (r *Repository) Remove(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[id]; !ok {
		return ErrBookingNotFound
	}
	delete(r.index, id)

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			break
		}
	}
	return nil
}

// Len возвращает общее количество заявок в хранилище
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.bookings)
}
