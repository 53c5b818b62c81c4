package equipment

import (
	"sync"

	"github.com/m04kA/HMS-TriageService/internal/domain"
)

// Repository реестр оборудования в памяти.
// Владеет всеми записями Equipment на время жизни процесса: записи
// создаются один раз при старте из конфигурации и никогда не удаляются.
//
// Доступ защищён мьютексом, потому что отложенный таймер освобождения
// оборудования срабатывает в собственной горутине, независимо от
// последовательной обработки запросов.
type Repository struct {
	mu    sync.Mutex
	items []*domain.Equipment
	index map[int64]*domain.Equipment

	// Токен занятости на единицу оборудования. Каждый MarkInUse выдаёт
	// новый токен; Release с устаревшим токеном игнорируется, поэтому
	// старый таймер не может сбросить более позднюю занятость.
	tokens map[int64]uint64
}

// NewRepository создает реестр с фиксированным набором оборудования.
// Порядок вставки сохраняется при листинге.
func NewRepository(seed []*domain.Equipment) *Repository {
	r := &Repository{
		items:  make([]*domain.Equipment, 0, len(seed)),
		index:  make(map[int64]*domain.Equipment, len(seed)),
		tokens: make(map[int64]uint64, len(seed)),
	}
	for _, eq := range seed {
		item := *eq
		r.items = append(r.items, &item)
		r.index[item.ID] = &item
	}
	return r
}

// List возвращает снимок всего оборудования в порядке вставки.
// Возвращаются копии, чтобы вызывающий код не разделял внутреннее состояние.
func (r *Repository) List() []*domain.Equipment {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Equipment, 0, len(r.items))
	for _, eq := range r.items {
		item := *eq
		result = append(result, &item)
	}
	return result
}

// Get возвращает копию оборудования по ID
func (r *Repository) Get(id int64) (*domain.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	eq, ok := r.index[id]
	if !ok {
		return nil, ErrEquipmentNotFound
	}
	item := *eq
	return &item, nil
}

// SetStatus устанавливает статус оборудования.
// Неизвестный ID молча игнорируется - вызывающий код никогда не падает.
func (r *Repository) SetStatus(id int64, status domain.EquipmentStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if eq, ok := r.index[id]; ok {
		eq.Status = status
	}
}

// MarkInUse переводит оборудование в статус IN_USE и выдаёт токен
// занятости для последующего освобождения. Возвращает false для
// неизвестного ID (заявки не проверяются по внешнему ключу, поэтому
// диспетчеризация на несуществующее оборудование допустима).
func (r *Repository) MarkInUse(id int64) (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	eq, ok := r.index[id]
	if !ok {
		return 0, false
	}

	eq.Status = domain.EquipmentInUse
	r.tokens[id]++
	return r.tokens[id], true
}

// Release возвращает оборудование в статус AVAILABLE, если токен ещё
// актуален. Устаревший токен означает, что занятость была перезаписана
// более поздним MarkInUse, и освобождение игнорируется.
func (r *Repository) Release(id int64, token uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	eq, ok := r.index[id]
	if !ok || r.tokens[id] != token {
		return false
	}

	eq.Status = domain.EquipmentAvailable
	return true
}
