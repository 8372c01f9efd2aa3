package ledger

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// MemoryLedger guarda as reservas em memória. Usado nos testes e em
// desenvolvimento sem Postgres.
type MemoryLedger struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		bookings: make(map[string]models.Booking),
	}
}

func (l *MemoryLedger) Record(_ context.Context, b *models.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.bookings[b.ID]; exists {
		return ErrDuplicateID
	}

	l.bookings[b.ID] = *b
	return nil
}

func (l *MemoryLedger) GetByID(_ context.Context, id string) (*models.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (l *MemoryLedger) ListByDate(_ context.Context, date string) ([]models.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []models.Booking
	for _, b := range l.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})

	return out, nil
}

var _ Ledger = (*MemoryLedger)(nil)
