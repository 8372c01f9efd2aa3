package ledger

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/slot-booking/internal/models"
)

var (
	ErrNotFound    = errors.New("booking_not_found")
	ErrDuplicateID = errors.New("duplicate_booking_id")
)

// Ledger é o registro append-only das reservas confirmadas.
// Nenhuma regra de negócio vive aqui: qualquer rejeição acontece
// antes, no coordinator — o ledger só grava e lê.
type Ledger interface {
	Record(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
}
