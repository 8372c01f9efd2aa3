package booking

import (
	"context"

	"github.com/BruksfildServices01/slot-booking/internal/ledger"
	"github.com/BruksfildServices01/slot-booking/internal/models"
)

type GetBooking struct {
	ledger ledger.Ledger
}

func NewGetBooking(l ledger.Ledger) *GetBooking {
	return &GetBooking{ledger: l}
}

func (uc *GetBooking) Execute(ctx context.Context, id string) (*models.Booking, error) {
	return uc.ledger.GetByID(ctx, id)
}
