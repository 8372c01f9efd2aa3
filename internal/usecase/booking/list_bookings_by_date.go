package booking

import (
	"context"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/dto"
	"github.com/BruksfildServices01/slot-booking/internal/ledger"
)

type ListBookingsByDate struct {
	ledger ledger.Ledger
}

func NewListBookingsByDate(l ledger.Ledger) *ListBookingsByDate {
	return &ListBookingsByDate{ledger: l}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	dateStr string,
) ([]dto.BookingListDTO, error) {

	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	bookings, err := uc.ledger.ListByDate(ctx, date.String())
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Date:        b.Date,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			ClientName:  b.ClientName,
			ClientPhone: b.ClientPhone,
			CreatedAt:   b.CreatedAt,
		})
	}

	return out, nil
}
