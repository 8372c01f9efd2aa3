package booking

import (
	"context"

	"github.com/BruksfildServices01/slot-booking/internal/availability"
	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/timezone"
)

// SlotAvailability é a visão do slot entregue ao caller: o template
// do catálogo cruzado com o estado do availability store.
type SlotAvailability struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type ListSlots struct {
	cfg   schedule.Config
	store availability.Store
}

func NewListSlots(cfg schedule.Config, store availability.Store) *ListSlots {
	return &ListSlots{cfg: cfg, store: store}
}

func (uc *ListSlots) Execute(
	ctx context.Context,
	dateStr string,
) ([]SlotAvailability, error) {

	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	today := schedule.Today(timezone.Location())
	slots := schedule.SlotsFor(date, today, uc.cfg)

	out := make([]SlotAvailability, 0, len(slots))
	for _, s := range slots {
		free, err := uc.store.IsFree(ctx, s.Key())
		if err != nil {
			return nil, &domain.PersistenceError{Err: err}
		}

		out = append(out, SlotAvailability{
			StartTime: s.Start,
			EndTime:   s.End,
			Available: free,
		})
	}

	return out, nil
}
