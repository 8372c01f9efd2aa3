package booking

import (
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/timezone"
)

// ListDates enumera o horizonte reservável: hoje até hoje+N-1.
// O tamanho do horizonte é decisão do negócio, não do core.
type ListDates struct {
	horizonDays int
}

func NewListDates(horizonDays int) *ListDates {
	if horizonDays <= 0 {
		horizonDays = 7
	}
	return &ListDates{horizonDays: horizonDays}
}

func (uc *ListDates) Execute() []string {
	today := schedule.Today(timezone.Location())

	dates := make([]string, 0, uc.horizonDays)
	for i := 0; i < uc.horizonDays; i++ {
		dates = append(dates, today.AddDays(i).String())
	}

	return dates
}
