package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/slot-booking/internal/audit"
	"github.com/BruksfildServices01/slot-booking/internal/availability"
	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/ledger"
	"github.com/BruksfildServices01/slot-booking/internal/models"
	"github.com/BruksfildServices01/slot-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	Date      string // YYYY-MM-DD
	StartTime string // HH:mm
	EndTime   string // HH:mm

	Contact domain.Contact
}

// ======================================================
// USE CASE — RESERVATION COORDINATOR
// ======================================================

// BookSlot orquestra uma tentativa de reserva:
// valida → claim atômico → grava no ledger → confirma.
// Qualquer falha depois do claim desfaz o claim (compensação).
type BookSlot struct {
	cfg    schedule.Config
	store  availability.Store
	ledger ledger.Ledger
	audit  *audit.Dispatcher
}

func NewBookSlot(
	cfg schedule.Config,
	store availability.Store,
	ledger ledger.Ledger,
	audit *audit.Dispatcher,
) *BookSlot {
	return &BookSlot{
		cfg:    cfg,
		store:  store,
		ledger: ledger,
		audit:  audit,
	}
}

func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Data e existência do slot no catálogo
	// --------------------------------------------------
	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	today := schedule.Today(timezone.Location())
	if date.Before(today) {
		return nil, domain.ErrPastDate
	}

	if !schedule.Contains(date, today, uc.cfg, in.StartTime, in.EndTime) {
		return nil, domain.ErrUnknownSlot
	}

	// --------------------------------------------------
	// 2. Contato (todos os erros de campo de uma vez)
	// --------------------------------------------------
	if fields := in.Contact.Validate(); len(fields) > 0 {
		return nil, &domain.ContactError{Fields: fields}
	}
	contact := in.Contact.Normalized()

	// --------------------------------------------------
	// 3. Claim atômico do slot
	// --------------------------------------------------
	slot := schedule.Slot{Date: date, Start: in.StartTime, End: in.EndTime}

	claimed, err := uc.store.TryClaim(ctx, slot.Key())
	if err != nil {
		return nil, &domain.PersistenceError{Err: err}
	}
	if !claimed {
		uc.audit.Dispatch(audit.Event{
			Action: "booking_conflict",
			Entity: "slot",
			Metadata: map[string]any{
				"slot_key": slot.Key(),
			},
		})
		return nil, domain.ErrSlotTaken
	}

	// --------------------------------------------------
	// 4. Persistência (retry único + compensação)
	// --------------------------------------------------
	b := &models.Booking{
		ID:          uuid.NewString(),
		Date:        date.String(),
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		ClientName:  contact.Name,
		ClientPhone: contact.Phone,
		AltContact:  contact.AltContact,
		Notes:       contact.Notes,
		CreatedAt:   time.Now().In(timezone.Location()),
	}

	if err := uc.record(ctx, b); err != nil {
		// nunca deixar um slot Claimed sem Booking correspondente
		if relErr := uc.store.Release(ctx, slot.Key()); relErr != nil {
			uc.audit.Dispatch(audit.Event{
				Action:   "claim_release_failed",
				Entity:   "slot",
				Metadata: map[string]any{"slot_key": slot.Key()},
			})
		}
		return nil, &domain.PersistenceError{Err: err}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	// a confirmação é o próprio Booking, sem transformação
	return b, nil
}

// record tenta gravar no ledger, com um retry em falha transitória.
// Colisão de id é tratada gerando um id novo na segunda tentativa.
func (uc *BookSlot) record(ctx context.Context, b *models.Booking) error {
	err := uc.ledger.Record(ctx, b)
	if err == nil {
		return nil
	}

	if err == ledger.ErrDuplicateID {
		b.ID = uuid.NewString()
	}

	return uc.ledger.Record(ctx, b)
}
