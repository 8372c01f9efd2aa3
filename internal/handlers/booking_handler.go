package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/ledger"
	"github.com/BruksfildServices01/slot-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	listDates  *booking.ListDates
	listSlots  *booking.ListSlots
	bookSlot   *booking.BookSlot
	getBooking *booking.GetBooking
}

func NewBookingHandler(
	listDates *booking.ListDates,
	listSlots *booking.ListSlots,
	bookSlot *booking.BookSlot,
	getBooking *booking.GetBooking,
) *BookingHandler {
	return &BookingHandler{
		listDates:  listDates,
		listSlots:  listSlots,
		bookSlot:   bookSlot,
		getBooking: getBooking,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:mm
	EndTime   string `json:"end_time" binding:"required"`   // HH:mm

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	AltContact  string `json:"alternative_contact"`
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// DATES
////////////////////////////////////////////////////////

func (h *BookingHandler) ListDates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"dates": h.listDates.Execute(),
	})
}

////////////////////////////////////////////////////////
// SLOTS
////////////////////////////////////////////////////////

func (h *BookingHandler) ListSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.listSlots.Execute(c.Request.Context(), dateStr)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.bookSlot.Execute(
		c.Request.Context(),
		booking.BookSlotInput{
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Contact: domain.Contact{
				Name:       req.ClientName,
				Phone:      req.ClientPhone,
				AltContact: req.AltContact,
				Notes:      req.Notes,
			},
		},
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func mapBookingError(c *gin.Context, err error) {
	var contactErr *domain.ContactError
	var persistErr *domain.PersistenceError

	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")

	case errors.Is(err, domain.ErrPastDate):
		httperr.BadRequest(c, "past_date", "Não é possível reservar datas passadas.")

	case errors.Is(err, domain.ErrUnknownSlot):
		httperr.BadRequest(c, "unknown_slot", "Horário fora da agenda.")

	case errors.Is(err, domain.ErrSlotTaken):
		httperr.Conflict(c, "slot_taken", "Horário acabou de ser reservado.")

	case errors.As(err, &contactErr):
		httperr.WriteFields(c, "invalid_contact", "Dados de contato inválidos.", contactErr.Fields)

	case errors.As(err, &persistErr):
		httperr.Unavailable(c, "persistence_failure", "Falha temporária, tente novamente.")

	default:
		httperr.Internal(c, "failed_to_create_booking", "Erro ao criar reserva.")
	}
}

////////////////////////////////////////////////////////
// GET BOOKING
////////////////////////////////////////////////////////

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")

	b, err := h.getBooking.Execute(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
			return
		}

		httperr.Internal(c, "failed_to_get_booking", "Erro ao buscar reserva.")
		return
	}

	c.JSON(http.StatusOK, b)
}
