package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/slot-booking/internal/domain/booking"
	"github.com/BruksfildServices01/slot-booking/internal/httperr"
	"github.com/BruksfildServices01/slot-booking/internal/httpresp"
	"github.com/BruksfildServices01/slot-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER — LISTAGEM ADMINISTRATIVA
// ======================================================

type AdminHandler struct {
	listByDate *booking.ListBookingsByDate
}

func NewAdminHandler(listByDate *booking.ListBookingsByDate) *AdminHandler {
	return &AdminHandler{listByDate: listByDate}
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	bookings, err := h.listByDate.Execute(c.Request.Context(), dateStr)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}

		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, bookings)
}
