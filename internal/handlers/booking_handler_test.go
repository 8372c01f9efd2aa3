package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-booking/internal/availability"
	"github.com/BruksfildServices01/slot-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/slot-booking/internal/ledger"
	"github.com/BruksfildServices01/slot-booking/internal/timezone"
	"github.com/BruksfildServices01/slot-booking/internal/usecase/booking"
)

// ======================================================
// SETUP
// ======================================================

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := schedule.Config{
		OpenTime:          "09:00",
		CloseTime:         "18:00",
		SlotDuration:      30 * time.Minute,
		DisallowPastDates: true,
	}

	store := availability.NewMemoryStore()
	led := ledger.NewMemoryLedger()

	bookingHandler := NewBookingHandler(
		booking.NewListDates(7),
		booking.NewListSlots(cfg, store),
		booking.NewBookSlot(cfg, store, led, nil),
		booking.NewGetBooking(led),
	)
	adminHandler := NewAdminHandler(booking.NewListBookingsByDate(led))

	r := gin.New()
	api := r.Group("/api")
	{
		publicAPI := api.Group("/public/booking")
		{
			publicAPI.GET("/dates", bookingHandler.ListDates)
			publicAPI.GET("/slots", bookingHandler.ListSlots)
			publicAPI.POST("/appointments", bookingHandler.Create)
			publicAPI.GET("/appointments/:id", bookingHandler.Get)
		}
		api.GET("/admin/bookings", adminHandler.ListBookings)
	}
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tomorrow() string {
	return schedule.Today(timezone.Location()).AddDays(1).String()
}

func bookingBody(date, start, end string) string {
	b, _ := json.Marshal(gin.H{
		"date":         date,
		"start_time":   start,
		"end_time":     end,
		"client_name":  "李雷",
		"client_phone": "138-1234-5678",
		"notes":        "primeira consulta",
	})
	return string(b)
}

// ======================================================
// DATES
// ======================================================

func TestListDatesEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/public/booking/dates", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Dates []string `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Dates, 7)
	assert.Equal(t, schedule.Today(timezone.Location()).String(), resp.Dates[0])
	for i := 1; i < len(resp.Dates); i++ {
		assert.Less(t, resp.Dates[i-1], resp.Dates[i])
	}
}

// ======================================================
// SLOTS
// ======================================================

func TestListSlotsEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/public/booking/slots?date="+tomorrow(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date  string `json:"date"`
		Slots []struct {
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
			Available bool   `json:"available"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Slots, 18)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "18:00", resp.Slots[17].EndTime)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
}

func TestListSlotsEndpointValidation(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/public/booking/slots", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/api/public/booking/slots?date=10-06-2025", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_date")
}

// ======================================================
// CREATE + GET
// ======================================================

func TestCreateBookingEndpoint(t *testing.T) {
	r := newTestRouter()
	date := tomorrow()

	w := doJSON(r, http.MethodPost, "/api/public/booking/appointments", bookingBody(date, "10:00", "10:30"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID          string `json:"id"`
		Date        string `json:"date"`
		StartTime   string `json:"start_time"`
		ClientPhone string `json:"client_phone"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, date, created.Date)
	assert.Equal(t, "10:00", created.StartTime)
	assert.Equal(t, "138-1234-5678", created.ClientPhone)

	// round trip pelo GET
	w = doJSON(r, http.MethodGet, "/api/public/booking/appointments/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)

	// o slot passa a aparecer ocupado
	w = doJSON(r, http.MethodGet, "/api/public/booking/slots?date="+date, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"start_time":"10:00","end_time":"10:30","available":false`)

	// segunda reserva no mesmo slot → 409
	w = doJSON(r, http.MethodPost, "/api/public/booking/appointments", bookingBody(date, "10:00", "10:30"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "slot_taken")
}

func TestCreateBookingEndpointRejections(t *testing.T) {
	r := newTestRouter()

	// corpo sem campos obrigatórios
	w := doJSON(r, http.MethodPost, "/api/public/booking/appointments", `{"date":"2025-06-10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// contato inválido: os dois campos voltam juntos
	body, _ := json.Marshal(gin.H{
		"date":         tomorrow(),
		"start_time":   "10:00",
		"end_time":     "10:30",
		"client_name":  "A",
		"client_phone": "12-34",
	})
	w = doJSON(r, http.MethodPost, "/api/public/booking/appointments", string(body))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code   string `json:"error_code"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_contact", resp.Code)
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "name", resp.Fields[0].Field)
	assert.Equal(t, "phone", resp.Fields[1].Field)

	// data passada
	past := schedule.Today(timezone.Location()).AddDays(-1).String()
	w = doJSON(r, http.MethodPost, "/api/public/booking/appointments", bookingBody(past, "10:00", "10:30"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "past_date")

	// slot fora da grade
	w = doJSON(r, http.MethodPost, "/api/public/booking/appointments", bookingBody(tomorrow(), "10:15", "10:45"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown_slot")
}

func TestGetBookingNotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/public/booking/appointments/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "booking_not_found")
}

// ======================================================
// ADMIN
// ======================================================

func TestAdminListBookings(t *testing.T) {
	r := newTestRouter()
	date := tomorrow()

	w := doJSON(r, http.MethodPost, "/api/public/booking/appointments", bookingBody(date, "09:30", "10:00"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/api/public/booking/appointments", bookingBody(date, "09:00", "09:30"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/bookings?date="+date, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			StartTime string `json:"start_time"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "09:00", resp.Data[0].StartTime)
	assert.Equal(t, "09:30", resp.Data[1].StartTime)
}
