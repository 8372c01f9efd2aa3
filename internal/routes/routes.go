package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-booking/internal/audit"
	"github.com/BruksfildServices01/slot-booking/internal/availability"
	"github.com/BruksfildServices01/slot-booking/internal/config"
	"github.com/BruksfildServices01/slot-booking/internal/handlers"
	"github.com/BruksfildServices01/slot-booking/internal/ledger"
	"github.com/BruksfildServices01/slot-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/slot-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleCfg := cfg.Schedule()

	bookingLedger := ledger.NewGormLedger(db)

	// availability: Redis quando configurado, senão a tabela de claims
	var store availability.Store = availability.NewGormStore(db)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store = availability.NewRedisStore(client)
		log.Printf("availability store: redis (%s)", cfg.RedisAddr)
	} else {
		log.Printf("availability store: postgres")
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	listDatesUC := ucBooking.NewListDates(cfg.HorizonDays)

	listSlotsUC := ucBooking.NewListSlots(scheduleCfg, store)

	bookSlotUC := ucBooking.NewBookSlot(
		scheduleCfg,
		store,
		bookingLedger,
		auditDispatcher,
	)

	getBookingUC := ucBooking.NewGetBooking(bookingLedger)

	listBookingsByDateUC := ucBooking.NewListBookingsByDate(bookingLedger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		listDatesUC,
		listSlotsUC,
		bookSlotUC,
		getBookingUC,
	)

	adminHandler := handlers.NewAdminHandler(listBookingsByDateUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public/booking")
		{
			publicAPI.GET("/dates", bookingHandler.ListDates)
			publicAPI.GET("/slots", bookingHandler.ListSlots)
			publicAPI.POST("/appointments", bookingHandler.Create)
			publicAPI.GET("/appointments/:id", bookingHandler.Get)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.GET("/admin/bookings", adminHandler.ListBookings)
	}
}
