package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/slot-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/slot-booking/internal/db"
	"github.com/BruksfildServices01/slot-booking/internal/middleware"
	"github.com/BruksfildServices01/slot-booking/internal/routes"
	"github.com/BruksfildServices01/slot-booking/internal/timezone"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	// InvalidConfig é erro de startup, nunca de requisição
	if err := cfg.Schedule().Validate(); err != nil {
		log.Fatalf("invalid schedule config: %v", err)
	}

	timezone.Set(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
