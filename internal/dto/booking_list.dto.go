package dto

import "time"

type BookingListDTO struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	CreatedAt   time.Time `json:"created_at"`
}
