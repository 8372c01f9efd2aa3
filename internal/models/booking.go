package models

import "time"

// Booking é o registro imutável de uma reserva confirmada.
// Nunca é alterado nem apagado pelo core — cancelamento é uma
// operação externa que também liberaria o claim do slot.
type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Date      string `gorm:"size:10;not null;index;uniqueIndex:idx_booking_slot" json:"date"`
	StartTime string `gorm:"size:5;not null;uniqueIndex:idx_booking_slot" json:"start_time"`
	EndTime   string `gorm:"size:5;not null;uniqueIndex:idx_booking_slot" json:"end_time"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`
	AltContact  string `gorm:"size:100" json:"alternative_contact,omitempty"`
	Notes       string `gorm:"size:500" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// SlotKey reconstrói a chave composta usada pelo availability store.
func (b *Booking) SlotKey() string {
	return b.Date + "|" + b.StartTime + "-" + b.EndTime
}
