package models

import "time"

// SlotClaim marca um slot como ocupado no store durável.
// Ausência de linha = slot livre.
type SlotClaim struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SlotKey string `gorm:"size:30;uniqueIndex;not null" json:"slot_key"`

	CreatedAt time.Time `json:"created_at"`
}
