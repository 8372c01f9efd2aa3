package availability

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-booking/internal/models"
)

// ======================================================
// STORE DURÁVEL (POSTGRES)
// ======================================================

// GormStore persiste o mapa chave → Claimed como linhas de SlotClaim.
// O índice único da chave faz o papel do compare-and-set: o INSERT de
// quem chega depois falha com duplicate key.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) IsFree(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.SlotClaim{}).
		Where("slot_key = ?", key).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func (s *GormStore) TryClaim(ctx context.Context, key string) (bool, error) {
	claim := models.SlotClaim{SlotKey: key}

	err := s.db.WithContext(ctx).Create(&claim).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	return false, err
}

func (s *GormStore) Release(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("slot_key = ?", key).
		Delete(&models.SlotClaim{}).Error
}

var _ Store = (*GormStore)(nil)
