package ledger

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-booking/internal/models"
)

type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

func (l *GormLedger) Record(ctx context.Context, b *models.Booking) error {
	err := l.db.WithContext(ctx).Create(b).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// id repetido nunca sobrescreve um registro existente
		return ErrDuplicateID
	}
	return err
}

func (l *GormLedger) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := l.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (l *GormLedger) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := l.db.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ Ledger = (*GormLedger)(nil)
