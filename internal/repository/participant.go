package repository

import (
	"context"

	"palette/internal/models"

	"gorm.io/gorm"
)

// ParticipantRepository is the participation ledger for group-purchase offers.
type ParticipantRepository interface {
	Add(ctx context.Context, participant *models.Participant) error
	// CountForListing returns the offer's current occupancy.
	CountForListing(ctx context.Context, offerID uint) (int, error)
}

type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository.
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Add(ctx context.Context, participant *models.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepository) CountForListing(ctx context.Context, offerID uint) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Participant{}).
		Where("offer_id = ?", offerID).
		Count(&count).Error
	return int(count), err
}
