package service

import (
	"context"

	"palette/internal/models"
	"palette/internal/repository"
)

// OfferService is the lifecycle service for group-purchase offers, extended
// with the participation ledger.
type OfferService struct {
	*ListingService[*models.Offer, EditOfferInput]
	participants repository.ParticipantRepository
}

// NewOfferService wires the offer lifecycle over the offer store and the
// shared ledgers.
func NewOfferService(
	repo repository.ListingRepository[*models.Offer],
	media repository.MediaRepository,
	bookmarks repository.BookmarkRepository,
	participants repository.ParticipantRepository,
) *OfferService {
	return &OfferService{
		ListingService: NewListingService[*models.Offer, EditOfferInput](
			repo, media, bookmarks, &offerPolicy{participants: participants},
		),
		participants: participants,
	}
}

// Join appends the member to the offer's participation ledger. The offer must
// exist; nothing prevents joining a closing offer or joining twice.
func (s *OfferService) Join(ctx context.Context, offerID, memberID uint) error {
	if _, err := s.repo.GetByID(ctx, offerID); err != nil {
		return err
	}
	return s.participants.Add(ctx, &models.Participant{
		MemberID: memberID,
		OfferID:  offerID,
	})
}
