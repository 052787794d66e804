// Package testutil provides shared test doubles and fixtures for core tests.
package testutil

import (
	"context"

	"palette/internal/models"
)

// MediaRepoStub is an in-memory media ledger preserving insertion order.
type MediaRepoStub struct {
	rows   []*models.Media
	nextID uint
}

// NewMediaRepoStub creates an in-memory media ledger stub for tests.
func NewMediaRepoStub() *MediaRepoStub {
	return &MediaRepoStub{nextID: 1}
}

// AddAll appends the batch in the caller's order.
func (s *MediaRepoStub) AddAll(_ context.Context, media []*models.Media) error {
	for _, m := range media {
		if m.ID == 0 {
			m.ID = s.nextID
			s.nextID++
		}
		s.rows = append(s.rows, m)
	}
	return nil
}

// DeleteByURL removes the matching row or reports NOT_FOUND.
func (s *MediaRepoStub) DeleteByURL(_ context.Context, url string) error {
	for i, m := range s.rows {
		if m.URL == url {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return models.NewNotFoundError("media", url)
}

// URLsForListing returns the listing's URLs in insertion order.
func (s *MediaRepoStub) URLsForListing(_ context.Context, kind models.ListingKind, listingID uint) ([]string, error) {
	var urls []string
	for _, m := range s.rows {
		if m.OwnerKind == kind && m.OwnerID == listingID {
			urls = append(urls, m.URL)
		}
	}
	return urls, nil
}

// BookmarkRepoStub is an in-memory bookmark ledger.
type BookmarkRepoStub struct {
	rows   []*models.Bookmark
	nextID uint
}

// NewBookmarkRepoStub creates an in-memory bookmark ledger stub for tests.
func NewBookmarkRepoStub() *BookmarkRepoStub {
	return &BookmarkRepoStub{nextID: 1}
}

// Add appends the relation row; duplicates are kept.
func (s *BookmarkRepoStub) Add(_ context.Context, bookmark *models.Bookmark) error {
	if bookmark.ID == 0 {
		bookmark.ID = s.nextID
		s.nextID++
	}
	s.rows = append(s.rows, bookmark)
	return nil
}

// CountForListing returns the row count for the listing.
func (s *BookmarkRepoStub) CountForListing(_ context.Context, kind models.ListingKind, listingID uint) (int, error) {
	count := 0
	for _, b := range s.rows {
		if b.OwnerKind == kind && b.OwnerID == listingID {
			count++
		}
	}
	return count, nil
}

// ParticipantRepoStub is an in-memory participation ledger.
type ParticipantRepoStub struct {
	rows   []*models.Participant
	nextID uint
}

// NewParticipantRepoStub creates an in-memory participant ledger stub for tests.
func NewParticipantRepoStub() *ParticipantRepoStub {
	return &ParticipantRepoStub{nextID: 1}
}

// Add appends the relation row.
func (s *ParticipantRepoStub) Add(_ context.Context, participant *models.Participant) error {
	if participant.ID == 0 {
		participant.ID = s.nextID
		s.nextID++
	}
	s.rows = append(s.rows, participant)
	return nil
}

// CountForListing returns the offer's occupancy.
func (s *ParticipantRepoStub) CountForListing(_ context.Context, offerID uint) (int, error) {
	count := 0
	for _, p := range s.rows {
		if p.OfferID == offerID {
			count++
		}
	}
	return count, nil
}
