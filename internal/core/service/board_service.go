package service

import (
	"github.com/rs/zerolog"

	"github.com/bulletinhq/bulletin-api/internal/api/metrics"
	"github.com/bulletinhq/bulletin-api/internal/core/domain"
	"github.com/bulletinhq/bulletin-api/internal/core/ports"
)

// BoardService implements the advertisement operations on top of the entity
// store. Ownership and duplicate checks live in the store, inside its
// critical section; this layer validates input and records outcomes.
type BoardService struct {
	store ports.BoardStore
	log   zerolog.Logger
}

func NewBoardService(store ports.BoardStore, log zerolog.Logger) *BoardService {
	return &BoardService{store: store, log: log}
}

func (s *BoardService) ListAds(viewerID int) []domain.AdListEntry {
	return s.store.ListAds(viewerID)
}

// CreateAd validates and creates a listing. An omitted price means free;
// a supplied price must parse as a non-negative number.
func (s *BoardService) CreateAd(ownerID int, title, description, rawPrice string) (domain.Advertisement, error) {
	if title == "" || description == "" {
		return domain.Advertisement{}, domain.ErrMissingAdFields
	}

	price := 0.0
	if rawPrice != "" {
		parsed, err := domain.ParsePrice(rawPrice)
		if err != nil {
			return domain.Advertisement{}, err
		}
		price = parsed
	}

	ad := s.store.CreateAd(ownerID, title, description, price)
	metrics.AdsCreatedTotal.Inc()
	s.log.Info().Int("ad_id", ad.ID).Int("owner_id", ownerID).Msg("advertisement created")
	return ad, nil
}

func (s *BoardService) DeleteAd(requesterID, adID int) error {
	if err := s.store.DeleteAd(requesterID, adID); err != nil {
		return err
	}
	s.log.Info().Int("ad_id", adID).Int("user_id", requesterID).Msg("advertisement deleted")
	return nil
}

func (s *BoardService) Respond(requesterID, adID int) error {
	if err := s.store.RespondToAd(requesterID, adID); err != nil {
		return err
	}
	metrics.AdResponsesTotal.Inc()
	s.log.Info().Int("ad_id", adID).Int("user_id", requesterID).Msg("response recorded")
	return nil
}

func (s *BoardService) MyResponses(requesterID int) []domain.RespondedAdView {
	return s.store.ResponsesByUser(requesterID)
}

func (s *BoardService) Responders(requesterID, adID int) ([]domain.Responder, error) {
	return s.store.Responders(requesterID, adID)
}
