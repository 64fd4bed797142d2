package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/aprec-backend/internal/model"
	"github.com/stemsi/aprec-backend/internal/repository"
)

// APClassService handles AP class catalog reads.
type APClassService struct {
	store repository.Store
	log   zerolog.Logger
}

// NewAPClassService creates a new APClassService.
func NewAPClassService(store repository.Store, log zerolog.Logger) *APClassService {
	return &APClassService{
		store: store,
		log:   log.With().Str("component", "ap_class_service").Logger(),
	}
}

// ListOffered retrieves the classes currently offered.
func (s *APClassService) ListOffered(ctx context.Context) ([]model.APClass, error) {
	var classes []model.APClass
	err := s.store.WithSession(ctx, func(sess repository.Session) error {
		var err error
		classes, err = sess.ListOfferedClasses(ctx)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list offered classes")
		return nil, err
	}
	if classes == nil {
		classes = []model.APClass{}
	}
	return classes, nil
}
