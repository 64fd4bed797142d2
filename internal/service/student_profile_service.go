package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/aprec-backend/internal/model"
	"github.com/stemsi/aprec-backend/internal/repository"
)

// StudentProfileService handles student profile reads.
type StudentProfileService struct {
	store repository.Store
	log   zerolog.Logger
}

// NewStudentProfileService creates a new StudentProfileService.
func NewStudentProfileService(store repository.Store, log zerolog.Logger) *StudentProfileService {
	return &StudentProfileService{
		store: store,
		log:   log.With().Str("component", "student_profile_service").Logger(),
	}
}

// List retrieves every student profile.
func (s *StudentProfileService) List(ctx context.Context) ([]model.StudentProfile, error) {
	var profiles []model.StudentProfile
	err := s.store.WithSession(ctx, func(sess repository.Session) error {
		var err error
		profiles, err = sess.ListStudentProfiles(ctx)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list student profiles")
		return nil, err
	}
	if profiles == nil {
		profiles = []model.StudentProfile{}
	}
	return profiles, nil
}
