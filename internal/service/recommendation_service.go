package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/aprec-backend/internal/model"
	"github.com/stemsi/aprec-backend/internal/recommend"
	"github.com/stemsi/aprec-backend/internal/repository"
)

// RecommendationService ranks offered classes for the most recent student.
type RecommendationService struct {
	store       repository.Store
	defaultTopK int
	log         zerolog.Logger
}

// NewRecommendationService creates a new RecommendationService.
// A non-positive defaultTopK falls back to recommend.DefaultTopK.
func NewRecommendationService(store repository.Store, defaultTopK int, log zerolog.Logger) *RecommendationService {
	if defaultTopK <= 0 {
		defaultTopK = recommend.DefaultTopK
	}
	return &RecommendationService{
		store:       store,
		defaultTopK: defaultTopK,
		log:         log.With().Str("component", "recommendation_service").Logger(),
	}
}

// DefaultTopK is the result count used when the caller passes none.
func (s *RecommendationService) DefaultTopK() int {
	return s.defaultTopK
}

// RecommendForLatest fetches the latest student and the offered classes in
// one store session, then ranks them. Missing students or classes yield an
// empty result rather than an error.
func (s *RecommendationService) RecommendForLatest(ctx context.Context, topK int) ([]string, error) {
	if topK <= 0 {
		topK = s.defaultTopK
	}

	var (
		student *model.StudentProfile
		classes []model.APClass
	)
	err := s.store.WithSession(ctx, func(sess repository.Session) error {
		var err error
		student, err = sess.LatestStudentProfile(ctx)
		if err != nil || student == nil {
			return err
		}
		classes, err = sess.ListOfferedClasses(ctx)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load recommendation inputs")
		return nil, err
	}

	if student == nil || len(classes) == 0 {
		s.log.Debug().
			Bool("has_student", student != nil).
			Int("classes", len(classes)).
			Msg("nothing to recommend")
		return []string{}, nil
	}

	start := time.Now()
	names := recommend.Recommend(student.Interests, toCandidates(classes), topK)

	s.log.Debug().
		Int("student_id", student.ID).
		Int("classes", len(classes)).
		Int("top_k", topK).
		Dur("took", time.Since(start)).
		Msg("recommendations computed")

	return names, nil
}

func toCandidates(classes []model.APClass) []recommend.Candidate {
	out := make([]recommend.Candidate, 0, len(classes))
	for _, c := range classes {
		if !c.Offered {
			continue
		}
		out = append(out, recommend.Candidate{Name: c.Name, Description: c.Description})
	}
	return out
}
