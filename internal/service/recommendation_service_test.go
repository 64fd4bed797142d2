package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/aprec-backend/internal/model"
	"github.com/stemsi/aprec-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []model.APClass {
	return []model.APClass{
		{ID: 1, Name: "AP Biology", Description: "study of life", Offered: true},
		{ID: 2, Name: "AP Calculus", Description: "study of limits and derivatives", Offered: true},
		{ID: 3, Name: "AP Chemistry", Description: "study of matter and reactions", Offered: true},
		{ID: 4, Name: "AP Biochemistry", Description: "biology chemistry", Offered: false},
	}
}

func TestRecommendForLatest_UsesMostRecentStudent(t *testing.T) {
	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{
		profiles: []model.StudentProfile{
			{ID: 1, Interests: []string{"derivatives"}, CreatedAt: base},
			{ID: 2, Interests: []string{"biology", "chemistry"}, CreatedAt: base.Add(time.Hour)},
		},
		classes: catalog(),
	}
	svc := NewRecommendationService(store, 3, zerolog.Nop())

	got, err := svc.RecommendForLatest(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"AP Biology", "AP Chemistry"}, got)
	assert.Equal(t, 1, store.opened)
	assert.Equal(t, store.opened, store.released)
}

func TestRecommendForLatest_DefaultTopK(t *testing.T) {
	store := &fakeStore{
		profiles: []model.StudentProfile{{ID: 1, Interests: []string{"limits"}}},
		classes:  catalog(),
	}

	svc := NewRecommendationService(store, 2, zerolog.Nop())
	got, err := svc.RecommendForLatest(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"AP Calculus", "AP Biology"}, got)

	assert.Equal(t, 3, NewRecommendationService(store, 0, zerolog.Nop()).DefaultTopK())
}

func TestRecommendForLatest_NeverRecommendsUnofferedClasses(t *testing.T) {
	store := &fakeStore{
		profiles: []model.StudentProfile{{ID: 1, Interests: []string{"biology", "chemistry"}}},
		classes:  catalog(),
	}
	svc := NewRecommendationService(store, 3, zerolog.Nop())

	got, err := svc.RecommendForLatest(context.Background(), 10)
	require.NoError(t, err)
	assert.NotContains(t, got, "AP Biochemistry")
	assert.Len(t, got, 3)
}

func TestRecommendForLatest_EmptyInputs(t *testing.T) {
	t.Run("no students skips the class query", func(t *testing.T) {
		store := &fakeStore{classes: catalog()}
		svc := NewRecommendationService(store, 3, zerolog.Nop())

		got, err := svc.RecommendForLatest(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, []string{}, got)
		assert.Zero(t, store.classQueries)
	})

	t.Run("no offered classes", func(t *testing.T) {
		store := &fakeStore{
			profiles: []model.StudentProfile{{ID: 1, Interests: []string{"art"}}},
			classes:  []model.APClass{{ID: 9, Name: "AP Art", Description: "drawing", Offered: false}},
		}
		svc := NewRecommendationService(store, 3, zerolog.Nop())

		got, err := svc.RecommendForLatest(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, []string{}, got)
	})

	t.Run("student without interests still gets a ranking", func(t *testing.T) {
		store := &fakeStore{
			profiles: []model.StudentProfile{{ID: 1, Interests: []string{}}},
			classes:  catalog(),
		}
		svc := NewRecommendationService(store, 3, zerolog.Nop())

		got, err := svc.RecommendForLatest(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"AP Biology", "AP Calculus"}, got)
	})
}

func TestRecommendForLatest_StoreErrors(t *testing.T) {
	t.Run("unavailable", func(t *testing.T) {
		store := &fakeStore{acquireErr: repository.ErrStoreUnavailable}
		svc := NewRecommendationService(store, 3, zerolog.Nop())

		got, err := svc.RecommendForLatest(context.Background(), 3)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	})

	t.Run("query failure releases the session", func(t *testing.T) {
		store := &fakeStore{queryErr: errQuery}
		svc := NewRecommendationService(store, 3, zerolog.Nop())

		_, err := svc.RecommendForLatest(context.Background(), 3)
		assert.ErrorIs(t, err, errQuery)
		assert.Equal(t, 1, store.opened)
		assert.Equal(t, 1, store.released)
	})
}
