package service

import (
	"context"
	"errors"

	"github.com/stemsi/aprec-backend/internal/model"
	"github.com/stemsi/aprec-backend/internal/repository"
)

var errQuery = errors.New("query failed")

// fakeStore serves fixed rows and counts session lifecycles.
type fakeStore struct {
	profiles   []model.StudentProfile
	classes    []model.APClass
	acquireErr error
	queryErr   error

	opened       int
	released     int
	classQueries int
}

func (f *fakeStore) WithSession(ctx context.Context, fn func(repository.Session) error) error {
	if f.acquireErr != nil {
		return f.acquireErr
	}
	f.opened++
	defer func() { f.released++ }()
	return fn(f)
}

func (f *fakeStore) ListStudentProfiles(ctx context.Context) ([]model.StudentProfile, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.profiles, nil
}

func (f *fakeStore) LatestStudentProfile(ctx context.Context) (*model.StudentProfile, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if len(f.profiles) == 0 {
		return nil, nil
	}
	latest := f.profiles[0]
	for _, p := range f.profiles[1:] {
		if !p.CreatedAt.Before(latest.CreatedAt) {
			latest = p
		}
	}
	return &latest, nil
}

func (f *fakeStore) ListOfferedClasses(ctx context.Context) ([]model.APClass, error) {
	f.classQueries++
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var out []model.APClass
	for _, c := range f.classes {
		if c.Offered {
			out = append(out, c)
		}
	}
	return out, nil
}
