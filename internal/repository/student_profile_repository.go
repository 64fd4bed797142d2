package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stemsi/aprec-backend/internal/model"
)

const studentProfileColumns = `id, interests, previous_courses, gpa, grade_level, created_at`

// StudentProfileRepository handles student profile data access.
type StudentProfileRepository struct {
	db DBTX
}

// NewStudentProfileRepository creates a new StudentProfileRepository.
func NewStudentProfileRepository(db DBTX) *StudentProfileRepository {
	return &StudentProfileRepository{db: db}
}

// List retrieves every profile, oldest first.
func (r *StudentProfileRepository) List(ctx context.Context) ([]model.StudentProfile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+studentProfileColumns+`
		 FROM student_profiles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query student profiles: %w", err)
	}
	defer rows.Close()

	profiles := []model.StudentProfile{}
	for rows.Next() {
		p, err := scanStudentProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate student profiles: %w", err)
	}
	return profiles, nil
}

// Latest retrieves the most recently created profile. Equal timestamps
// resolve to the later insert. Returns nil, nil on an empty table.
func (r *StudentProfileRepository) Latest(ctx context.Context) (*model.StudentProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+studentProfileColumns+`
		 FROM student_profiles ORDER BY created_at DESC, id DESC LIMIT 1`)

	p, err := scanStudentProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new profile; id and created_at are assigned by the store.
func (r *StudentProfileRepository) Create(ctx context.Context, p *model.StudentProfile) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO student_profiles (interests, previous_courses, gpa, grade_level)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		p.Interests, p.PreviousCourses, p.GPA, p.GradeLevel,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert student profile: %w", err)
	}
	return nil
}

// DeleteAll removes every profile.
func (r *StudentProfileRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM student_profiles`); err != nil {
		return fmt.Errorf("delete student profiles: %w", err)
	}
	return nil
}

func scanStudentProfile(row pgx.Row) (*model.StudentProfile, error) {
	var p model.StudentProfile
	err := row.Scan(&p.ID, &p.Interests, &p.PreviousCourses, &p.GPA, &p.GradeLevel, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan student profile: %w", err)
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	return &p, nil
}
