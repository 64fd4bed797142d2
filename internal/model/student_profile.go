package model

import "time"

// StudentProfile is a student's self-reported interests and academic record.
// JSON names follow the field names the frontend already consumes.
type StudentProfile struct {
	ID              int       `json:"id"`
	Interests       []string  `json:"interests"`
	PreviousCourses []string  `json:"previousCourses"`
	GPA             float64   `json:"GPA"`
	GradeLevel      *int      `json:"gradeLevel"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateStudentProfileRequest is the data-entry payload for a new profile.
type CreateStudentProfileRequest struct {
	Interests       []string `json:"interests" validate:"required,min=1,dive,required"`
	PreviousCourses []string `json:"previousCourses" validate:"omitempty,dive,required"`
	GPA             *float64 `json:"GPA" validate:"required,gte=0,lte=5"`
	GradeLevel      *int     `json:"gradeLevel" validate:"omitempty,oneof=9 10 11 12"`
}

// ToProfile converts a validated request into a StudentProfile.
func (r CreateStudentProfileRequest) ToProfile() *StudentProfile {
	p := &StudentProfile{
		Interests:       r.Interests,
		PreviousCourses: r.PreviousCourses,
		GradeLevel:      r.GradeLevel,
	}
	if r.GPA != nil {
		p.GPA = *r.GPA
	}
	return p
}
