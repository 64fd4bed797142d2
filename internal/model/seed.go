package model

// SeedData is the file format accepted by the seed command.
type SeedData struct {
	APClasses       []CreateAPClassRequest        `json:"apClasses" validate:"dive"`
	StudentProfiles []CreateStudentProfileRequest `json:"studentProfiles" validate:"dive"`
}
