package models

// Group is one course instance with a declared student roster,
// as exposed by the academic service.
type Group struct {
	ID             string   `json:"_id"`
	CourseID       string   `json:"courseId"`
	AcademicYearID string   `json:"academicYearId"`
	Students       []string `json:"students"` // account ids
}

// Course as exposed by the academic service. MaxGradeLimit, when present,
// overrides the configured fallback cap for failed minimum-grade gates.
type Course struct {
	ID            string   `json:"_id"`
	UniversityID  string   `json:"universityId"`
	Name          string   `json:"name"`
	MaxGradeLimit *float64 `json:"maxGradeLimit"` // Nullable
}

// Account is a university account as exposed by the identity service.
type Account struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}
