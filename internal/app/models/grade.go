package models

// EvaluationPeriod identifies the grading sitting a final grade belongs to.
type EvaluationPeriod string

const (
	PeriodOrdinary      EvaluationPeriod = "ORDINARY"
	PeriodExtraordinary EvaluationPeriod = "EXTRAORDINARY"
)

// PassThreshold is the minimum final grade considered a pass.
const PassThreshold = 5.0

// ItemGrade is one student's grade for one evaluation item.
// A nil Value means "no grade yet", which is distinct from 0.
// Natural key: (StudentID, ItemID).
type ItemGrade struct {
	ID        int64    `json:"id" db:"id"`
	StudentID string   `json:"studentId" db:"student_id"`
	ItemID    string   `json:"itemId" db:"item_id"`
	CourseID  string   `json:"courseId" db:"course_id"`
	Value     *float64 `json:"value" db:"value"` // Nullable
}

// ItemGradeCandidate is the input of an item-grade upsert.
// ValueSet distinguishes "not supplied" (stored value stays unchanged on
// update) from "explicitly cleared" (Value nil, stored value becomes null).
type ItemGradeCandidate struct {
	StudentID string
	ItemID    string
	CourseID  string
	Value     *float64
	ValueSet  bool
}

// FinalGrade is the per-period course outcome of a student.
// Natural key: (StudentID, CourseID, Period).
type FinalGrade struct {
	ID             int64            `json:"id" db:"id"`
	StudentID      string           `json:"studentId" db:"student_id"`
	CourseID       string           `json:"courseId" db:"course_id"`
	AcademicYearID string           `json:"academicYearId" db:"academic_year_id"`
	Period         EvaluationPeriod `json:"evaluationPeriod" db:"evaluation_period"`
	Value          float64          `json:"value" db:"value"`
	IsPassed       bool             `json:"isPassed" db:"is_passed"`
}

// FinalGradeRecord is the input of a final-grade upsert.
type FinalGradeRecord struct {
	StudentID      string
	CourseID       string
	AcademicYearID string
	Period         EvaluationPeriod
	Value          float64
	IsPassed       bool
}
