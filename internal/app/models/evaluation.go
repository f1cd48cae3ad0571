package models

// EvaluationType is a category of assessment (e.g. "Exam") scoped to a
// university. Read-only reference data fetched from the academic service.
type EvaluationType struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// EvaluationItem is one gradable unit belonging to an evaluation type.
// Weight is a percent within its type; MinGrade, when set, gates the
// course outcome.
type EvaluationItem struct {
	ID               string   `json:"_id"`
	Name             string   `json:"name"`
	EvaluationTypeID string   `json:"evaluationTypeId"`
	Weight           float64  `json:"weight"`
	MinGrade         *float64 `json:"minGrade"` // Nullable
}

// EvaluationGroup is the weight a course assigns to one evaluation type's
// aggregate contribution to the final grade.
type EvaluationGroup struct {
	EvaluationTypeID string  `json:"evaluationTypeId"`
	TotalWeight      float64 `json:"totalWeight"`
}

// EvaluationSystem is a course's full set of evaluation groups. Group
// weights are assumed, not enforced, to sum to 100.
type EvaluationSystem struct {
	EvaluationGroups []EvaluationGroup `json:"evaluationGroups"`
}
