package dto

// GradeTriple is one (item, type, value) cell group of an import row.
// The structure is declared explicitly instead of being inferred from
// column positions, so key order cannot change its meaning.
type GradeTriple struct {
	Item  string `json:"item"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ImportRow is one student line of an import batch. An empty triple value
// means "clear this grade"; an empty Extraordinary column means no
// extraordinary sitting was entered.
type ImportRow struct {
	Email         string        `json:"email"`
	Extraordinary string        `json:"extraordinary"`
	Grades        []GradeTriple `json:"grades"`
}

// ImportGradesRequest is the body of the grade import endpoint.
type ImportGradesRequest struct {
	Rows []ImportRow `json:"rows"`
}

// ImportGradesResponse is a partial-success report: rows that validated and
// were written land in Added, failed rows land in Errors. One bad row never
// discards the rest of the batch.
type ImportGradesResponse struct {
	Success bool       `json:"success"`
	Added   []string   `json:"added"`
	Errors  []RowError `json:"errors"`
}
