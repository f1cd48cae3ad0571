package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mertkaradayi/gradecore/internal/app/models/dto"
)

// ParseCSVRows reads a tabular import file into import rows. The first
// record is a header and is skipped. Per data record: column 0 is the
// email, column 1 the extraordinary grade, and the remaining cells are
// consumed three at a time as (item, type, value) triples. A trailing
// partial triple is padded with empty cells so its validation errors
// surface per triple instead of failing the file.
func ParseCSVRows(r io.Reader) ([]dto.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may carry different triple counts
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	rows := make([]dto.ImportRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := dto.ImportRow{}
		if len(record) > 0 {
			row.Email = record[0]
		}
		if len(record) > 1 {
			row.Extraordinary = record[1]
		}

		for i := 2; i < len(record); i += 3 {
			triple := dto.GradeTriple{Item: record[i]}
			if i+1 < len(record) {
				triple.Type = record[i+1]
			}
			if i+2 < len(record) {
				triple.Value = record[i+2]
			}
			row.Grades = append(row.Grades, triple)
		}

		rows = append(rows, row)
	}

	return rows, nil
}
