package render

import (
	"encoding/csv"
	"strings"

	"github.com/pkg/errors"
)

// EmitCSV serializes rows as CSV with the given separator. Cells containing
// the separator, a double quote, or a newline are quoted with doubled-quote
// escaping, so the output round-trips through ParseCSV.
func EmitCSV(rows [][]string, sep rune) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Comma = sep
	if err := w.WriteAll(rows); err != nil {
		return "", errors.Wrap(err, "failed to write csv")
	}
	return b.String(), nil
}

// ParseCSV splits CSV text on the separator, respecting quoted segments.
// Records may have varying field counts.
func ParseCSV(s string, sep rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(s))
	r.Comma = sep
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse csv")
	}
	return rows, nil
}
