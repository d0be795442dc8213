package io

import (
	"encoding/csv"
	"io"

	"github.com/matzehuels/heatgrid/pkg/errors"
)

// ReadCSV decodes a three-column CSV table from r. ReadCSV does not close r.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode csv")
	}
	return fromRecords(records)
}
