package io

import (
	"strconv"
	"strings"

	"github.com/matzehuels/heatgrid/pkg/axis"
	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/heatmap"
)

// Point is a data point keyed by label.
type Point = heatmap.Point[string, string]

// Table is an imported data set.
type Table struct {
	XTitle string
	YTitle string
	Points []Point
}

// Axes builds the x and y axes in first-occurrence order.
func (t *Table) Axes() (*axis.Axis[string], *axis.Axis[string]) {
	xs := axis.New[string](t.XTitle)
	ys := axis.New[string](t.YTitle)
	for _, p := range t.Points {
		xs.Add(p.X, p.X)
		ys.Add(p.Y, p.Y)
	}
	return xs, ys
}

// Values returns the number of points that carry a value.
func (t *Table) Values() int {
	n := 0
	for _, p := range t.Points {
		if p.Value != nil {
			n++
		}
	}
	return n
}

// fromRecords converts a header row plus data rows into a table. Errors
// name the 1-based source row.
func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.Data("table is empty")
	}
	header := records[0]
	if len(header) < 3 {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"header needs 3 columns (x, y, value), got %d", len(header))
	}
	t := &Table{
		XTitle: strings.TrimSpace(header[0]),
		YTitle: strings.TrimSpace(header[1]),
	}

	for i, rec := range records[1:] {
		line := i + 2
		if blank(rec) {
			continue
		}
		for len(rec) < 3 {
			rec = append(rec, "")
		}
		x, y := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if x == "" || y == "" {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "row %d: x and y keys are required", line)
		}
		p := Point{X: x, Y: y}
		if raw := strings.TrimSpace(rec[2]); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "row %d: value %q", line, raw)
			}
			p.Value = heatmap.V(v)
		}
		t.Points = append(t.Points, p)
	}

	if len(t.Points) == 0 {
		return nil, errors.Data("table has no data rows")
	}
	return t, nil
}

func blank(rec []string) bool {
	for _, s := range rec {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
