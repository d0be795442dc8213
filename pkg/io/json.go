package io

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/heatmap"
)

type document struct {
	XTitle string      `json:"x_title,omitempty"`
	YTitle string      `json:"y_title,omitempty"`
	Points []jsonPoint `json:"points"`
}

type jsonPoint struct {
	X     key      `json:"x"`
	Y     key      `json:"y"`
	Value *float64 `json:"value"`
}

// key accepts a JSON string or number.
type key string

func (k *key) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*k = key(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New(errors.ErrCodeInvalidFormat, "key must be a string or number, got %s", b)
	}
	*k = key(n.String())
	return nil
}

// ReadJSON decodes a JSON table from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Table, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	if len(doc.Points) == 0 {
		return nil, errors.Data("table has no points")
	}

	t := &Table{XTitle: doc.XTitle, YTitle: doc.YTitle}
	for i, p := range doc.Points {
		x, y := strings.TrimSpace(string(p.X)), strings.TrimSpace(string(p.Y))
		if x == "" || y == "" {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "point %d: x and y keys are required", i)
		}
		t.Points = append(t.Points, heatmap.Point[string, string]{X: x, Y: y, Value: p.Value})
	}
	return t, nil
}

// WriteJSON encodes t to w in the form read by [ReadJSON].
func WriteJSON(t *Table, w io.Writer) error {
	doc := document{XTitle: t.XTitle, YTitle: t.YTitle, Points: make([]jsonPoint, len(t.Points))}
	for i, p := range t.Points {
		doc.Points[i] = jsonPoint{X: key(p.X), Y: key(p.Y), Value: p.Value}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return nil
}
