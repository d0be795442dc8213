package layout

import (
	"strings"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/grid"
	"github.com/matzehuels/heatgrid/pkg/numfmt"
)

// Measurer reports the rendered size of text in a font. Implementations
// must be deterministic and should measure the empty string as (0, 0).
type Measurer interface {
	Measure(text string, f Font) (w, h int)
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text string, f Font) (int, int)

// Measure calls fn.
func (fn MeasureFunc) Measure(text string, f Font) (int, int) { return fn(text, f) }

// Input is everything about a chart that is not an option.
type Input struct {
	Title   string
	XTitle  string
	YTitle  string
	XLabels []string
	YLabels []string
	Cells   []grid.Cell
	Bounds  grid.Bounds
}

// LegendEntry is one legend box with its label. Entries are ordered top to
// bottom, so the first entry holds the maximum value.
type LegendEntry struct {
	Value  float64 `json:"value"`
	Factor float64 `json:"factor"` // gradient position of the box
	Label  Text    `json:"label"`
	// ShowLabel is false for interior labels when the value range is zero.
	ShowLabel bool `json:"show_label"`
	Box       Rect `json:"box"`
}

// Legend is the color scale drawn beside the grid.
type Legend struct {
	Frame    Rect          `json:"frame"`
	Entries  []LegendEntry `json:"entries"`
	Dividers []Rect        `json:"dividers,omitempty"`
	Border   []Rect        `json:"border"`
}

// CellText is the value label drawn inside a cell.
type CellText struct {
	Col  int  `json:"col"`
	Row  int  `json:"row"`
	Text Text `json:"text"`
}

// Layout is the computed geometry of a chart. It is never modified after
// [Compute] returns it.
type Layout struct {
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	CellWidth     int        `json:"cell_width"`
	CellHeight    int        `json:"cell_height"`
	GridlineWidth int        `json:"gridline_width"` // 0 when gridlines are hidden
	Columns       int        `json:"columns"`
	Rows          int        `json:"rows"`
	Grid          Rect       `json:"grid"`
	Title         []Text     `json:"title,omitempty"`
	XTitle        *Text      `json:"x_title,omitempty"`
	YTitle        *Text      `json:"y_title,omitempty"`
	XLabels       []Text     `json:"x_labels,omitempty"`
	YLabels       []Text     `json:"y_labels,omitempty"`
	RotateXLabels bool       `json:"rotate_x_labels"`
	Legend        *Legend    `json:"legend,omitempty"`
	Values        []CellText `json:"values,omitempty"`
	Gridlines     []Rect     `json:"gridlines,omitempty"`

	// Horizontal and Vertical are the running sums that produce Width and
	// Height, in drawing order.
	Horizontal Terms `json:"horizontal"`
	Vertical   Terms `json:"vertical"`
}

// CellRect returns the fill rectangle of the cell at col, row.
func (l *Layout) CellRect(col, row int) Rect {
	gw := l.GridlineWidth
	return Rect{
		X: l.Grid.X + gw + col*(l.CellWidth+gw),
		Y: l.Grid.Y + gw + row*(l.CellHeight+gw),
		W: l.CellWidth,
		H: l.CellHeight,
	}
}

// valueMargin is the total horizontal space around in-cell value text, 4 on
// each side, not a per-side margin.
const valueMargin = 8

// Compute validates opts and in and computes the chart geometry.
func Compute(in Input, opts Options, m Measurer) (*Layout, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.Invalid("text measurer is missing")
	}
	cols, rows := len(in.XLabels), len(in.YLabels)
	if cols < 1 {
		return nil, errors.Invalid("x axis has no entries")
	}
	if rows < 1 {
		return nil, errors.Invalid("y axis has no entries")
	}
	for _, c := range in.Cells {
		if c.Col < 0 || c.Col >= cols || c.Row < 0 || c.Row >= rows {
			return nil, errors.Data("cell (%d,%d) is outside the %dx%d grid", c.Col, c.Row, cols, rows)
		}
	}

	measure := func(text string, f Font) (int, int) {
		if text == "" {
			return 0, 0
		}
		return m.Measure(text, f)
	}

	fonts := opts.Fonts
	gw := opts.gridline()
	lp := opts.LabelPadding
	op := opts.OuterPadding

	// Axis labels. One font height is shared by both axes.
	var xLabelW, xLabelH, yLabelW, yLabelH int
	if opts.ShowXLabels {
		xLabelW, xLabelH = maxSize(measure, in.XLabels, fonts.AxisLabel)
	}
	if opts.ShowYLabels {
		yLabelW, yLabelH = maxSize(measure, in.YLabels, fonts.AxisLabel)
	}
	labelFontH := max(xLabelH, yLabelH)

	// In-cell values, aligned with in.Cells; null cells stay empty.
	var values []string
	var valueW, valueH int
	if opts.ShowGridValues {
		vf, err := numfmt.New(opts.GridValueFormat)
		if err != nil {
			return nil, err
		}
		values = make([]string, len(in.Cells))
		for i, c := range in.Cells {
			if !c.Valid {
				continue
			}
			values[i] = vf.Format(c.Value)
			w, h := measure(values[i], fonts.GridValue)
			valueW, valueH = max(valueW, w), max(valueH, h)
		}
	}

	xTitleW, xTitleH := measure(in.XTitle, fonts.AxisTitle)
	yTitleW, yTitleH := measure(in.YTitle, fonts.AxisTitle)
	hasXTitle, hasYTitle := in.XTitle != "", in.YTitle != ""

	// Effective cell size.
	cellW, cellH := opts.CellWidth, opts.CellHeight
	if opts.ShowXLabels {
		cellW = max(cellW, labelFontH+lp)
	}
	if opts.ShowYLabels {
		cellH = max(cellH, labelFontH+lp)
	}
	if opts.ShowGridValues {
		cellW = max(cellW, valueW+valueMargin)
		cellH = max(cellH, valueH+valueMargin)
	}

	// X labels turn vertical when the widest one does not fit its column.
	rotate := opts.ShowXLabels && (opts.RotateXLabels || xLabelW > cellW+gw-lp)
	xLabelRow := 0
	if opts.ShowXLabels {
		xLabelRow = xLabelH
		if rotate {
			xLabelRow = xLabelW
		}
	}

	// Legend values and labels.
	var (
		steps                      int
		legendValues               []float64
		legendLabels               []string
		legendLabelW, legendLabelH int
		legendH, boxesW, legendW   int
	)
	if opts.ShowLegend {
		steps = opts.LegendSteps
		if steps == 0 {
			steps = max(rows, 5)
		}
		if steps < 2 {
			return nil, errors.Invalid("legend needs at least 2 steps, got %d", steps)
		}
		legendValues = LegendValues(in.Bounds, steps)
		lf, err := numfmt.New(opts.LegendFormat)
		if err != nil {
			return nil, err
		}
		legendLabels = make([]string, steps)
		for i, v := range legendValues {
			legendLabels[i] = lf.Format(v)
		}
		if in.Bounds.MinClamped {
			legendLabels[0] = "<= " + legendLabels[0]
		}
		if in.Bounds.MaxClamped {
			legendLabels[steps-1] = ">= " + legendLabels[steps-1]
		}
		legendLabelW, legendLabelH = maxSize(measure, legendLabels, fonts.Legend)
		legendH = cellH*steps + (steps+1)*gw
		boxesW = cellW + 2*gw
		legendW = boxesW + lp + legendLabelW
	}

	// Horizontal offsets, left to right.
	h := Terms{{"outer-left", op}}
	add := func(t *Terms, name string, size int, on bool) int {
		if !on {
			size = 0
		}
		*t = append(*t, Term{name, size})
		return size
	}
	yTitleX := op + add(&h, "y-title", yTitleH, hasYTitle)
	yLabelX := yTitleX + add(&h, "y-title-padding", opts.AxisTitlePadding, hasYTitle)
	gridX := yLabelX + add(&h, "y-labels", yLabelW, opts.ShowYLabels)
	gridX += add(&h, "y-label-padding", lp, opts.ShowYLabels)
	gridW := cols*cellW + (cols+1)*gw
	add(&h, "grid", gridW, true)
	legendX := gridX + gridW + add(&h, "legend-padding", opts.LegendPadding, opts.ShowLegend)
	legendLabelX := legendX + add(&h, "legend-boxes", boxesW, opts.ShowLegend)
	legendLabelX += add(&h, "legend-label-padding", lp, opts.ShowLegend)
	add(&h, "legend-labels", legendLabelW, opts.ShowLegend)
	h = append(h, Term{"outer-right", op})
	width := legendX + legendW + op

	// Title wrapping needs the final width.
	lines := wrapTitle(in.Title, width-2*op, fonts.Title, measure)
	lineH := 0
	if len(lines) > 0 {
		lineH = lines[0].H
	}
	hasTitle := len(lines) > 0

	// Vertical offsets, top to bottom. Text anchors are baselines.
	above := opts.ShowXLabels && !opts.XLabelsBelow
	below := opts.ShowXLabels && opts.XLabelsBelow
	v := Terms{{"outer-top", op}}
	titleY := op
	xTitleY := titleY + add(&v, "title", len(lines)*lineH, hasTitle)
	xTitleY += add(&v, "title-padding", opts.TitlePadding, hasTitle)
	xTitleY += add(&v, "x-title", xTitleH, hasXTitle)
	xLabelY := xTitleY + add(&v, "x-title-padding", opts.AxisTitlePadding, hasXTitle)
	xLabelY += add(&v, "x-labels", xLabelRow, above)
	gridY := xLabelY + add(&v, "x-label-padding", lp, above)
	gridH := rows*cellH + (rows+1)*gw
	add(&v, "body", max(gridH, legendH), true)
	add(&v, "x-label-padding-below", lp, below)
	add(&v, "x-labels-below", xLabelRow, below)
	v = append(v, Term{"outer-bottom", op})

	legendY := gridY
	if gridH >= legendH {
		legendY = gridY + gridH/2 - legendH/2
	}
	legendLabelY := legendY + int(float64(legendLabelH)*0.75) + gw

	if below {
		bottom := gridY + gridH + lp
		if rotate {
			xLabelY = bottom
		} else {
			xLabelY = bottom + int(float64(labelFontH)*0.75)
		}
	}

	height := gridY + max(gridH, legendH) + op
	if below {
		height += lp + xLabelRow
	}

	l := &Layout{
		Width:         width,
		Height:        height,
		CellWidth:     cellW,
		CellHeight:    cellH,
		GridlineWidth: gw,
		Columns:       cols,
		Rows:          rows,
		Grid:          Rect{X: gridX, Y: gridY, W: gridW, H: gridH},
		RotateXLabels: rotate,
		Horizontal:    h,
		Vertical:      v,
	}

	for i, line := range lines {
		line.X = width/2 - line.W/2
		line.Y = titleY + (i+1)*lineH
		l.Title = append(l.Title, line)
	}

	if hasXTitle {
		l.XTitle = &Text{
			Text: in.XTitle, X: l.Grid.CenterX() - xTitleW/2, Y: xTitleY,
			W: xTitleW, H: xTitleH, Font: fonts.AxisTitle,
		}
	}
	if hasYTitle {
		l.YTitle = &Text{
			Text: in.YTitle, X: yTitleX, Y: l.Grid.CenterY() + yTitleW/2,
			W: yTitleW, H: yTitleH, Rotated: true, Font: fonts.AxisTitle,
		}
	}

	if opts.ShowXLabels {
		startX := gridX + gw
		shift := int(float64(labelFontH) * 0.25)
		for i, label := range in.XLabels {
			w, lh := measure(label, fonts.AxisLabel)
			t := Text{Text: label, W: w, H: lh, Font: fonts.AxisLabel, Rotated: rotate}
			cellX := startX + i*(cellW+gw) + cellW/2
			if rotate {
				t.X = cellX + shift
				t.Y = xLabelY
				if below {
					t.Y += w
				}
			} else {
				t.X = cellX - w/2
				t.Y = xLabelY
			}
			l.XLabels = append(l.XLabels, t)
		}
	}

	if opts.ShowYLabels {
		startY := gridY + gw + int(float64(labelFontH)*0.25)
		for i, label := range in.YLabels {
			w, lh := measure(label, fonts.AxisLabel)
			l.YLabels = append(l.YLabels, Text{
				Text: label,
				X:    yLabelX + yLabelW - w,
				Y:    startY + i*(cellH+gw) + cellH/2,
				W:    w, H: lh, Font: fonts.AxisLabel,
			})
		}
	}

	if opts.ShowLegend {
		l.Legend = buildLegend(legendRect{
			x: legendX, y: legendY, w: boxesW, h: legendH,
			labelX: legendLabelX, labelY: legendLabelY,
		}, in.Bounds, legendValues, legendLabels, cellW, cellH, gw, fonts.Legend, measure)
	}

	if opts.ShowGridValues {
		for i, c := range in.Cells {
			if values[i] == "" {
				continue
			}
			w, vh := measure(values[i], fonts.GridValue)
			r := l.CellRect(c.Col, c.Row)
			l.Values = append(l.Values, CellText{
				Col: c.Col,
				Row: c.Row,
				Text: Text{
					Text: values[i],
					X:    r.X + cellW/2 - w/2,
					Y:    r.Y + cellH/2 + int(float64(vh)*0.25),
					W:    w, H: vh, Font: fonts.GridValue,
				},
			})
		}
	}

	if gw > 0 {
		for y := 0; y <= rows; y++ {
			l.Gridlines = append(l.Gridlines, Rect{X: gridX, Y: gridY + y*(cellH+gw), W: gridW, H: gw})
		}
		for x := 0; x <= cols; x++ {
			l.Gridlines = append(l.Gridlines, Rect{X: gridX + x*(cellW+gw), Y: gridY, W: gw, H: gridH})
		}
	}

	return l, nil
}

type legendRect struct {
	x, y, w, h     int
	labelX, labelY int
}

func buildLegend(r legendRect, b grid.Bounds, values []float64, labels []string,
	cellW, cellH, gw int, f Font, measure func(string, Font) (int, int)) *Legend {
	n := len(values)
	lg := &Legend{Frame: Rect{X: r.x, Y: r.y, W: r.w, H: r.h}}

	for i := 0; i < n; i++ {
		src := n - 1 - i
		box := Rect{X: r.x + gw, Y: r.y + gw + i*(cellH+gw), W: cellW, H: cellH}

		factor := 1.0
		switch {
		case i == n-1:
			factor = 0
		case i > 0 && b.Range() > 0:
			factor = 1 - float64(i)/float64(n-1)
		}

		w, h := measure(labels[src], f)
		lg.Entries = append(lg.Entries, LegendEntry{
			Value:  values[src],
			Factor: factor,
			Label: Text{
				Text: labels[src],
				X:    r.labelX,
				Y:    r.labelY + i*(cellH+gw),
				W:    w, H: h, Font: f,
			},
			ShowLabel: i == 0 || i == n-1 || b.Range() > 0,
			Box:       box,
		})

		if gw > 0 && i != n-1 {
			lg.Dividers = append(lg.Dividers, Rect{X: box.X, Y: box.Bottom(), W: cellW, H: gw})
		}
	}

	if gw > 0 {
		lg.Border = []Rect{
			{X: r.x, Y: r.y, W: r.w, H: gw},
			{X: r.x, Y: r.y + r.h - gw, W: r.w, H: gw},
			{X: r.x, Y: r.y, W: gw, H: r.h},
			{X: r.x + r.w - gw, Y: r.y, W: gw, H: r.h},
		}
	} else {
		// One pixel outline around the boxes.
		boxesH := cellH * n
		lg.Border = []Rect{
			{X: r.x, Y: r.y, W: cellW, H: 1},
			{X: r.x, Y: r.y + boxesH - 1, W: cellW, H: 1},
			{X: r.x, Y: r.y, W: 1, H: boxesH},
			{X: r.x + cellW - 1, Y: r.y, W: 1, H: boxesH},
		}
	}
	return lg
}

// LegendValues returns n values evenly spaced from b.Min to b.Max inclusive.
// A zero range repeats b.Min for the interior values.
func LegendValues(b grid.Bounds, n int) []float64 {
	if n < 2 {
		n = 2
	}
	step := 0.0
	if r := b.Range(); r > 0 {
		step = r / float64(n-1)
	}
	out := make([]float64, n)
	out[0] = b.Min
	for i := 1; i < n-1; i++ {
		out[i] = b.Min + float64(i)*step
	}
	out[n-1] = b.Max
	return out
}

func maxSize(measure func(string, Font) (int, int), texts []string, f Font) (int, int) {
	var w, h int
	for _, s := range texts {
		tw, th := measure(s, f)
		w, h = max(w, tw), max(h, th)
	}
	return w, h
}

// wrapTitle breaks title into lines no wider than maxW where possible.
// The first word of a line is always kept, so a single word wider than
// maxW gets a line of its own.
func wrapTitle(title string, maxW int, f Font, measure func(string, Font) (int, int)) []Text {
	var lines []Text
	commit := func(s string) {
		w, h := measure(s, f)
		lines = append(lines, Text{Text: s, W: w, H: h, Font: f})
	}

	cur := ""
	for _, word := range strings.Fields(title) {
		if cur == "" {
			cur = word
			continue
		}
		candidate := cur + " " + word
		w, _ := measure(candidate, f)
		switch {
		case w < maxW:
			cur = candidate
		case w == maxW:
			commit(candidate)
			cur = ""
		default:
			commit(cur)
			cur = word
		}
	}
	if cur != "" {
		commit(cur)
	}
	return lines
}
