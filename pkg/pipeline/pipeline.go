// Package pipeline runs the import → scene → render flow shared by every
// heatgrid entry point.
//
// # Stages
//
//  1. Import: read a data table from CSV, JSON or XLSX ([Runner.Import])
//  2. Scene: validate options, resolve cells, compute bounds and layout ([BuildScene])
//  3. Render: encode the scene in every requested format ([Render])
//
// [Runner.Execute] runs stages 2 and 3 behind the artifact cache. Cache keys
// are derived from the content of the table and the options, so a hit is
// always byte-identical to what a fresh render would produce.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	table, err := runner.Import(ctx, "revenue.csv")
//	opts := pipeline.Options{
//	    Layout:  layout.DefaultOptions(),
//	    Formats: []string{"png", "svg"},
//	}
//	result, err := runner.Execute(ctx, table, opts)
//	png := result.Artifacts["png"]
package pipeline

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/gradient"
	"github.com/matzehuels/heatgrid/pkg/layout"
	"github.com/matzehuels/heatgrid/pkg/render"
)

// Format names.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// DefaultFormats is used when Options.Formats is empty.
var DefaultFormats = []string{FormatPNG}

// DefaultScale is the PNG resampling factor.
const DefaultScale = 1.0

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	// Title overrides the chart title. XTitle and YTitle override the axis
	// titles taken from the table header when non-empty.
	Title  string `json:"title,omitempty"`
	XTitle string `json:"x_title,omitempty"`
	YTitle string `json:"y_title,omitempty"`

	Layout layout.Options `json:"layout"`

	// GradientName selects a canned gradient; Gradient, when set, wins.
	GradientName string             `json:"gradient_name,omitempty"`
	Gradient     *gradient.Gradient `json:"-"`

	Style render.Style `json:"style"`

	Formats []string `json:"formats,omitempty"`

	// Scale resamples PNG output.
	Scale float64 `json:"scale,omitempty"`
	// NoEmbedFonts leaves @font-face rules out of SVG output.
	NoEmbedFonts bool `json:"no_embed_fonts,omitempty"`
	// JSONLayoutOnly leaves resolved cells out of JSON output.
	JSONLayoutOnly bool `json:"json_layout_only,omitempty"`

	// Refresh bypasses cached artifacts; fresh results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// DataHash is the content hash of the input table.
	DataHash string

	// Scene is nil when every artifact came from the cache.
	Scene *render.Scene

	// Artifacts holds the encoded outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains timing and size information.
type Stats struct {
	Points     int
	Columns    int
	Rows       int
	Width      int
	Height     int
	SceneTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo reports how the cache served a run.
type CacheInfo struct {
	RenderHit bool // every artifact came from the cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormats checks that every format is supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults validates o and fills in defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	for i, f := range o.Formats {
		o.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	slices.Sort(o.Formats)
	o.Formats = slices.Compact(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		return errors.Invalid("scale must be positive, got %v", o.Scale)
	}

	if o.Gradient == nil {
		name := o.GradientName
		if name == "" {
			name = gradient.Default
		}
		g, err := gradient.Named(name)
		if err != nil {
			return err
		}
		o.Gradient, o.GradientName = g, name
	}

	if err := o.Layout.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}
