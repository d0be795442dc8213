// Package fonts provides the embedded Go font family for chart rendering.
//
// The TrueType data ships with golang.org/x/image, so text metrics and
// rasterization are identical on every host. A [Registry] parses each font
// once, hands out faces per size, and measures strings for the layout engine.
package fonts

import (
	"encoding/base64"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/layout"
)

// Family names understood by the registry.
const (
	FamilySans = "Go"
	FamilyMono = "Go Mono"
)

// FallbackFontFamily is the CSS font-family list used by the SVG sink.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// MonoFallbackFontFamily is the CSS font-family list for the mono family.
const MonoFallbackFontFamily = `'Go Mono', Menlo, Consolas, monospace`

// IsMono reports whether family names the monospaced Go font.
func IsMono(family string) bool {
	f := strings.ToLower(strings.TrimSpace(family))
	return f == "go mono" || f == "mono" || f == "monospace"
}

// CSSFamily returns the CSS font-family list for family.
func CSSFamily(family string) string {
	if IsMono(family) {
		return MonoFallbackFontFamily
	}
	return FallbackFontFamily
}

// TTF returns the raw TrueType data for a family and weight. Unknown
// families fall back to the proportional Go font.
func TTF(family string, bold bool) []byte {
	switch {
	case IsMono(family) && bold:
		return gomonobold.TTF
	case IsMono(family):
		return gomono.TTF
	case bold:
		return gobold.TTF
	default:
		return goregular.TTF
	}
}

// Cache for base64-encoded fonts (computed once per variant).
var (
	b64Mu    sync.Mutex
	b64Cache = map[[2]bool]string{}
)

// TTFBase64 returns the TrueType data as a base64 string for @font-face
// embedding. The result is cached after first computation.
func TTFBase64(family string, bold bool) string {
	key := [2]bool{IsMono(family), bold}
	b64Mu.Lock()
	defer b64Mu.Unlock()
	if s, ok := b64Cache[key]; ok {
		return s
	}
	s := base64.StdEncoding.EncodeToString(TTF(family, bold))
	b64Cache[key] = s
	return s
}

type faceKey struct {
	mono bool
	bold bool
	size float64
}

// Registry parses fonts lazily and caches faces for measurement.
//
// Faces produced by truetype are not safe for concurrent use, so the
// registry serializes measurement internally. Callers that draw text get a
// private face from [Registry.NewFace].
type Registry struct {
	mu     sync.Mutex
	parsed map[[2]bool]*truetype.Font
	faces  map[faceKey]font.Face
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		parsed: make(map[[2]bool]*truetype.Font),
		faces:  make(map[faceKey]font.Face),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns a process-wide registry.
func Default() *Registry {
	defaultRegistryOnce.Do(func() { defaultRegistry = NewRegistry() })
	return defaultRegistry
}

func (r *Registry) font(f layout.Font) (*truetype.Font, error) {
	key := [2]bool{IsMono(f.Family), f.Bold}
	if tt, ok := r.parsed[key]; ok {
		return tt, nil
	}
	tt, err := truetype.Parse(TTF(f.Family, f.Bold))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse font %q", f.Family)
	}
	r.parsed[key] = tt
	return tt, nil
}

// NewFace returns a fresh face for f, owned by the caller.
func (r *Registry) NewFace(f layout.Font) (font.Face, error) {
	if f.Size <= 0 {
		return nil, errors.Invalid("font size must be positive, got %v", f.Size)
	}
	r.mu.Lock()
	tt, err := r.font(f)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// face returns the shared measurement face; r.mu must be held.
func (r *Registry) face(f layout.Font) (font.Face, error) {
	key := faceKey{mono: IsMono(f.Family), bold: f.Bold, size: f.Size}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}
	tt, err := r.font(f)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(tt, &truetype.Options{Size: f.Size, DPI: 72, Hinting: font.HintingFull})
	r.faces[key] = face
	return face, nil
}

// Measure implements layout.Measurer. The width is the advance of text and
// the height is the face's line height; an empty string measures (0, 0).
func (r *Registry) Measure(text string, f layout.Font) (int, int) {
	if text == "" || f.Size <= 0 {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	face, err := r.face(f)
	if err != nil {
		return 0, 0
	}
	return font.MeasureString(face, text).Ceil(), face.Metrics().Height.Ceil()
}

// Close releases cached faces.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, face := range r.faces {
		_ = face.Close()
		delete(r.faces, k)
	}
	return nil
}
