package cache

// SceneKeyOpts identifies everything besides the data that shapes a scene.
type SceneKeyOpts struct {
	OptionsHash string `json:"options"`
	Gradient    string `json:"gradient"`
	StyleHash   string `json:"style"`
	Title       string `json:"title"`
}

// ArtifactKeyOpts identifies how a scene is encoded.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	EmbedFonts bool    `json:"embed_fonts,omitempty"`
	LayoutOnly bool    `json:"layout_only,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// SceneKey keys a scene by its data hash and settings.
	SceneKey(dataHash string, opts SceneKeyOpts) string
	// ArtifactKey keys an encoded artifact of a scene.
	ArtifactKey(sceneKey string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SceneKey implements Keyer.
func (DefaultKeyer) SceneKey(dataHash string, opts SceneKeyOpts) string {
	return hashKey("scene", dataHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(sceneKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, sceneKey, opts)
}
