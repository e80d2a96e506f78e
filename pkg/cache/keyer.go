package cache

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey is the key of the layout of chart chartHash.
	LayoutKey(chartHash string, opts LayoutKeyOpts) string

	// ArtifactKey is the key of one rendered output of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the inputs besides the chart definition that change a layout.
type LayoutKeyOpts struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Measurer string `json:"measurer"`
}

// ArtifactKeyOpts are the inputs that change a rendered artifact. The
// layout fixes geometry only; colours and grid switches that change the
// pixels arrive through RenderHash.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	RenderHash string `json:"render_hash"`
}

// DefaultKeyer produces "layout:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", chartHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
