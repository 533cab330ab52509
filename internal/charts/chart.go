package charts

// Config is a fully derived chart ready for a Factory
type Config struct {
	Slot        Slot      `json:"slot"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	SeriesLabel string    `json:"series_label"`
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	Colors      []string  `json:"colors"`
	// YMax fixes the upper bound of the value axis. Zero lets the renderer choose.
	YMax float64 `json:"y_max,omitempty"`
}

// Surface is a drawing target owned by the container. A surface accepts
// one owner at a time; attaching a second owner must fail.
type Surface interface {
	ID() string
	Attach(owner string) error
	Detach(owner string) error
	Paint(owner, contentType string, image []byte) error
}

// Instance is a live chart bound to a surface
type Instance interface {
	Slot() Slot
	Kind() Kind
	Config() Config
	// Destroy releases the surface binding. Calling it again is a no-op.
	Destroy() error
}

// Factory creates chart instances on surfaces
type Factory interface {
	Create(surface Surface, cfg Config) (Instance, error)
}
