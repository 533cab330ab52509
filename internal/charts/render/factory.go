package render

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/charts"
	"github.com/h2grid/h2grid-api/internal/logger"
	"go.uber.org/zap"
)

// Format is an output image encoding
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Content types painted onto surfaces
const (
	ContentTypePNG = "image/png"
	ContentTypeSVG = "image/svg+xml"
)

// ParseFormat accepts "png" or "svg"
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG, "":
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", s)
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatSVG {
		return ContentTypeSVG
	}
	return ContentTypePNG
}

// ExtensionFor maps a content type to a file extension
func ExtensionFor(contentType string) string {
	if contentType == ContentTypeSVG {
		return ".svg"
	}
	return ".png"
}

// sizer is implemented by surfaces with fixed pixel dimensions
type sizer interface {
	Size() (width, height int)
}

// Factory renders chart configs and binds them to surfaces
type Factory struct {
	format Format
	width  int
	height int
	logger *zap.Logger
}

// FactoryOption configures a Factory
type FactoryOption func(*Factory)

// WithFormat sets the output encoding
func WithFormat(format Format) FactoryOption {
	return func(f *Factory) {
		f.format = format
	}
}

// WithSize sets the image size used for surfaces without their own size
func WithSize(width, height int) FactoryOption {
	return func(f *Factory) {
		if width > 0 && height > 0 {
			f.width, f.height = width, height
		}
	}
}

// WithFactoryLogger sets the factory logger
func WithFactoryLogger(l *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = l
	}
}

// NewFactory creates a PNG factory unless configured otherwise
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		format: FormatPNG,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = logger.OrNop(f.logger)
	return f
}

// Format returns the output encoding
func (f *Factory) Format() Format {
	return f.format
}

// Create renders cfg, binds a new instance to surface and paints it. The
// image is rendered before binding so a render failure leaves the surface
// untouched.
func (f *Factory) Create(surface charts.Surface, cfg charts.Config) (charts.Instance, error) {
	width, height := f.width, f.height
	if s, ok := surface.(sizer); ok {
		width, height = s.Size()
	}

	image, err := f.Render(cfg, width, height)
	if err != nil {
		return nil, fmt.Errorf("render %s chart: %w", cfg.Slot, err)
	}

	owner := uuid.New().String()
	if err := surface.Attach(owner); err != nil {
		return nil, fmt.Errorf("attach %s chart to %s: %w", cfg.Slot, surface.ID(), err)
	}
	if err := surface.Paint(owner, f.format.ContentType(), image); err != nil {
		_ = surface.Detach(owner)
		return nil, fmt.Errorf("paint %s chart on %s: %w", cfg.Slot, surface.ID(), err)
	}

	f.logger.Debug("Chart bound to surface",
		zap.String("slot", string(cfg.Slot)),
		zap.String("kind", string(cfg.Kind)),
		zap.String("surface", surface.ID()),
		zap.String("owner", owner),
		zap.Int("bytes", len(image)))

	return &instance{owner: owner, surface: surface, cfg: cfg}, nil
}

// Render encodes cfg in the factory's format
func (f *Factory) Render(cfg charts.Config, width, height int) ([]byte, error) {
	switch cfg.Kind {
	case charts.KindLine:
		return renderLine(cfg, width, height, f.format)
	case charts.KindDoughnut:
		return renderDoughnut(cfg, width, height, f.format)
	case charts.KindBar:
		return renderBar(cfg, width, height, f.format)
	case charts.KindRadar:
		return renderRadar(cfg, width, height, f.format)
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", cfg.Kind)
	}
}

type instance struct {
	owner     string
	surface   charts.Surface
	cfg       charts.Config
	destroyed atomic.Bool
}

func (i *instance) Slot() charts.Slot     { return i.cfg.Slot }
func (i *instance) Kind() charts.Kind     { return i.cfg.Kind }
func (i *instance) Config() charts.Config { return i.cfg }

func (i *instance) Destroy() error {
	if !i.destroyed.CompareAndSwap(false, true) {
		return nil
	}
	return i.surface.Detach(i.owner)
}
