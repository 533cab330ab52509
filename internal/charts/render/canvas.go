package render

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrSurfaceBusy is returned when a surface already has an owner
	ErrSurfaceBusy = errors.New("surface is bound to another chart")
	// ErrNotOwner is returned when a non-owner detaches or paints
	ErrNotOwner = errors.New("surface is not bound to this chart")
)

// Default surface dimensions in pixels
const (
	DefaultWidth  = 640
	DefaultHeight = 400
)

// Image is a painted chart as served to clients
type Image struct {
	ContentType string
	Data        []byte
	UpdatedAt   time.Time
}

// Canvas is an in-memory drawing surface. The owning session paints it
// while HTTP handlers read snapshots concurrently.
type Canvas struct {
	id     string
	width  int
	height int

	mu    sync.RWMutex
	owner string
	image Image
}

// NewCanvas creates a canvas. Non-positive dimensions fall back to defaults.
func NewCanvas(id string, width, height int) *Canvas {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Canvas{id: id, width: width, height: height}
}

func (c *Canvas) ID() string { return c.id }

// Size returns the canvas dimensions in pixels
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Attach binds owner to the canvas
func (c *Canvas) Attach(owner string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.owner != "" {
		return ErrSurfaceBusy
	}
	c.owner = owner
	return nil
}

// Detach unbinds owner and clears the image
func (c *Canvas) Detach(owner string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.owner != owner {
		return ErrNotOwner
	}
	c.owner = ""
	c.image = Image{}
	return nil
}

// Paint replaces the image. Only the bound owner may paint.
func (c *Canvas) Paint(owner, contentType string, image []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.owner == "" || c.owner != owner {
		return ErrNotOwner
	}
	data := make([]byte, len(image))
	copy(data, image)
	c.image = Image{ContentType: contentType, Data: data, UpdatedAt: time.Now()}
	return nil
}

// Owner returns the bound owner, or "" when the canvas is free
func (c *Canvas) Owner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.owner
}

// Snapshot returns a copy of the current image. ok is false when nothing
// is painted.
func (c *Canvas) Snapshot() (img Image, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.image.Data) == 0 {
		return Image{}, false
	}
	img = c.image
	img.Data = make([]byte, len(c.image.Data))
	copy(img.Data, c.image.Data)
	return img, true
}
