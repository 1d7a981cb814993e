package text

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/gca/errs"
	"github.com/arloliu/gca/group"
	"github.com/arloliu/gca/internal/hash"
	"github.com/arloliu/gca/internal/options"
	"github.com/arloliu/gca/render"
)

// Mode selects how a string is laid out in its group.
type Mode uint8

const (
	// Bare stores the string bytes only.
	Bare Mode = iota + 1
	// NullTerminated stores the string bytes followed by a single NUL.
	NullTerminated
)

func (m Mode) String() string {
	switch m {
	case Bare:
		return "Bare"
	case NullTerminated:
		return "NullTerminated"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Array is a grouped byte buffer with string helpers.
type Array struct {
	*group.Array[byte]
	renderer render.Renderer
}

type config struct {
	groupOpts []group.Option
	renderer  render.Renderer
}

// Option configures an Array created by New.
type Option = options.Option[*config]

// WithCapacity pre-allocates room for n bytes.
func WithCapacity(n int) Option {
	return options.NoError(func(c *config) {
		c.groupOpts = append(c.groupOpts, group.WithCapacity(n))
	})
}

// WithRenderer sets the renderer used by Render. The default is render.Plain.
func WithRenderer(r render.Renderer) Option {
	return options.New(func(c *config) error {
		if r == nil {
			return fmt.Errorf("%w: nil renderer", errs.ErrInvalidOption)
		}
		c.renderer = r

		return nil
	})
}

// New creates an empty text Array with the given number of groups.
//
// Parameters:
//   - groups: number of groups, at least 1
//   - opts: optional configuration (WithCapacity, WithRenderer)
//
// Returns:
//   - *Array: an empty array
//   - error: errs.ErrInvalidGroupCount, errs.ErrInvalidCapacity or an option error
//
// Example:
//
//	arr, err := text.New(4, text.WithCapacity(256))
//	if err != nil {
//	    return err
//	}
//	_ = arr.SetText(2, "hello", text.NullTerminated)
func New(groups int, opts ...Option) (*Array, error) {
	cfg := &config{renderer: render.Plain{}}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	base, err := group.New[byte](groups, cfg.groupOpts...)
	if err != nil {
		return nil, err
	}

	return &Array{Array: base, renderer: cfg.renderer}, nil
}

// SetText replaces the contents of group g with s laid out per mode.
func (a *Array) SetText(g int, s string, mode Mode) error {
	data, err := encode(s, mode)
	if err != nil {
		return err
	}

	return a.SetRegion(g, data)
}

// AddText appends s, laid out per mode, to the end of group g.
func (a *Array) AddText(g int, s string, mode Mode) error {
	data, err := encode(s, mode)
	if err != nil {
		return err
	}

	return a.AppendRegion(g, data)
}

// Text returns the bytes of group g as a string, terminators included.
func (a *Array) Text(g int) (string, error) {
	items, err := a.Items(g)
	if err != nil {
		return "", err
	}

	return string(items), nil
}

// String returns the whole buffer.
func (a *Array) String() string {
	return string(a.Values())
}

// IndexByte returns the index of the first occurrence of c, or group.NotFound.
func (a *Array) IndexByte(c byte) int {
	return bytes.IndexByte(a.Values(), c)
}

// Fingerprint returns the xxHash64 of group g's bytes.
//
// Equal contents give equal fingerprints regardless of which group or
// position they occupy, so it is handy for cheap change detection.
func (a *Array) Fingerprint(g int) (uint64, error) {
	items, err := a.Items(g)
	if err != nil {
		return 0, err
	}

	return hash.Sum(items), nil
}

// Clone returns an independent copy sharing the renderer.
func (a *Array) Clone() *Array {
	return &Array{Array: a.Array.Clone(), renderer: a.renderer}
}

// Render writes a diagnostic dump of every group through the configured renderer.
func (a *Array) Render(w io.Writer) error {
	segments := make([]render.Segment, 0, a.Groups())
	for g := range a.Groups() {
		items, err := a.Items(g)
		if err != nil {
			return err
		}
		segments = append(segments, render.Segment{Group: g, Data: items})
	}

	return a.renderer.Render(w, segments, a.Len())
}

// RenderSplits writes the split boundaries.
func (a *Array) RenderSplits(w io.Writer) error {
	return render.Splits(w, a.Splits())
}

func encode(s string, mode Mode) ([]byte, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}

	switch mode {
	case Bare:
		return []byte(s), nil
	case NullTerminated:
		data := make([]byte, len(s)+1)
		copy(data, s)

		return data, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidMode, mode)
	}
}
