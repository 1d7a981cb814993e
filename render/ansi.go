package render

import (
	"fmt"
	"io"

	"github.com/arloliu/gca/errs"
	"github.com/arloliu/gca/internal/options"
	"github.com/fatih/color"
)

// DefaultPalette returns the group colors used by NewANSI: reset, red, green,
// yellow, blue, magenta, cyan and white. Group g uses entry g % len(palette).
func DefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.Reset),
		color.New(color.FgRed),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgBlue),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
		color.New(color.FgWhite),
	}
}

// ANSI renders each group in its own terminal color. NUL bytes are drawn as a
// black `\0` so terminated strings stay visible.
type ANSI struct {
	palette []*color.Color
	nul     *color.Color
}

var _ Renderer = (*ANSI)(nil)

type ansiConfig struct {
	palette []*color.Color
	color   *bool
}

// ANSIOption configures NewANSI.
type ANSIOption = options.Option[*ansiConfig]

// WithPalette replaces the default group colors. The colors are copied, so
// WithColor never changes the values passed in.
func WithPalette(colors ...*color.Color) ANSIOption {
	return options.New(func(c *ansiConfig) error {
		if len(colors) == 0 {
			return fmt.Errorf("%w: empty palette", errs.ErrInvalidOption)
		}
		c.palette = colors

		return nil
	})
}

// WithColor forces escape sequences on or off. Without it, fatih/color decides
// from the terminal and the NO_COLOR environment variable.
func WithColor(enabled bool) ANSIOption {
	return options.NoError(func(c *ansiConfig) {
		c.color = &enabled
	})
}

// NewANSI creates an ANSI renderer.
func NewANSI(opts ...ANSIOption) (*ANSI, error) {
	cfg := &ansiConfig{palette: DefaultPalette()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	palette := make([]*color.Color, len(cfg.palette))
	for i, c := range cfg.palette {
		cp := *c
		palette[i] = &cp
	}

	r := &ANSI{
		palette: palette,
		nul:     color.New(color.FgBlack),
	}
	if cfg.color != nil {
		for _, c := range append([]*color.Color{r.nul}, r.palette...) {
			if *cfg.color {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}

	return r, nil
}

func (r *ANSI) Render(w io.Writer, segments []Segment, total int) error {
	for _, seg := range segments {
		c := r.palette[seg.Group%len(r.palette)]
		if err := r.segment(w, c, seg.Data); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "   arrayLen: %d\n", total)

	return err
}

func (r *ANSI) segment(w io.Writer, c *color.Color, data []byte) error {
	start := 0
	for i, b := range data {
		if b != 0 {
			continue
		}
		if i > start {
			if _, err := c.Fprint(w, string(data[start:i])); err != nil {
				return err
			}
		}
		if _, err := r.nul.Fprint(w, `\0`); err != nil {
			return err
		}
		start = i + 1
	}

	if start < len(data) {
		if _, err := c.Fprint(w, string(data[start:])); err != nil {
			return err
		}
	}

	return nil
}
