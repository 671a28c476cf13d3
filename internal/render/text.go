package render

import (
	"io"
	"sort"
	"strings"

	"mad-eca/internal/core"
)

// InverseVideoCell is a blank drawn in reverse video on ANSI terminals.
const InverseVideoCell = "\x1b[7m \x1b[0m"

// Glyphs maps cell states to fixed-width text tokens.
type Glyphs struct {
	Alive string
	Dead  string
}

var (
	// InverseVideo draws live cells as reverse-video blanks.
	InverseVideo = Glyphs{Alive: InverseVideoCell, Dead: " "}
	// Plus draws live cells as '+' for terminals without reverse video.
	Plus = Glyphs{Alive: "+", Dead: " "}
)

var styles = map[string]Glyphs{
	"inverse": InverseVideo,
	"plus":    Plus,
}

// Lookup returns the named glyph style.
func Lookup(name string) (Glyphs, bool) {
	g, ok := styles[name]
	return g, ok
}

// StyleNames lists the built-in styles in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Row renders gen from bit 63 down to bit 0 without a trailing newline.
func (g Glyphs) Row(gen core.Generation) string {
	var b strings.Builder
	b.Grow(core.Width * max(len(g.Alive), len(g.Dead)))
	for i := core.Width - 1; i >= 0; i-- {
		if gen.Alive(i) {
			b.WriteString(g.Alive)
			continue
		}
		b.WriteString(g.Dead)
	}
	return b.String()
}

// WriteRow writes the rendered row of gen followed by a newline.
func (g Glyphs) WriteRow(w io.Writer, gen core.Generation) error {
	_, err := io.WriteString(w, g.Row(gen)+"\n")
	return err
}
