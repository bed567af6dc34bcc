package printer

import (
	"strings"

	"github.com/fatih/color"
)

/*
colorCode is a begin/end escape pair extracted from a fatih/color
SprintFunc, rather than hand-assembled ANSI codes - so ANSIScheme stays
correct if fatih/color ever changes its sequences (NO_COLOR handling,
Windows console fallback) without this package needing to track it.
*/
type colorCode struct {
	begin string
	end   string
}

// sentinel is a byte value that cannot occur in NFC source text fed
// through color.SprintFunc, used only to locate where the colorizer
// inserted its escape sequences.
const sentinel = "\x00"

func newColorCode(attrs ...color.Attribute) colorCode {
	c := color.New(attrs...)

	// The escape pair is extracted once at init time, so the global
	// NoColor auto-detection (piped stdout) must not blank it here -
	// whether colors are emitted at all is the caller's decision, made by
	// picking ANSIScheme over NoOpScheme.
	c.EnableColor()

	fn := c.SprintFunc()
	wrapped := fn(sentinel)

	i := strings.IndexByte(wrapped, 0)
	if i < 0 {
		return colorCode{}
	}

	return colorCode{begin: wrapped[:i], end: wrapped[i+1:]}
}

var (
	colorRed    = newColorCode(color.FgRed)
	colorYellow = newColorCode(color.FgYellow)
	colorCyan   = newColorCode(color.FgCyan)
	colorBlue   = newColorCode(color.FgBlue)
	colorGreen  = newColorCode(color.FgGreen)
	colorWhite  = newColorCode(color.FgWhite)
	colorFaint  = newColorCode(color.Faint)
)
