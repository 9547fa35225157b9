package loading

import (
	"github.com/logrusorgru/aurora"
)

// StatusKind classifies how a line finished. Kinds other than the four below
// are custom: their text is drawn as the glyph, uncolored.
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusFail    StatusKind = "fail"
	StatusWarn    StatusKind = "warn"
	StatusInfo    StatusKind = "info"
)

const (
	TICK  = "✔"
	CROSS = "✖"
	WARN  = "⚠"
	INFO  = "ℹ"
)

type Glyphs struct {
	Success string
	Fail    string
	Warn    string
	Info    string
}

func DefaultGlyphs() Glyphs {
	return Glyphs{Success: TICK, Fail: CROSS, Warn: WARN, Info: INFO}
}

func (g Glyphs) render(kind StatusKind, colors aurora.Aurora) string {
	switch kind {
	case StatusSuccess:
		return colors.Green(g.Success).String()
	case StatusFail:
		return colors.Red(g.Fail).String()
	case StatusWarn:
		return colors.Yellow(g.Warn).String()
	case StatusInfo:
		return colors.Blue(g.Info).String()
	}

	return string(kind)
}

type finalStatus struct {
	kind    StatusKind
	message string
}
