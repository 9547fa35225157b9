package loading

import (
	"fmt"
	"strconv"

	"github.com/briandowns/spinner"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultFrames is the braille spinner.
var DefaultFrames = spinner.CharSets[14]

var presets = map[string][]string{
	"dots":   spinner.CharSets[14],
	"line":   spinner.CharSets[9],
	"circle": {"◐", "◓", "◑", "◒"},
	"arc":    {"◜", "◠", "◝", "◞", "◡", "◟"},
	"bounce": {"∙∙∙", "●∙∙", "∙●∙", "∙∙●"},
	"arrows": spinner.CharSets[0],
}

// Preset returns a named frame sequence, or a briandowns/spinner character set
// when name is numeric.
func Preset(name string) ([]string, error) {
	if frames, ok := presets[name]; ok {
		return append([]string(nil), frames...), nil
	}

	if id, err := strconv.Atoi(name); err == nil {
		if frames, ok := spinner.CharSets[id]; ok {
			return append([]string(nil), frames...), nil
		}
	}

	return nil, fmt.Errorf("unknown frame preset %q", name)
}

// PresetNames lists the named presets in alphabetical order.
func PresetNames() []string {
	names := maps.Keys(presets)
	slices.Sort(names)

	return names
}

// FrameSet is an immutable, cyclic sequence of glyphs.
type FrameSet struct {
	frames []string
}

func NewFrameSet(frames []string) (FrameSet, error) {
	if len(frames) == 0 {
		return FrameSet{}, configError("Frames", ErrEmptyFrames)
	}

	return FrameSet{frames: append([]string(nil), frames...)}, nil
}

func (f FrameSet) Len() int {
	return len(f.frames)
}

// At returns the frame for any index, wrapping around the sequence.
func (f FrameSet) At(i int) string {
	n := len(f.frames)
	return f.frames[((i%n)+n)%n]
}

// Next returns the index that follows i.
func (f FrameSet) Next(i int) int {
	return (i + 1) % len(f.frames)
}
