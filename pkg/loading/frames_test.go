package loading

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrameSetRejectsEmpty(t *testing.T) {
	_, err := NewFrameSet(nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyFrames))

	var configErr *ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "Frames", configErr.Field)
}

func TestFrameSetCopiesInput(t *testing.T) {
	frames := []string{"a", "b"}
	set, err := NewFrameSet(frames)
	require.NoError(t, err)

	frames[0] = "z"

	assert.Equal(t, "a", set.At(0))
}

func TestFrameSetWraps(t *testing.T) {
	set, err := NewFrameSet([]string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, "a", set.At(3))
	assert.Equal(t, "c", set.At(-1))
	assert.Equal(t, 0, set.Next(2))
	assert.Equal(t, 3, set.Len())
}

func TestFrameIndexPeriodIsFrameCount(t *testing.T) {
	set, err := NewFrameSet([]string{"1", "2", "3", "4", "5"})
	require.NoError(t, err)

	state := newSharedState("text")
	seen := map[int]bool{}

	for i := 0; i < set.Len(); i++ {
		snap := state.take(set)
		assert.False(t, seen[snap.frameIndex], "index %d repeated before the cycle completed", snap.frameIndex)
		seen[snap.frameIndex] = true
	}

	assert.Len(t, seen, set.Len())
	assert.Equal(t, 0, state.take(set).frameIndex)
}

func TestPreset(t *testing.T) {
	dots, err := Preset("dots")
	require.NoError(t, err)
	assert.Equal(t, DefaultFrames, dots)

	line, err := Preset("9")
	require.NoError(t, err)
	assert.Equal(t, []string{"|", "/", "-", "\\"}, line)

	_, err = Preset("nope")
	assert.Error(t, err)
}

func TestDefaultFramesAreTheBrailleSpinner(t *testing.T) {
	assert.Equal(t, []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}, DefaultFrames)
}

func TestPresetNamesAreSorted(t *testing.T) {
	assert.Equal(t, []string{"arc", "arrows", "bounce", "circle", "dots", "line"}, PresetNames())

	for _, name := range PresetNames() {
		frames, err := Preset(name)
		require.NoError(t, err)
		assert.NotEmpty(t, frames)
	}
}
