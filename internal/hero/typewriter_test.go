package hero

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTypewriterSequence(t *testing.T) {
	t.Parallel()

	tw, err := New([]string{"ab", "c"})
	require.NoError(t, err)

	want := []Frame{
		{"a", DefaultSpeed},
		{"ab", DefaultPause},
		{"a", DefaultDeleteSpeed},
		{"", wordGap},
		{"c", DefaultPause},
		{"", wordGap},
		{"a", DefaultSpeed},
	}
	for i, w := range want {
		require.Equal(t, w, tw.Next(), "frame %d", i)
	}
}

func TestTypewriterCountsRunes(t *testing.T) {
	t.Parallel()

	tw, err := New([]string{"héllo"})
	require.NoError(t, err)
	require.Equal(t, "h", tw.Next().Text)
	require.Equal(t, "hé", tw.Next().Text)
	require.Equal(t, "hél", tw.Next().Text)
}

func TestTypewriterNeedsWords(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.ErrorIs(t, err, ErrNoWords)
	_, err = New([]string{"", ""})
	require.ErrorIs(t, err, ErrNoWords)
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	tw, err := New(DefaultRoles)
	require.NoError(t, err)
	tw.Speed, tw.DeleteSpeed, tw.Pause = time.Millisecond, time.Millisecond, time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	var frames []Frame
	err = tw.Run(ctx, func(f Frame) error {
		frames = append(frames, f)
		if len(frames) == 5 {
			cancel()
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, frames, 5)
	require.Equal(t, "Softw", frames[4].Text)
}

func TestRunReturnsEmitError(t *testing.T) {
	t.Parallel()

	tw, err := New([]string{"x"})
	require.NoError(t, err)
	boom := errors.New("client gone")
	require.ErrorIs(t, tw.Run(context.Background(), func(Frame) error { return boom }), boom)
}
