// Package hero produces the typewriter animation for the home page role line.
package hero

import (
	"context"
	"errors"
	"time"
)

// Default timings for the role line.
const (
	DefaultSpeed       = 100 * time.Millisecond
	DefaultDeleteSpeed = 50 * time.Millisecond
	DefaultPause       = 2000 * time.Millisecond
	// wordGap is the wait on an empty line before the next word starts.
	wordGap = 500 * time.Millisecond
)

// DefaultRoles are shown when no roles are configured.
var DefaultRoles = []string{
	"Software Engineer",
	"Flutter Developer",
	"Web Developer",
	"UI/UX Enthusiast",
	"Problem Solver",
}

// ErrNoWords is returned when a typewriter has nothing to type.
var ErrNoWords = errors.New("typewriter needs at least one non-empty word")

// Frame is the text to display and how long to hold it.
type Frame struct {
	Text  string
	Delay time.Duration
}

// Typewriter types each word one rune at a time, holds it, erases it and
// moves on to the next word, cycling forever. It is not safe for concurrent
// use; each stream owns one.
type Typewriter struct {
	Speed       time.Duration
	DeleteSpeed time.Duration
	Pause       time.Duration

	words    [][]rune
	word     int
	chars    int
	deleting bool
}

// New builds a typewriter with the default timings. Empty words are skipped.
func New(words []string) (*Typewriter, error) {
	t := &Typewriter{
		Speed:       DefaultSpeed,
		DeleteSpeed: DefaultDeleteSpeed,
		Pause:       DefaultPause,
	}
	for _, w := range words {
		if w != "" {
			t.words = append(t.words, []rune(w))
		}
	}
	if len(t.words) == 0 {
		return nil, ErrNoWords
	}
	return t, nil
}

// Next advances one step.
func (t *Typewriter) Next() Frame {
	current := t.words[t.word]
	if !t.deleting {
		t.chars++
		f := Frame{Text: string(current[:t.chars]), Delay: t.Speed}
		if t.chars == len(current) {
			t.deleting = true
			f.Delay = t.Pause
		}
		return f
	}

	t.chars--
	f := Frame{Text: string(current[:t.chars]), Delay: t.DeleteSpeed}
	if t.chars == 0 {
		t.deleting = false
		t.word = (t.word + 1) % len(t.words)
		f.Delay = wordGap
	}
	return f
}

// Run emits frames, sleeping each frame's delay, until ctx is done or emit
// fails. A cancelled context is not reported as an error.
func (t *Typewriter) Run(ctx context.Context, emit func(Frame) error) error {
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		f := t.Next()
		if err := emit(f); err != nil {
			return err
		}
		timer.Reset(f.Delay)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}
