package typewriter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypewriter_RevealsOneRunePerStep(t *testing.T) {
	tw := New("Welcome")

	var frames []string
	for tw.Step() {
		frames = append(frames, tw.Text())
	}

	require.Len(t, frames, 7)
	assert.Equal(t, "W", frames[0])
	assert.Equal(t, "Wel", frames[2])
	assert.Equal(t, "Welcome", frames[6])
	assert.True(t, tw.Done())
	assert.False(t, tw.Step(), "a finished typewriter stays finished")
	assert.Equal(t, "Welcome", tw.Text())
}

func TestTypewriter_MultiByteRunes(t *testing.T) {
	tw := New("a—b")
	tw.Step()
	tw.Step()
	assert.Equal(t, "a—", tw.Text())
	assert.Equal(t, 3, tw.Steps())
}

func TestTypewriter_MarkupTagIsOneUnit(t *testing.T) {
	tw := NewMarkup("I'm <span class='highlight'>Neo</span>!")

	for i := 0; i < 4; i++ {
		tw.Step()
	}
	assert.Equal(t, "I'm ", tw.Text())

	tw.Step()
	assert.Equal(t, "I'm <span class='highlight'>", tw.Text())

	for i := 0; i < 3; i++ {
		tw.Step()
	}
	assert.Equal(t, "I'm <span class='highlight'>Neo", tw.Text())

	tw.Step()
	assert.True(t, strings.HasSuffix(tw.Text(), "</span>"))
	tw.Step()
	assert.Equal(t, "I'm <span class='highlight'>Neo</span>!", tw.Text())
	// "I'm " + tag + "Neo" + tag + "!"
	assert.Equal(t, 4+1+3+1+1, tw.Steps())
}

func TestTypewriter_UnterminatedTag(t *testing.T) {
	tw := NewMarkup("a<b")
	assert.Equal(t, 3, tw.Steps())

	tw.Step()
	tw.Step()
	assert.Equal(t, "a<", tw.Text())
}

func TestTypewriter_Reset(t *testing.T) {
	tw := New("hi")
	for tw.Step() {
	}
	tw.Reset()
	assert.False(t, tw.Done())
	assert.Equal(t, "", tw.Text())
}

func TestSequence_Hero(t *testing.T) {
	seq := NewHero("Hi", "<b>x</b>")
	assert.Equal(t, HeroStartDelay, seq.StartDelay())

	type tick struct {
		text  string
		delay time.Duration
		done  bool
		more  bool
	}
	want := []tick{
		{"H", HeroWelcomeTick, false, true},
		{"Hi", HeroIntroPause, true, true},
		{"<b>", HeroIntroTick, false, true},
		{"<b>x", HeroIntroTick, false, true},
		{"<b>x</b>", 0, true, false},
	}

	for i, w := range want {
		f, delay, more := seq.Next()
		assert.Equal(t, w.text, f.Text, "tick %d", i)
		assert.Equal(t, w.delay, delay, "tick %d", i)
		assert.Equal(t, w.done, f.StageDone, "tick %d", i)
		assert.Equal(t, w.more, more, "tick %d", i)
	}
	assert.True(t, seq.Done())

	_, _, more := seq.Next()
	assert.False(t, more)
}

func TestSequence_FinalTextRevealedOnce(t *testing.T) {
	intro := "I'm <span class='highlight'>Neo</span>, a practical software engineer."
	seq := NewHero("Welcome", intro)

	full := 0
	for {
		f, _, more := seq.Next()
		if f.Name == "intro" && f.Text == intro {
			full++
		}
		if !more {
			break
		}
	}
	assert.Equal(t, 1, full)
}

func TestSequence_SkipsEmptyStages(t *testing.T) {
	seq := NewSequence(
		Stage{Name: "empty", Writer: New("")},
		Stage{Name: "one", Writer: New("x"), Delay: time.Second},
	)

	f, _, more := seq.Next()
	assert.Equal(t, "one", f.Name)
	assert.Equal(t, "x", f.Text)
	assert.True(t, f.StageDone)
	assert.False(t, more)
}
