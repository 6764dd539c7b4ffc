package typewriter

import "time"

// Hero animation timings.
const (
	HeroStartDelay  = 500 * time.Millisecond
	HeroWelcomeTick = 60 * time.Millisecond
	HeroIntroPause  = 300 * time.Millisecond
	HeroIntroTick   = 20 * time.Millisecond
)

// Stage is one typewriter in a Sequence.
type Stage struct {
	Name     string
	Writer   *Typewriter
	Delay    time.Duration // wait before the first tick of this stage
	Interval time.Duration // wait between ticks
}

// Frame is the visible state after one tick.
type Frame struct {
	Stage     int
	Name      string
	Text      string
	StageDone bool
}

// Sequence runs stages one after another.
type Sequence struct {
	stages []Stage
	cur    int
}

// NewSequence chains the given stages.
func NewSequence(stages ...Stage) *Sequence {
	return &Sequence{stages: stages}
}

// NewHero builds the welcome → intro sequence used on the landing section.
func NewHero(welcome, intro string) *Sequence {
	return NewSequence(
		Stage{Name: "welcome", Writer: New(welcome), Delay: HeroStartDelay, Interval: HeroWelcomeTick},
		Stage{Name: "intro", Writer: NewMarkup(intro), Delay: HeroIntroPause, Interval: HeroIntroTick},
	)
}

// StartDelay is the wait before the first call to Next.
func (s *Sequence) StartDelay() time.Duration {
	if len(s.stages) == 0 {
		return 0
	}
	return s.stages[0].Delay
}

// Done reports whether every stage has finished.
func (s *Sequence) Done() bool { return s.cur >= len(s.stages) }

// Next performs one tick. It returns the resulting frame, how long to wait
// before the next call, and whether another call is needed.
func (s *Sequence) Next() (Frame, time.Duration, bool) {
	for s.cur < len(s.stages) && s.stages[s.cur].Writer.Done() {
		s.cur++
	}
	if s.Done() {
		return Frame{Stage: len(s.stages) - 1}, 0, false
	}

	st := s.stages[s.cur]
	st.Writer.Step()
	f := Frame{Stage: s.cur, Name: st.Name, Text: st.Writer.Text()}
	if !st.Writer.Done() {
		return f, st.Interval, true
	}

	f.StageDone = true
	s.cur++
	for s.cur < len(s.stages) && s.stages[s.cur].Writer.Done() {
		s.cur++
	}
	if s.Done() {
		return f, 0, false
	}
	return f, s.stages[s.cur].Delay, true
}
