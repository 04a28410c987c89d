// internal/scoring/scoring.go
//
// Points awarded for a correct match.
// A match earns three components:
//   - base:   fixed amount for any correct click.
//   - streak: StreakStep per consecutive correct click beyond the first, capped.
//   - time:   linear decay from TimeMax to 0 over TimeWindow since the letter started.
//
// Score is pure; the state machine supplies elapsed time and the streak length
// including the click being scored.

package scoring

import (
	"math/bits"
	"time"
)

// Policy holds the tunable coefficients. Zero values disable a component.
type Policy struct {
	Base       int           `yaml:"base" json:"base"`
	StreakStep int           `yaml:"streakStep" json:"streakStep"`
	StreakCap  int           `yaml:"streakCap" json:"streakCap"` // max number of steps
	TimeMax    int           `yaml:"timeMax" json:"timeMax"`
	TimeWindow time.Duration `yaml:"timeWindow" json:"timeWindow"`
}

// Default is the stock policy: 100 base, +25 per streak step up to +200,
// and up to 100 time bonus decaying to zero over 20 seconds.
var Default = Policy{
	Base:       100,
	StreakStep: 25,
	StreakCap:  8,
	TimeMax:    100,
	TimeWindow: 20 * time.Second,
}

// Breakdown is the per-component result of a match.
type Breakdown struct {
	Base   int `json:"base"`
	Streak int `json:"streak"`
	Time   int `json:"time"`
}

// Total sums all components.
func (b Breakdown) Total() int { return b.Base + b.Streak + b.Time }

// Score computes the breakdown for a correct click made elapsed after the
// letter became current, with streak consecutive correct clicks (this one included).
func (p Policy) Score(elapsed time.Duration, streak int) Breakdown {
	return Breakdown{
		Base:   nonNeg(p.Base),
		Streak: p.streakBonus(streak),
		Time:   p.timeBonus(elapsed),
	}
}

func (p Policy) streakBonus(streak int) int {
	steps := streak - 1
	if steps <= 0 {
		return 0
	}
	if p.StreakCap >= 0 && steps > p.StreakCap {
		steps = p.StreakCap
	}
	return nonNeg(steps * p.StreakStep)
}

func (p Policy) timeBonus(elapsed time.Duration) int {
	if p.TimeWindow <= 0 || p.TimeMax <= 0 {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= p.TimeWindow {
		return 0
	}
	// 128-bit product: long windows would overflow int64.
	// remaining <= TimeWindow, so the quotient is at most TimeMax.
	remaining := p.TimeWindow - elapsed
	hi, lo := bits.Mul64(uint64(p.TimeMax), uint64(remaining))
	q, _ := bits.Div64(hi, lo, uint64(p.TimeWindow))
	return int(q)
}

// Merge returns p with every non-zero field of o applied on top.
func (p Policy) Merge(o Policy) Policy {
	if o.Base != 0 {
		p.Base = o.Base
	}
	if o.StreakStep != 0 {
		p.StreakStep = o.StreakStep
	}
	if o.StreakCap != 0 {
		p.StreakCap = o.StreakCap
	}
	if o.TimeMax != 0 {
		p.TimeMax = o.TimeMax
	}
	if o.TimeWindow != 0 {
		p.TimeWindow = o.TimeWindow
	}
	return p
}

func nonNeg(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
