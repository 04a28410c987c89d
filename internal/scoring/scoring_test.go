package scoring_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/element-decoder/internal/scoring"
)

func TestDefaultScore(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		streak  int
		want    scoring.Breakdown
	}{
		{"instant first click", 0, 1, scoring.Breakdown{Base: 100, Streak: 0, Time: 100}},
		{"no streak", 5 * time.Second, 0, scoring.Breakdown{Base: 100, Streak: 0, Time: 75}},
		{"second in a row", 10 * time.Second, 2, scoring.Breakdown{Base: 100, Streak: 25, Time: 50}},
		{"capped streak", 19 * time.Second, 40, scoring.Breakdown{Base: 100, Streak: 200, Time: 5}},
		{"past the window", 20 * time.Second, 3, scoring.Breakdown{Base: 100, Streak: 50, Time: 0}},
		{"long past", time.Hour, 1, scoring.Breakdown{Base: 100}},
		{"clock skew", -time.Second, 1, scoring.Breakdown{Base: 100, Time: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scoring.Default.Score(tc.elapsed, tc.streak))
		})
	}
}

func TestScore_Monotonic(t *testing.T) {
	p := scoring.Default
	prevStreak := -1
	for s := 0; s <= 20; s++ {
		b := p.Score(0, s)
		assert.GreaterOrEqual(t, b.Streak, prevStreak, "streak %d", s)
		assert.GreaterOrEqual(t, b.Streak, 0)
		prevStreak = b.Streak
	}

	prevTime := p.TimeMax + 1
	for ms := 0; ms <= 25000; ms += 250 {
		b := p.Score(time.Duration(ms)*time.Millisecond, 1)
		assert.LessOrEqual(t, b.Time, prevTime, "elapsed %dms", ms)
		assert.GreaterOrEqual(t, b.Time, 0)
		prevTime = b.Time
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 175, scoring.Breakdown{Base: 100, Streak: 25, Time: 50}.Total())
}

func TestMerge(t *testing.T) {
	p := scoring.Default.Merge(scoring.Policy{Base: 50, TimeWindow: 10 * time.Second})
	assert.Equal(t, 50, p.Base)
	assert.Equal(t, 25, p.StreakStep)
	assert.Equal(t, 10*time.Second, p.TimeWindow)
	assert.Equal(t, scoring.Breakdown{Base: 50, Time: 50}, p.Score(5*time.Second, 1))
}

func TestZeroPolicy(t *testing.T) {
	assert.Equal(t, scoring.Breakdown{}, scoring.Policy{}.Score(0, 10))
}

func TestScore_LongTimeWindow(t *testing.T) {
	p := scoring.Policy{TimeMax: 1000, TimeWindow: 1e9 * time.Second}
	assert.Equal(t, 1000, p.Score(0, 1).Time)
	assert.Equal(t, 750, p.Score(p.TimeWindow/4, 1).Time)
	assert.Equal(t, 0, p.Score(p.TimeWindow, 1).Time)

	widest := scoring.Policy{TimeMax: 100, TimeWindow: math.MaxInt64}
	assert.Equal(t, 100, widest.Score(0, 1).Time)
	assert.Equal(t, 50, widest.Score(widest.TimeWindow/2, 1).Time)
}
