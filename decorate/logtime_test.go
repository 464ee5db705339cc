package decorate_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decoratekit/decorate-go/decorate"
)

func Test_LogTime1_EmitsOneTimestampLine(t *testing.T) {
	out := &bytes.Buffer{}
	fixed := time.Date(2024, time.May, 17, 9, 30, 0, 0, time.UTC)

	wrapped := decorate.LogTime1(func(n int) int {
		return n * 2
	},
		decorate.WithLogTimeWriter(out),
		decorate.WithLogTimeClock(func() time.Time { return fixed }),
	)

	value := wrapped(21)

	assert.Equal(t, 42, value)
	assert.Equal(t, "> Logged at "+fixed.Format(time.ANSIC)+"\n", out.String())
}

func Test_LogTime2_CapturesTimestampBeforeDelegating(t *testing.T) {
	out := &bytes.Buffer{}
	ticks := []time.Time{
		time.Date(2024, time.May, 17, 9, 30, 0, 0, time.UTC),
		time.Date(2024, time.May, 17, 9, 30, 5, 0, time.UTC),
	}
	tick := 0
	clock := func() time.Time {
		now := ticks[tick]
		tick++
		return now
	}

	var innerTime time.Time

	wrapped := decorate.LogTime2(func(a, b int) int {
		// the inner callable observes the clock after the decorator did
		innerTime = clock()
		return a + b
	},
		decorate.WithLogTimeWriter(out),
		decorate.WithLogTimeClock(clock),
	)

	wrapped(1, 2)

	require.Equal(t, ticks[1], innerTime)
	assert.Contains(t, out.String(), ticks[0].Format(time.ANSIC))
}

func Test_LogTime3_ValuePassesThroughUnchanged(t *testing.T) {
	out := &bytes.Buffer{}

	wrapped := decorate.LogTime3(func(a, b, c string) string {
		return a + b + c
	}, decorate.WithLogTimeWriter(out))

	assert.Equal(t, "abc", wrapped("a", "b", "c"))
	assert.Equal(t, 1, strings.Count(out.String(), "> Logged at "))
}

func Test_LogTime1_EmitsIndependentlyOfInnerOutcome(t *testing.T) {
	out := &bytes.Buffer{}

	wrapped := decorate.LogTime1(func(n int) decorate.Result[int] {
		return decorate.Fail[int]("boom")
	}, decorate.WithLogTimeWriter(out))

	res := wrapped(1)

	assert.True(t, res.IsBad())
	assert.Equal(t, 1, strings.Count(out.String(), "> Logged at "))
}
