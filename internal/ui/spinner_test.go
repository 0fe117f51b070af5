package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerSuccessLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Checking SSH connectivity")

	s.Start()
	time.Sleep(80 * time.Millisecond)
	s.Success()

	out := buf.String()
	assert.Contains(t, out, "Checking SSH connectivity")
	assert.Contains(t, out, SymbolComplete)
	assert.True(t, strings.HasSuffix(out, "\n"), "resolution ends the line")
}

func TestSpinnerFailLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Checking SSH connectivity")

	s.Start()
	s.Fail()

	out := buf.String()
	assert.Contains(t, out, SymbolFail)
	assert.NotContains(t, out, SymbolComplete)
}

func TestSpinnerResolutionIncludesElapsed(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Probe")

	s.Start()
	time.Sleep(30 * time.Millisecond)
	s.Success()

	// The final line carries a sub-second duration like "0.03s".
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	last := lines[len(lines)-1]
	assert.Regexp(t, `\d+\.\d+s`, last)
}

func TestSpinnerStartTwice(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Probe")

	s.Start()
	s.Start()
	s.Success()

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestSpinnerResolveTwice(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Probe")

	s.Start()
	s.Success()
	s.Fail()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "second resolution is a no-op")
	assert.NotContains(t, out, SymbolFail)
}

func TestSpinnerResolveWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Probe")

	s.Success()

	assert.Empty(t, buf.String())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0.00s"},
		{80 * time.Millisecond, "0.08s"},
		{100 * time.Millisecond, "0.1s"},
		{2 * time.Second, "2.0s"},
		{2500 * time.Millisecond, "2.5s"},
		{61 * time.Second, "61.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.duration))
		})
	}
}
