package timewindow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "clip2txt/internal/app/errors"
)

func TestToSecondsRoundTrip(t *testing.T) {
	cases := []string{
		"00:00:00",
		"00:00:01",
		"00:05:00",
		"01:02:03",
		"12:34:56",
		"23:59:59",
	}
	for _, ts := range cases {
		t.Run(ts, func(t *testing.T) {
			sec, err := ToSeconds(ts)
			require.NoError(t, err)
			assert.Equal(t, ts, ToTimestamp(sec))
		})
	}
}

func TestToSecondsRejectsMalformed(t *testing.T) {
	cases := []struct {
		name   string
		marker string
	}{
		{"minutes out of range", "00:60:00"},
		{"seconds out of range", "00:00:60"},
		{"wrong separator", "00-00-00"},
		{"missing component", "00:00"},
		{"single digit hour", "0:00:00"},
		{"trailing garbage", "00:00:00x"},
		{"not a timestamp", "hello"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToSeconds(tt.marker)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidWindow))
		})
	}
}

func TestResolveWithDurationHint(t *testing.T) {
	hint := DurationHint{Seconds: 200, Known: true}

	tests := []struct {
		name     string
		startTS  string
		endTS    string
		expected Window
	}{
		{
			name:     "defaults cover the whole source",
			startTS:  "",
			endTS:    "",
			expected: Window{Start: 0, End: 200},
		},
		{
			name:     "end clamped to duration",
			startTS:  "",
			endTS:    "00:05:00", // 300s > 200s
			expected: Window{Start: 0, End: 200},
		},
		{
			name:     "degenerate order falls back to full range",
			startTS:  "00:03:00", // 180s
			endTS:    "00:01:00", // 60s
			expected: Window{Start: 0, End: 200},
		},
		{
			name:     "valid explicit bounds kept",
			startTS:  "00:00:30",
			endTS:    "00:02:00",
			expected: Window{Start: 30, End: 120},
		},
		{
			name:     "start beyond duration falls back to full range",
			startTS:  "00:10:00",
			endTS:    "",
			expected: Window{Start: 0, End: 200},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win, err := Resolve(tt.startTS, tt.endTS, hint)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, win)
		})
	}
}

func TestResolveWithoutDurationHint(t *testing.T) {
	t.Run("both markers present yields raw unclamped window", func(t *testing.T) {
		win, err := Resolve("00:02:30", "00:03:50", DurationHint{})
		require.NoError(t, err)
		assert.Equal(t, Window{Start: 150, End: 230}, win)
	})

	t.Run("reversed markers are accepted unvalidated", func(t *testing.T) {
		win, err := Resolve("00:03:00", "00:01:00", DurationHint{})
		require.NoError(t, err)
		assert.Equal(t, Window{Start: 180, End: 60}, win)
	})

	t.Run("missing start fails", func(t *testing.T) {
		_, err := Resolve("", "00:01:00", DurationHint{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidWindow))
	})

	t.Run("missing end fails", func(t *testing.T) {
		_, err := Resolve("00:01:00", "", DurationHint{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidWindow))
	})
}

func TestResolveRejectsMalformedMarkers(t *testing.T) {
	hint := DurationHint{Seconds: 100, Known: true}

	_, err := Resolve("00:61:00", "", hint)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidWindow))

	_, err = Resolve("", "bad", hint)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidWindow))
}

func TestHintOf(t *testing.T) {
	assert.Equal(t, DurationHint{Seconds: 42, Known: true}, HintOf(42, nil))
	assert.Equal(t, DurationHint{}, HintOf(0, nil))
	assert.Equal(t, DurationHint{}, HintOf(-1, nil))
	assert.Equal(t, DurationHint{}, HintOf(42, errors.New("probe failed")))
}

func TestWindowFormatting(t *testing.T) {
	win := Window{Start: 150, End: 230}
	assert.Equal(t, "00:02:30", win.StartTimestamp())
	assert.Equal(t, "00:03:50", win.EndTimestamp())
	assert.Equal(t, "*00:02:30-00:03:50", win.RangeExpr())
}
