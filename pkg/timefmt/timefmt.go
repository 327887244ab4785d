// Package timefmt formats playback positions for display.
package timefmt

import (
	"math"
	"strconv"
)

// FormatTime renders seconds as H:MM:SS or M:SS.
//
// guide is the total duration the value is shown against; it decides how many
// fields appear so that every value on one seek bar has the same shape. The
// hour field appears when either value reaches an hour (an infinite guide
// counts), and minutes are zero-padded when hours are shown or the guide
// reaches ten minutes. A zero, negative or NaN guide adds no fields, which
// matches passing seconds itself. Negative seconds render as zero. NaN and
// +Inf render as dashes, "-:-" or "-:-:-" when the guide shows hours.
func FormatTime(seconds, guide float64) string {
	if seconds < 0 {
		seconds = 0
	}
	gh := math.Floor(guide / 3600)
	gm := math.Floor(math.Mod(guide/60, 60))

	if math.IsNaN(seconds) || math.IsInf(seconds, 1) {
		if gh > 0 {
			return "-:-:-"
		}
		return "-:-"
	}

	s := int64(math.Mod(seconds, 60))
	m := int64(math.Mod(seconds/60, 60))
	h := int64(seconds / 3600)

	var out []byte
	showHours := h > 0 || gh > 0
	if showHours {
		out = strconv.AppendInt(out, h, 10)
		out = append(out, ':')
	}
	if (showHours || gm >= 10) && m < 10 {
		out = append(out, '0')
	}
	out = strconv.AppendInt(out, m, 10)
	out = append(out, ':')
	if s < 10 {
		out = append(out, '0')
	}
	out = strconv.AppendInt(out, s, 10)
	return string(out)
}
