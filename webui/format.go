package webui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/ralim/nxmissing/query"
	"golang.org/x/text/message"
)

// FormatSize renders a byte count, 0 means the size is unknown
func FormatSize(size int64) string {
	if size <= 0 {
		return "N/A"
	}
	return humanize.IBytes(uint64(size))
}

// FormatDate shows a release date as "Jan 2, 2006", dates that cant be read are shown as is
func FormatDate(releaseDate string) string {
	t, ok := query.ParseDate(releaseDate)
	if !ok {
		return releaseDate
	}
	return t.Format("Jan 2, 2006")
}

// Truncate cuts a name to budget characters with an ellipsis, a budget of 0 or less leaves it alone
func Truncate(name string, budget int) string {
	if budget <= 0 || utf8.RuneCountInString(name) <= budget {
		return name
	}
	runes := []rune(name)
	return string(runes[:budget]) + "…"
}

type TimerState string

const (
	TimerNone     TimerState = "none"
	TimerToday    TimerState = "today"
	TimerReleased TimerState = "released"
	TimerUpcoming TimerState = "upcoming"
)

// ReleaseTimer is the little "time since/until release" badge on home page cards
type ReleaseTimer struct {
	State TimerState
	Text  string
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func NewReleaseTimer(releaseDate string, now time.Time, p *message.Printer) ReleaseTimer {
	if strings.TrimSpace(releaseDate) == "" {
		return ReleaseTimer{State: TimerNone, Text: p.Sprintf("releaseTimer.noDate")}
	}
	date, ok := query.ParseDate(releaseDate)
	if !ok {
		return ReleaseTimer{State: TimerNone, Text: p.Sprintf("releaseTimer.invalidDate")}
	}
	// Dates are calendar days, so compare in the dates own zone
	if sameDay(date, now.In(date.Location())) {
		return ReleaseTimer{State: TimerToday, Text: "0d"}
	}
	text := strings.TrimSpace(humanize.RelTime(date, now, "", ""))
	if date.Before(now) {
		return ReleaseTimer{State: TimerReleased, Text: text}
	}
	return ReleaseTimer{State: TimerUpcoming, Text: text}
}
