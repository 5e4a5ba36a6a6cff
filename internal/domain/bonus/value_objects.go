package bonus

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Status string

const (
	StatusLive     Status = "live"
	StatusUpcoming Status = "upcoming"
	StatusExpired  Status = "expired"
)

var Statuses = []Status{StatusLive, StatusUpcoming, StatusExpired}

func NewStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusLive, StatusUpcoming, StatusExpired:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// ParseDate reads a calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// RatioLabel renders a bonus percentage as the boosted transfer ratio,
// e.g. 25 -> "1 : 1.3", 100 -> "1 : 2".
func RatioLabel(pct float64) string {
	return "1 : " + FormatRatioPart(1+pct/100)
}

// FormatRatioPart rounds half away from zero to one decimal and drops a
// trailing ".0".
func FormatRatioPart(v float64) string {
	r := math.Round(v*10) / 10
	s := strconv.FormatFloat(r, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// Remaining is the countdown shown on a live bonus.
type Remaining struct {
	Days   int
	Urgent bool
}

// RemainingUntil computes whole days (rounded up) from now to end.
// Urgent is set when less than urgentWithin is left.
func RemainingUntil(end, now time.Time, urgentWithin time.Duration) Remaining {
	left := end.Sub(now)
	days := int(math.Ceil(left.Hours() / 24))
	return Remaining{
		Days:   days,
		Urgent: left < urgentWithin,
	}
}
