package bonus

import (
	"strings"
	"time"
)

// Params carries the raw fields of a curated bonus record.
type Params struct {
	ID        string
	ProgramID string
	PartnerID string
	Percent   float64
	Status    string
	StartDate string
	EndDate   string
	Targeted  bool
	SourceURL string
}

// Bonus is a temporary transfer promotion between one program and one partner.
type Bonus struct {
	id        string
	programID string
	partnerID string
	percent   float64
	status    Status
	startDate time.Time
	endDate   *time.Time
	targeted  bool
	sourceURL string
}

func NewBonus(p Params) (*Bonus, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return nil, ErrEmptyID
	}
	programID := strings.TrimSpace(p.ProgramID)
	partnerID := strings.TrimSpace(p.PartnerID)
	if programID == "" || partnerID == "" {
		return nil, ErrMissingReference
	}
	if p.Percent < 0 {
		return nil, ErrNegativePercent
	}
	status, err := NewStatus(p.Status)
	if err != nil {
		return nil, err
	}
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return nil, err
	}

	var end *time.Time
	if strings.TrimSpace(p.EndDate) != "" {
		e, err := ParseDate(p.EndDate)
		if err != nil {
			return nil, err
		}
		if e.Before(start) {
			return nil, ErrEndBeforeStart
		}
		end = &e
	}

	return &Bonus{
		id:        id,
		programID: programID,
		partnerID: partnerID,
		percent:   p.Percent,
		status:    status,
		startDate: start,
		endDate:   end,
		targeted:  p.Targeted,
		sourceURL: p.SourceURL,
	}, nil
}

func (b *Bonus) ID() string           { return b.id }
func (b *Bonus) ProgramID() string    { return b.programID }
func (b *Bonus) PartnerID() string    { return b.partnerID }
func (b *Bonus) Percent() float64     { return b.percent }
func (b *Bonus) Status() Status       { return b.status }
func (b *Bonus) StartDate() time.Time { return b.startDate }
func (b *Bonus) Targeted() bool       { return b.targeted }
func (b *Bonus) SourceURL() string    { return b.sourceURL }

// EndDate returns the end date and whether the bonus has one.
func (b *Bonus) EndDate() (time.Time, bool) {
	if b.endDate == nil {
		return time.Time{}, false
	}
	return *b.endDate, true
}

func (b *Bonus) IsLive() bool { return b.status == StatusLive }

func (b *Bonus) RatioLabel() string { return RatioLabel(b.percent) }

// Remaining is only defined for a live bonus with a known end date.
func (b *Bonus) Remaining(now time.Time, urgentWithin time.Duration) (Remaining, bool) {
	if !b.IsLive() || b.endDate == nil {
		return Remaining{}, false
	}
	return RemainingUntil(*b.endDate, now, urgentWithin), true
}
