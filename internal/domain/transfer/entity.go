package transfer

import (
	"errors"
	"strings"

	"transferpoints/internal/domain/bonus"
)

var (
	ErrMissingReference = errors.New("relationship must reference a program and a partner")
	ErrInvalidRatio     = errors.New("ratio parts must be positive")
)

// Ratio is the base exchange rate: From program points buy To partner points.
type Ratio struct {
	from float64
	to   float64
}

func NewRatio(from, to float64) (Ratio, error) {
	if from <= 0 || to <= 0 {
		return Ratio{}, ErrInvalidRatio
	}
	return Ratio{from: from, to: to}, nil
}

func (r Ratio) From() float64 { return r.from }
func (r Ratio) To() float64   { return r.to }

func (r Ratio) String() string {
	return bonus.FormatRatioPart(r.from) + " : " + bonus.FormatRatioPart(r.to)
}

// Key identifies the relationship between a program and a partner.
type Key struct {
	ProgramID string
	PartnerID string
}

type Relationship struct {
	key   Key
	ratio Ratio
}

func NewRelationship(programID, partnerID string, from, to float64) (*Relationship, error) {
	programID = strings.TrimSpace(programID)
	partnerID = strings.TrimSpace(partnerID)
	if programID == "" || partnerID == "" {
		return nil, ErrMissingReference
	}
	ratio, err := NewRatio(from, to)
	if err != nil {
		return nil, err
	}
	return &Relationship{
		key:   Key{ProgramID: programID, PartnerID: partnerID},
		ratio: ratio,
	}, nil
}

func (r *Relationship) Key() Key          { return r.key }
func (r *Relationship) ProgramID() string { return r.key.ProgramID }
func (r *Relationship) PartnerID() string { return r.key.PartnerID }
func (r *Relationship) Ratio() Ratio      { return r.ratio }
