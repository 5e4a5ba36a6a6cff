package queries

import "time"

// BonusView is a bonus joined with its program and partner, plus display values.
type BonusView struct {
	ID             string     `json:"id"`
	ProgramID      string     `json:"program_id"`
	ProgramName    string     `json:"program_name"`
	ProgramBank    string     `json:"program_bank,omitempty"`
	ProgramLogoURL string     `json:"program_logo_url,omitempty"`
	ProgramKnown   bool       `json:"-"`
	PartnerID      string     `json:"partner_id"`
	PartnerName    string     `json:"partner_name"`
	PartnerLogoURL string     `json:"partner_logo_url,omitempty"`
	PartnerKnown   bool       `json:"-"`
	Percent        float64    `json:"bonus_pct"`
	RatioLabel     string     `json:"ratio"`
	Status         string     `json:"status"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Targeted       bool       `json:"targeted"`
	SourceURL      string     `json:"source_url"`
	// Set only for live bonuses with an end date.
	HasCountdown  bool `json:"-"`
	DaysRemaining int  `json:"days_remaining,omitempty"`
	Urgent        bool `json:"urgent,omitempty"`
}

// OptionView feeds a select control.
type OptionView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BonusListView struct {
	Filters  BonusFilters  `json:"filters"`
	Items    []*BonusView  `json:"items"`
	Total    int           `json:"total"`
	Programs []*OptionView `json:"-"`
	Partners []*OptionView `json:"-"`
}

type ProgramCardView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Bank          string   `json:"bank"`
	LogoURL       string   `json:"logo_url"`
	KeyCards      []string `json:"key_cards"`
	ActiveBonuses int      `json:"active_bonuses"`
	PartnerCount  int      `json:"partner_count"`
}

type PartnerCardView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LogoURL       string `json:"logo_url"`
	Alliance      string `json:"alliance"`
	AllianceLabel string `json:"alliance_label"`
	Category      string `json:"category"`
	ActiveBonuses int    `json:"active_bonuses"`
}

type AllianceGroupView struct {
	Alliance string             `json:"alliance"`
	Label    string             `json:"label"`
	Partners []*PartnerCardView `json:"partners"`
}

type HeroStats struct {
	ActiveBonuses int       `json:"active_bonuses"`
	Programs      int       `json:"programs"`
	Partners      int       `json:"partners"`
	LastUpdated   time.Time `json:"last_updated"`
}

type HomeView struct {
	Stats      HeroStats          `json:"stats"`
	TopBonuses []*BonusView       `json:"top_bonuses"`
	Programs   []*ProgramCardView `json:"programs"`
	Partners   []*PartnerCardView `json:"partners"`
	Recent     []*BonusView       `json:"recent"`
}

type CellKind string

const (
	CellBonus       CellKind = "bonus"
	CellBase        CellKind = "base"
	CellUnavailable CellKind = "none"
)

type MatrixCell struct {
	ProgramID string   `json:"program_id"`
	PartnerID string   `json:"partner_id"`
	Kind      CellKind `json:"kind"`
	Label     string   `json:"label"`
	BaseRatio string   `json:"base_ratio,omitempty"`
	BonusID   string   `json:"bonus_id,omitempty"`
	Percent   float64  `json:"bonus_pct,omitempty"`
}

type MatrixRow struct {
	Partner *PartnerCardView `json:"partner"`
	Cells   []*MatrixCell    `json:"cells"`
}

type MatrixView struct {
	Programs []*ProgramCardView `json:"programs"`
	Rows     []*MatrixRow       `json:"rows"`
}
