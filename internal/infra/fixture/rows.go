package fixture

// File names inside a fixture directory.
const (
	ProgramsFile      = "programs.json"
	PartnersFile      = "partners.json"
	BonusesFile       = "bonuses.json"
	RelationshipsFile = "transfer_relationships.json"
)

// Files lists every fixture document.
var Files = []string{ProgramsFile, PartnersFile, BonusesFile, RelationshipsFile}

// The row types below are the wire contract between data curation and the
// application. Each document is a JSON array of the corresponding row.

type ProgramRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Bank     string   `json:"bank"`
	LogoURL  string   `json:"logo_url"`
	KeyCards []string `json:"key_cards"`
}

type PartnerRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Alliance string `json:"alliance"`
	LogoURL  string `json:"logo_url"`
	Category string `json:"category,omitempty"`
}

type BonusRow struct {
	ID        string  `json:"id"`
	ProgramID string  `json:"program_id"`
	PartnerID string  `json:"partner_id"`
	BonusPct  float64 `json:"bonus_pct"`
	Status    string  `json:"status"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Targeted  bool    `json:"targeted"`
	SourceURL string  `json:"source_url"`
}

type RelationshipRow struct {
	ProgramID string  `json:"program_id"`
	PartnerID string  `json:"partner_id"`
	RatioFrom float64 `json:"ratio_from"`
	RatioTo   float64 `json:"ratio_to"`
}

// Rows is one decoded set of fixture documents.
type Rows struct {
	Programs      []ProgramRow
	Partners      []PartnerRow
	Bonuses       []BonusRow
	Relationships []RelationshipRow
}
