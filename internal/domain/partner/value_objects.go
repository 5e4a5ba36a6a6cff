package partner

import "strings"

type Alliance string

const (
	AllianceOneworld     Alliance = "oneworld"
	AllianceStarAlliance Alliance = "star_alliance"
	AllianceSkyTeam      Alliance = "skyteam"
	AllianceIndependent  Alliance = "independent"
)

var allianceLabels = map[Alliance]string{
	AllianceOneworld:     "oneworld",
	AllianceStarAlliance: "Star Alliance",
	AllianceSkyTeam:      "SkyTeam",
	AllianceIndependent:  "Independent",
}

// Alliances lists every alliance in display order.
var Alliances = []Alliance{AllianceStarAlliance, AllianceOneworld, AllianceSkyTeam, AllianceIndependent}

// NewAlliance parses an alliance; an empty value is treated as independent.
func NewAlliance(s string) (Alliance, error) {
	a := Alliance(strings.ToLower(strings.TrimSpace(s)))
	if a == "" {
		return AllianceIndependent, nil
	}
	if _, ok := allianceLabels[a]; !ok {
		return "", ErrInvalidAlliance
	}
	return a, nil
}

func (a Alliance) Label() string {
	if l, ok := allianceLabels[a]; ok {
		return l
	}
	return string(a)
}

func (a Alliance) IsIndependent() bool { return a == AllianceIndependent }

type Category string

const (
	CategoryAirline Category = "airline"
	CategoryHotel   Category = "hotel"
)

// NewCategory parses a category; an empty value defaults to airline.
func NewCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CategoryAirline, nil
	case CategoryAirline, CategoryHotel:
		return c, nil
	default:
		return "", ErrInvalidCategory
	}
}
