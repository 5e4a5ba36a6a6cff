package partner

import "strings"

// Partner is an airline or hotel program that accepts transferred points.
type Partner struct {
	id       string
	name     string
	alliance Alliance
	category Category
	logoURL  string
}

func NewPartner(id, name, alliance, category, logoURL string) (*Partner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	a, err := NewAlliance(alliance)
	if err != nil {
		return nil, err
	}
	c, err := NewCategory(category)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		name = id
	}
	return &Partner{
		id:       id,
		name:     name,
		alliance: a,
		category: c,
		logoURL:  logoURL,
	}, nil
}

func (p *Partner) ID() string         { return p.id }
func (p *Partner) Name() string       { return p.name }
func (p *Partner) Alliance() Alliance { return p.alliance }
func (p *Partner) Category() Category { return p.category }
func (p *Partner) LogoURL() string    { return p.logoURL }
