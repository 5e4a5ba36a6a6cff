package program

import (
	"slices"
	"strings"

	"transferpoints/internal/pkg/errs"
)

var ErrEmptyID = errs.New("program id cannot be empty")

// Program is a points currency issued by a bank.
type Program struct {
	id       string
	name     string
	bank     string
	logoURL  string
	keyCards []string
}

func NewProgram(id, name, bank, logoURL string, keyCards []string) (*Program, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(name) == "" {
		name = id
	}
	return &Program{
		id:       id,
		name:     name,
		bank:     bank,
		logoURL:  logoURL,
		keyCards: slices.Clone(keyCards),
	}, nil
}

func (p *Program) ID() string         { return p.id }
func (p *Program) Name() string       { return p.name }
func (p *Program) Bank() string       { return p.bank }
func (p *Program) LogoURL() string    { return p.logoURL }
func (p *Program) KeyCards() []string { return slices.Clone(p.keyCards) }
