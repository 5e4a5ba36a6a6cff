package partner

import "errors"

var (
	ErrEmptyID         = errors.New("partner id cannot be empty")
	ErrInvalidAlliance = errors.New("alliance must be oneworld, star_alliance, skyteam or independent")
	ErrInvalidCategory = errors.New("category must be airline or hotel")
)
