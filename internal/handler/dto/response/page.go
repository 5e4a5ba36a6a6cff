package response

import (
	"transferpoints/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Layout is handed to every template; Data holds the page-specific model.
type Layout struct {
	Title  string
	Active string
	Data   any
}

func NewLayout(title, active string, data any) Layout {
	return Layout{Title: title, Active: active, Data: data}
}

type ErrorPage struct {
	Status  int
	Message string
}

// copyInto copies same-named fields. copier only fails on nil or mismatched
// kinds, which would be a bug in this package.
func copyInto(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic(errs.Wrap(err, "copy view model"))
	}
}
