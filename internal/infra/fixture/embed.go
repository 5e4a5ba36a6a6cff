package fixture

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var embedded embed.FS

// EmbeddedFS returns the fixtures compiled into the binary.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// only fails on a malformed path literal
		panic(err)
	}
	return sub
}
