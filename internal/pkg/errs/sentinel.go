package errs

// Sentinel errors shared by the usecase and handler layers
var (
	// Catalog errors
	ErrCatalogUnavailable = New("catalog unavailable")
	ErrBonusNotFound      = New("bonus not found")

	// Request errors
	ErrInvalidFilter = New("invalid filter")
)
