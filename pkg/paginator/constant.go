package paginator

const (
	// DefaultPage is the default page number when an invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is the default number of items per page when an invalid limit is provided.
	// Note: no maximum limit is enforced; a caller can request an arbitrarily
	// large page. Known hardening gap.
	DefaultLimit = 100
)
