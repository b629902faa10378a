package paginator

// Bounds applied by Adjust.
const (
	DefaultPage  = 1
	DefaultLimit = 15
	MaxLimit     = 100
)
