package repository

type CreateOptions struct {
	EntityID       string
	Name           string
	Platform       string
	CreatedBy      string
	PinnedPairWith *string
}

type ListOptions struct {
	Limit  int64
	Offset int64
}

// UpdatePinnedPairOptions carries the new pair target; nil clears it.
type UpdatePinnedPairOptions struct {
	ID             string
	PinnedPairWith *string
}
