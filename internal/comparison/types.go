package comparison

import "monitor-srv/internal/model"

type CompareInput struct {
	EntityIDA    string
	EntityIDB    string
	ForceRefresh bool
}

type CompareOutput struct {
	Result model.ComparisonResult
	// StaleA/StaleB mark sides served from an old snapshot because the
	// review service was unreachable.
	StaleA bool
	StaleB bool
}
