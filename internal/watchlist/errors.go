package watchlist

import "errors"

var (
	ErrEntityIDRequired   = errors.New("watchlist: entity id is required")
	ErrNameRequired       = errors.New("watchlist: display name is required")
	ErrPairTargetRequired = errors.New("watchlist: pair target is required")
	ErrSelfPair           = errors.New("watchlist: cannot pin an entity against itself")
	ErrAlreadyWatched     = errors.New("watchlist: entity is already watched")
	ErrNotFound           = errors.New("watchlist: watched entity not found")
	ErrStoreFailed        = errors.New("watchlist: store operation failed")
)
