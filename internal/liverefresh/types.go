package liverefresh

import "monitor-srv/internal/model"

type ActivateInput struct {
	EntityIDs []string
}

type ActivateOutput struct {
	State model.RefreshState
	// Activated is false when the controller was already active and the
	// call was absorbed as a no-op.
	Activated bool
}
