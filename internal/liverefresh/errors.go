package liverefresh

import "errors"

var (
	ErrNoSubjects    = errors.New("liverefresh: at least one entity id is required")
	ErrTriggerFailed = errors.New("liverefresh: analysis trigger failed")
)
