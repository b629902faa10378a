package response

import "monitor-srv/pkg/errors"

// Resp is the standard JSON envelope every endpoint returns.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// ErrorMapping resolves sentinel errors to HTTP errors in ErrorWithMap.
type ErrorMapping map[error]*errors.HTTPError
