package http

import (
	"monitor-srv/internal/ingest"
)

// ===== Request DTOs =====

type retryReq struct {
	Limit int `form:"limit"`
}

func (r retryReq) toInput() ingest.RetryFailedInput {
	return ingest.RetryFailedInput{Limit: r.Limit}
}

// ===== Response DTOs =====

type retryResp struct {
	TotalRetried int    `json:"total_retried"`
	Succeeded    int    `json:"succeeded"`
	Failed       int    `json:"failed"`
	Duration     string `json:"duration"`
}

func newRetryResp(out ingest.RetryFailedOutput) retryResp {
	return retryResp{
		TotalRetried: out.TotalRetried,
		Succeeded:    out.Succeeded,
		Failed:       out.Failed,
		Duration:     out.Duration.String(),
	}
}
