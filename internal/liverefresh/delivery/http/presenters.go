package http

import (
	"time"

	"monitor-srv/internal/liverefresh"
	"monitor-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type activateReq struct {
	EntityIDs []string `json:"entity_ids" binding:"required,min=1"`
}

func (r activateReq) toInput() liverefresh.ActivateInput {
	return liverefresh.ActivateInput{EntityIDs: r.EntityIDs}
}

// =====================================================
// Response DTOs
// =====================================================

type refreshStateResp struct {
	Mode         string     `json:"mode"`
	IntervalMs   int64      `json:"interval_ms"`
	Subjects     []string   `json:"subjects,omitempty"`
	ActivatedAt  *time.Time `json:"activated_at,omitempty"`
	AutoRevertAt *time.Time `json:"auto_revert_at,omitempty"`
	Activated    bool       `json:"activated"`
}

func (h *handler) newRefreshStateResp(st model.RefreshState, activated bool) refreshStateResp {
	return refreshStateResp{
		Mode:         string(st.Mode),
		IntervalMs:   st.Interval.Milliseconds(),
		Subjects:     st.Subjects,
		ActivatedAt:  st.ActivatedAt,
		AutoRevertAt: st.AutoRevertAt,
		Activated:    activated,
	}
}
