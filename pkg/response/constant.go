package response

import "monitor-srv/pkg/locale"

// CodeOK is the error_code for successful responses.
const CodeOK = 0

// Canned envelope message keys.
const (
	msgOK           = "ok"
	msgInternal     = "internal_error"
	msgUnauthorized = "unauthorized"
)

// canned holds the envelope messages per language. EN doubles as the
// fallback for gaps.
var canned = map[string]map[string]string{
	locale.EN: {
		msgOK:           "Success",
		msgInternal:     "Internal server error",
		msgUnauthorized: "Unauthorized",
	},
	locale.VI: {
		msgOK:           "Thành công",
		msgInternal:     "Lỗi hệ thống",
		msgUnauthorized: "Chưa xác thực",
	},
	locale.JA: {
		msgOK:           "成功しました",
		msgInternal:     "サーバー内部エラー",
		msgUnauthorized: "認証されていません",
	},
}
