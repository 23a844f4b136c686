package respond

import (
	"regexp"
)

var (
	// データベースパスワードパターン（DSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// 生クエリの断片（テーブル名や値の混入を防ぐ）
	sqlFragmentPattern = regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\s+[^:]{0,200}`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	// DBパスワードのマスク
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	// SQL断片のマスク
	msg = sqlFragmentPattern.ReplaceAllString(msg, "[sql]")

	return msg
}
