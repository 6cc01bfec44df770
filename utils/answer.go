// file: utils/answer.go
package utils

import "strings"

// NormalizeAnswer 去首尾空白并统一小写
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AnswerMatches 判题规则：忽略大小写和首尾空白的相等比较，
// " Sirius " 命中存储答案 "sirius"
func AnswerMatches(submitted, stored string) bool {
	return NormalizeAnswer(submitted) == NormalizeAnswer(stored)
}
