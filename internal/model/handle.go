package model

import "strings"

// NormalizeHandle trims surrounding whitespace and a single leading "@".
// The rest of the handle is kept as is, including case.
func NormalizeHandle(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "@")
}
