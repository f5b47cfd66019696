package snapshot

import "strings"

// IsUnsupported reports whether err is gopsutil's way of saying a metric does
// not exist on this platform, as opposed to a transient read failure.
func IsUnsupported(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not implemented") || strings.Contains(msg, "not supported")
}
