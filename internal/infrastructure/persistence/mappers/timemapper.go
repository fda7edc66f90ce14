package mappers

import "time"

// millisToTime converts a stored millisecond unix timestamp back to UTC.
func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
