package shift

import "time"

func isValidStartTime(startTime string) bool {
	_, err := time.Parse("15:04", startTime)
	return err == nil
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "assigned", "completed", "cancelled":
		return true
	default:
		return false
	}
}
