package reservation

import "time"

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// ElapsedMinutes reports whole elapsed minutes, floored. Zero or negative
// elapsed time yields zero.
func ElapsedMinutes(elapsed time.Duration) int64 {
	seconds := int64(elapsed.Seconds())
	if seconds <= 0 {
		return 0
	}
	return seconds / secondsPerMinute
}

// BillableHours rounds any started hour up to a full hour. Zero or negative
// elapsed time bills zero hours.
func BillableHours(elapsed time.Duration) int64 {
	seconds := int64(elapsed.Seconds())
	if seconds <= 0 {
		return 0
	}
	return (seconds + secondsPerHour - 1) / secondsPerHour
}

// Cost bills BillableHours at the lot's current hourly price, in cents.
func Cost(elapsed time.Duration, pricePerHourCents int64) int64 {
	return BillableHours(elapsed) * pricePerHourCents
}
