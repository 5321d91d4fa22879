package usecase

import "time"

// Clock provides the calendar day stamp the daily games key on.
type Clock interface {
	Today() string
}

// SystemClock stamps days as MM/DD/YYYY in server-local time, the same
// format the stored records carry.
type SystemClock struct{}

func (SystemClock) Today() string {
	return time.Now().Format("01/02/2006")
}
