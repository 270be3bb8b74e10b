package domain

import "time"

// Resolution candle width accepted by the history endpoint.
type Resolution string

const (
	Resolution1m  Resolution = "1"
	Resolution1h  Resolution = "60"
	Resolution3h  Resolution = "180"
	Resolution6h  Resolution = "360"
	Resolution12h Resolution = "720"
	Resolution1d  Resolution = "1D"
)

// Valid reports whether r is one of the supported resolutions.
func (r Resolution) Valid() bool {
	switch r {
	case Resolution1m, Resolution1h, Resolution3h, Resolution6h, Resolution12h, Resolution1d:
		return true
	}
	return false
}

// Duration returns the width of one candle.
func (r Resolution) Duration() time.Duration {
	switch r {
	case Resolution1m:
		return time.Minute
	case Resolution1h:
		return time.Hour
	case Resolution3h:
		return 3 * time.Hour
	case Resolution6h:
		return 6 * time.Hour
	case Resolution12h:
		return 12 * time.Hour
	case Resolution1d:
		return 24 * time.Hour
	default:
		return 0
	}
}

// Candle single OHLCV bar.
type Candle struct {
	Timestamp time.Time    `json:"timestamp"`
	Open      NumberString `json:"open"`
	High      NumberString `json:"high"`
	Low       NumberString `json:"low"`
	Close     NumberString `json:"close"`
	Volume    NumberString `json:"volume"`
}
