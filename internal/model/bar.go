package model

import "time"

// Bar represents a single OHLCV candlestick period.
// Bars are treated as immutable: computations never modify input bars,
// they only produce new enriched records.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
