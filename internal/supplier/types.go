package supplier

import (
	"encoding/json"
	"strings"
)

// RateLimitSnapshot mirrors the supplier's X-RateLimit-* response headers.
// Zero values mean the headers were absent. Snapshots inform logging and
// backoff only and are never persisted.
type RateLimitSnapshot struct {
	Limit        int
	Remaining    int
	ResetSeconds int
}

type Guest struct {
	Adults    int   `json:"adults" validate:"required,min=1"`
	Children  int   `json:"children,omitempty" validate:"min=0"`
	ChildAges []int `json:"child_ages,omitempty"`
}

type DailyPrice struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// RateQuote is the prebook result for one rate. CancellationPolicy is an
// opaque supplier payload passed through verbatim.
type RateQuote struct {
	BookHash           string          `json:"book_hash"`
	Price              float64         `json:"price"`
	Currency           string          `json:"currency"`
	Daily              []DailyPrice    `json:"daily"`
	CancellationPolicy json.RawMessage `json:"cancellation_policy,omitempty"`
	MatchHash          string          `json:"match_hash,omitempty"`
}

// OrderStatus is the supplier-reported state of a booking order. The supplier
// does not publish a closed vocabulary; the sets below cover the observed
// terminal values and everything else is treated as in flight.
type OrderStatus string

func (s OrderStatus) Succeeded() bool {
	switch strings.ToLower(string(s)) {
	case "ok", "confirmed", "completed":
		return true
	}
	return false
}

func (s OrderStatus) Failed() bool {
	switch strings.ToLower(string(s)) {
	case "failed", "error", "rejected", "cancelled":
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s.Succeeded() || s.Failed()
}

// BookingOutcome is the tagged result of StartBooking. Finalized is true only
// when a terminal status was observed; an order or process identifier without
// a terminal status means the booking is in flight and must be polled.
type BookingOutcome struct {
	Finalized bool
	ProcessID string
	OrderID   string
	Status    OrderStatus
}

// FinishStatus is the poll result for an in-flight booking.
type FinishStatus struct {
	OrderID string          `json:"order_id"`
	Status  OrderStatus     `json:"status"`
	Details json.RawMessage `json:"details,omitempty"`
}

type SerpHotel struct {
	HID      int64   `json:"hid"`
	Name     string  `json:"name"`
	Stars    int     `json:"stars,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

type SearchResult struct {
	Hotels     []SerpHotel `json:"hotels"`
	SearchHash string      `json:"search_hash,omitempty"`
}

// HotelPage carries the detailed rates for one hotel. Rates expose the book
// hashes needed to prebook; Raw preserves the full supplier payload for
// callers that render room details.
type HotelPage struct {
	Rates []Rate          `json:"rates"`
	Raw   json.RawMessage `json:"-"`
}

type Rate struct {
	BookHash string          `json:"book_hash"`
	RoomName string          `json:"room_name,omitempty"`
	Daily    []DailyPrice    `json:"daily,omitempty"`
	Payment  json.RawMessage `json:"payment_options,omitempty"`
}

// CatalogDump points at the supplier's static hotel content dump. The dump
// regenerates a few times a day, which is why it is the one capability cached
// with the long TTL override.
type CatalogDump struct {
	GeneratedAt string `json:"generated_at"`
	FileURL     string `json:"file_url"`
}

type IncrementalDump struct {
	GeneratedAt string `json:"generated_at,omitempty"`
	FileURL     string `json:"file_url,omitempty"`
	Since       string `json:"since,omitempty"`
}
