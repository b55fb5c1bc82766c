package request

import (
	"staybook/internal/supplier"
)

type GuestGroup struct {
	Adults    int   `json:"adults" binding:"required,min=1"`
	Children  int   `json:"children,omitempty" binding:"omitempty,min=0"`
	ChildAges []int `json:"child_ages,omitempty"`
}

func toSupplierGuests(groups []GuestGroup) []supplier.Guest {
	guests := make([]supplier.Guest, len(groups))
	for i, g := range groups {
		guests[i] = supplier.Guest{
			Adults:    g.Adults,
			Children:  g.Children,
			ChildAges: g.ChildAges,
		}
	}
	return guests
}

type SearchHotelsRequest struct {
	CheckIn   string       `json:"checkin" binding:"required,datetime=2006-01-02"`
	CheckOut  string       `json:"checkout" binding:"required,datetime=2006-01-02"`
	HIDs      []int64      `json:"hids,omitempty"`
	Residency string       `json:"residency,omitempty" binding:"omitempty,len=2"`
	Guests    []GuestGroup `json:"guests" binding:"required,min=1,dive"`
	Currency  string       `json:"currency,omitempty" binding:"omitempty,len=3"`
	Language  string       `json:"language,omitempty"`
	Timeout   int          `json:"timeout,omitempty" binding:"omitempty,min=10,max=300"`
}

func (r SearchHotelsRequest) ToParams() supplier.SearchParams {
	return supplier.SearchParams{
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		HIDs:      r.HIDs,
		Residency: r.Residency,
		Guests:    toSupplierGuests(r.Guests),
		Currency:  r.Currency,
		Language:  r.Language,
		Timeout:   r.Timeout,
	}
}

type RegionSearchRequest struct {
	RegionID int64        `json:"region_id" binding:"required,min=1"`
	CheckIn  string       `json:"checkin" binding:"required,datetime=2006-01-02"`
	CheckOut string       `json:"checkout" binding:"required,datetime=2006-01-02"`
	Guests   []GuestGroup `json:"guests" binding:"required,min=1,dive"`
	Currency string       `json:"currency,omitempty" binding:"omitempty,len=3"`
	Language string       `json:"language,omitempty"`
}

func (r RegionSearchRequest) ToParams() supplier.RegionSearchParams {
	return supplier.RegionSearchParams{
		RegionID: r.RegionID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Guests:   toSupplierGuests(r.Guests),
		Currency: r.Currency,
		Language: r.Language,
	}
}

type GeoSearchRequest struct {
	Latitude  float64      `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64      `json:"longitude" binding:"min=-180,max=180"`
	Radius    int          `json:"radius" binding:"required,min=1,max=100000"`
	CheckIn   string       `json:"checkin" binding:"required,datetime=2006-01-02"`
	CheckOut  string       `json:"checkout" binding:"required,datetime=2006-01-02"`
	Guests    []GuestGroup `json:"guests" binding:"required,min=1,dive"`
	Currency  string       `json:"currency,omitempty" binding:"omitempty,len=3"`
}

func (r GeoSearchRequest) ToParams() supplier.GeoSearchParams {
	return supplier.GeoSearchParams{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Radius:    r.Radius,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		Guests:    toSupplierGuests(r.Guests),
		Currency:  r.Currency,
	}
}

type HotelInfoRequest struct {
	HID     int64  `json:"hid,omitempty"`
	HotelID string `json:"hotel_id,omitempty"`
}

type HotelPageRequest struct {
	HID        int64        `json:"hid,omitempty"`
	HotelID    string       `json:"hotel_id,omitempty"`
	SearchHash string       `json:"search_hash,omitempty"`
	CheckIn    string       `json:"checkin" binding:"required,datetime=2006-01-02"`
	CheckOut   string       `json:"checkout" binding:"required,datetime=2006-01-02"`
	Guests     []GuestGroup `json:"guests" binding:"required,min=1,dive"`
	Currency   string       `json:"currency,omitempty" binding:"omitempty,len=3"`
	Language   string       `json:"language,omitempty"`
	Timeout    int          `json:"timeout,omitempty" binding:"omitempty,min=10,max=300"`
}

func (r HotelPageRequest) ToParams() supplier.HotelPageParams {
	return supplier.HotelPageParams{
		HID:        r.HID,
		HotelID:    r.HotelID,
		SearchHash: r.SearchHash,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Guests:     toSupplierGuests(r.Guests),
		Currency:   r.Currency,
		Language:   r.Language,
		Timeout:    r.Timeout,
	}
}
