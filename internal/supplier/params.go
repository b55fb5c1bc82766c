package supplier

import (
	"errors"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Declared defaults applied before any call. Validators perform no other
// normalization.
const (
	defaultCurrency      = "BYN"
	defaultLanguage      = "ru"
	defaultSearchTimeout = 30 // seconds, supplier-side search budget
	defaultPageTimeout   = 60
)

type SearchParams struct {
	CheckIn   string  `json:"checkin" validate:"required,datetime=2006-01-02"`
	CheckOut  string  `json:"checkout" validate:"required,datetime=2006-01-02"`
	HIDs      []int64 `json:"hids,omitempty"`
	Residency string  `json:"residency,omitempty" validate:"omitempty,len=2"`
	Guests    []Guest `json:"guests" validate:"required,min=1,dive"`
	Currency  string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Language  string  `json:"language,omitempty"`
	Timeout   int     `json:"timeout,omitempty" validate:"omitempty,min=10,max=300"`
}

type RegionSearchParams struct {
	RegionID int64   `json:"region_id" validate:"required,min=1"`
	CheckIn  string  `json:"checkin" validate:"required,datetime=2006-01-02"`
	CheckOut string  `json:"checkout" validate:"required,datetime=2006-01-02"`
	Guests   []Guest `json:"guests" validate:"required,min=1,dive"`
	Currency string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Language string  `json:"language,omitempty"`
}

type GeoSearchParams struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Radius    int     `json:"radius" validate:"required,min=1,max=100000"` // meters
	CheckIn   string  `json:"checkin" validate:"required,datetime=2006-01-02"`
	CheckOut  string  `json:"checkout" validate:"required,datetime=2006-01-02"`
	Guests    []Guest `json:"guests" validate:"required,min=1,dive"`
	Currency  string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

type HotelPageParams struct {
	HID        int64   `json:"hid,omitempty" validate:"required_without=HotelID"`
	HotelID    string  `json:"hotel_id,omitempty"`
	SearchHash string  `json:"search_hash,omitempty"`
	CheckIn    string  `json:"checkin" validate:"required,datetime=2006-01-02"`
	CheckOut   string  `json:"checkout" validate:"required,datetime=2006-01-02"`
	Guests     []Guest `json:"guests" validate:"required,min=1,dive"`
	Currency   string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Language   string  `json:"language,omitempty"`
	Timeout    int     `json:"timeout,omitempty" validate:"omitempty,min=10,max=300"`
}

type HotelInfoParams struct {
	HID     int64  `json:"hid,omitempty" validate:"required_without=HotelID"`
	HotelID string `json:"hotel_id,omitempty" validate:"required_without=HID"`
}

type PrebookParams struct {
	BookHash             string  `json:"book_hash" validate:"required"`
	PriceIncreasePercent float64 `json:"price_increase_percent,omitempty" validate:"min=0,max=100"`
	Currency             string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

type PaymentInfo struct {
	Method            string `json:"method" validate:"required,oneof=external card offline"`
	Provider          string `json:"provider,omitempty"`
	ExternalPaymentID string `json:"external_payment_id,omitempty"`
}

type BookingParams struct {
	BookHash        string       `json:"book_hash" validate:"required"`
	GuestName       string       `json:"guest_name" validate:"required"`
	GuestEmail      string       `json:"guest_email" validate:"required,email"`
	GuestPhone      string       `json:"guest_phone,omitempty"`
	Guests          []Guest      `json:"guests,omitempty" validate:"omitempty,min=1,dive"`
	Nationality     string       `json:"nationality,omitempty" validate:"omitempty,len=2"`
	SpecialRequests string       `json:"special_requests,omitempty"`
	Payment         *PaymentInfo `json:"payment,omitempty"`
	ReturnPath      string       `json:"return_path,omitempty" validate:"omitempty,url"`
}

func newValidator() *validatorv10.Validate {
	return validatorv10.New(validatorv10.WithRequiredStructEnabled())
}

// validateParams runs the capability schema before any network call. Failures
// carry KindValidation and name the violated fields; the client is never
// invoked for them.
func validateParams(v *validatorv10.Validate, capability string, params any) error {
	err := v.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validatorv10.ValidationErrors
	if !errors.As(err, &verrs) {
		return newError(KindValidation, 0, "", capability+" params rejected", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace()+" ("+fe.Tag()+")")
	}
	return newError(KindValidation, 0, "",
		capability+" params rejected: "+strings.Join(fields, ", "), err)
}
