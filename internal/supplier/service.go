package supplier

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"staybook/internal/infra/cache"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Endpoint paths, one per supplier capability.
const (
	pathSearchHotels    = "/api/b2b/v3/search/serp/hotels/"
	pathSearchRegion    = "/api/b2b/v3/search/serp/region/"
	pathSearchGeo       = "/api/b2b/v3/search/serp/geo/"
	pathHotelPage       = "/api/b2b/v3/search/hp/"
	pathHotelInfo       = "/api/b2b/v3/hotel/info/"
	pathPrebook         = "/api/b2b/v3/hotel/prebook"
	pathBookingForm     = "/api/b2b/v3/hotel/order/booking/form/"
	pathBookingFinish   = "/api/b2b/v3/hotel/order/booking/finish/"
	pathFinishStatus    = "/api/b2b/v3/hotel/order/booking/finish/status/"
	pathCatalogDump     = "/api/b2b/v3/hotel/info/dump/"
	pathIncrementalDump = "/api/b2b/v3/hotel/info/incremental_dump/"
)

const catalogDumpCacheKey = "supplier:hotel_dump_meta:v1"

// Service composes validation, the transport client and the tiered cache into
// one operation per supplier capability. Every operation validates its params
// first, so the client is never reached with a malformed request, and decodes
// the `data` envelope, treating a successful call without one as an
// INVALID_RESPONSE failure rather than a null result.
type Service struct {
	client     *Client
	cache      *cache.Tiered
	validate   *validatorv10.Validate
	catalogTTL time.Duration
	logger     *slog.Logger
}

func NewService(client *Client, tiered *cache.Tiered, cfg config.CacheConfig, logger *slog.Logger) *Service {
	catalogTTL := cfg.CatalogTTL
	if catalogTTL <= 0 {
		catalogTTL = 6 * time.Hour
	}
	return &Service{
		client:     client,
		cache:      tiered,
		validate:   newValidator(),
		catalogTTL: catalogTTL,
		logger:     logger,
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func decodeEnvelope(raw json.RawMessage) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, newError(KindInvalidResponse, 0, string(raw), "supplier payload is not an envelope", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, newError(KindInvalidResponse, 0, string(raw), "supplier payload is missing the data envelope", nil)
	}
	return env.Data, nil
}

// Search queries availability for a set of hotels.
func (s *Service) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	if err := validateParams(s.validate, "search", &params); err != nil {
		return nil, err
	}
	if params.Currency == "" {
		params.Currency = defaultCurrency
	}
	if params.Language == "" {
		params.Language = defaultLanguage
	}
	if params.Timeout == 0 {
		params.Timeout = defaultSearchTimeout
	}

	body := map[string]any{
		"checkin":  params.CheckIn,
		"checkout": params.CheckOut,
		"guests":   params.Guests,
		"currency": params.Currency,
		"language": params.Language,
		"timeout":  params.Timeout,
	}
	if params.Residency != "" {
		body["residency"] = params.Residency
	}
	if len(params.HIDs) > 0 {
		body["hids"] = params.HIDs
	}

	data, rl, err := s.client.Call(ctx, http.MethodPost, pathSearchHotels, body, &CallOptions{
		Timeout: time.Duration(params.Timeout) * time.Second,
	})
	if err != nil {
		return nil, errs.Wrap(err, "search failed")
	}
	s.logRateLimit("search", rl)

	var raw struct {
		Hotels []struct {
			HID   int64  `json:"hid"`
			Name  string `json:"name"`
			Stars int    `json:"stars"`
			Price struct {
				ShowAmount float64 `json:"show_amount"`
				Total      float64 `json:"total"`
				Currency   string  `json:"currency"`
			} `json:"price"`
		} `json:"hotels"`
		SearchHash string `json:"search_hash"`
	}
	if err := s.decodeData(data, &raw, "search"); err != nil {
		return nil, err
	}

	result := &SearchResult{SearchHash: raw.SearchHash, Hotels: make([]SerpHotel, len(raw.Hotels))}
	for i, h := range raw.Hotels {
		price := h.Price.ShowAmount
		if price == 0 {
			price = h.Price.Total
		}
		result.Hotels[i] = SerpHotel{
			HID:      h.HID,
			Name:     h.Name,
			Stars:    h.Stars,
			Price:    price,
			Currency: h.Price.Currency,
		}
	}
	return result, nil
}

// SearchRegion and SearchGeo return the raw result set for their search
// shapes; callers needing typed rows go through Search.
func (s *Service) SearchRegion(ctx context.Context, params RegionSearchParams) (json.RawMessage, error) {
	if err := validateParams(s.validate, "search_region", &params); err != nil {
		return nil, err
	}
	if params.Currency == "" {
		params.Currency = defaultCurrency
	}
	if params.Language == "" {
		params.Language = defaultLanguage
	}
	data, rl, err := s.client.Call(ctx, http.MethodPost, pathSearchRegion, params, &CallOptions{
		Timeout: defaultSearchTimeout * time.Second,
	})
	if err != nil {
		return nil, errs.Wrap(err, "region search failed")
	}
	s.logRateLimit("search_region", rl)
	return decodeEnvelope(data)
}

func (s *Service) SearchGeo(ctx context.Context, params GeoSearchParams) (json.RawMessage, error) {
	if err := validateParams(s.validate, "search_geo", &params); err != nil {
		return nil, err
	}
	if params.Currency == "" {
		params.Currency = defaultCurrency
	}
	data, rl, err := s.client.Call(ctx, http.MethodPost, pathSearchGeo, params, &CallOptions{
		Timeout: defaultSearchTimeout * time.Second,
	})
	if err != nil {
		return nil, errs.Wrap(err, "geo search failed")
	}
	s.logRateLimit("search_geo", rl)
	return decodeEnvelope(data)
}

// HotelPage retrieves the detailed room rates for one hotel. The returned
// rates carry the book hashes used to prebook.
func (s *Service) HotelPage(ctx context.Context, params HotelPageParams) (*HotelPage, error) {
	if err := validateParams(s.validate, "hotel_page", &params); err != nil {
		return nil, err
	}
	if params.Currency == "" {
		params.Currency = defaultCurrency
	}
	if params.Language == "" {
		params.Language = defaultLanguage
	}
	if params.Timeout == 0 {
		params.Timeout = defaultPageTimeout
	}

	body := map[string]any{
		"checkin":  params.CheckIn,
		"checkout": params.CheckOut,
		"guests":   params.Guests,
		"currency": params.Currency,
		"lang":     params.Language,
		"timeout":  params.Timeout,
	}
	if params.HID != 0 {
		body["hids"] = []int64{params.HID}
	}
	if params.HotelID != "" {
		body["hotel_id"] = params.HotelID
	}
	if params.SearchHash != "" {
		body["search_hash"] = params.SearchHash
	}

	data, rl, err := s.client.Call(ctx, http.MethodPost, pathHotelPage, body, &CallOptions{
		Timeout: time.Duration(params.Timeout) * time.Second,
	})
	if err != nil {
		return nil, errs.Wrap(err, "hotel page failed")
	}
	s.logRateLimit("hotel_page", rl)

	inner, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}
	page := &HotelPage{Raw: inner}
	// rates may be nested under a single-hotel wrapper depending on the
	// request shape; both layouts are decoded.
	var direct struct {
		Rates  []Rate `json:"rates"`
		Hotels []struct {
			Rates []Rate `json:"rates"`
		} `json:"hotels"`
	}
	if err := json.Unmarshal(inner, &direct); err != nil {
		return nil, newError(KindInvalidResponse, 0, string(inner), "hotel page payload is malformed", err)
	}
	page.Rates = direct.Rates
	if len(page.Rates) == 0 && len(direct.Hotels) > 0 {
		page.Rates = direct.Hotels[0].Rates
	}
	return page, nil
}

// HotelInfo returns static descriptive content for one hotel.
func (s *Service) HotelInfo(ctx context.Context, params HotelInfoParams) (json.RawMessage, error) {
	if err := validateParams(s.validate, "hotel_info", &params); err != nil {
		return nil, err
	}
	body := map[string]any{}
	if params.HID != 0 {
		body["hids"] = []int64{params.HID}
	}
	if params.HotelID != "" {
		body["hotel_id"] = params.HotelID
	}
	data, rl, err := s.client.Call(ctx, http.MethodPost, pathHotelInfo, body, &CallOptions{
		Timeout: defaultSearchTimeout * time.Second,
	})
	if err != nil {
		return nil, errs.Wrap(err, "hotel info failed")
	}
	s.logRateLimit("hotel_info", rl)
	return decodeEnvelope(data)
}

// Prebook re-quotes a rate immediately before payment. Never cached: the
// price can change between calls.
func (s *Service) Prebook(ctx context.Context, params PrebookParams) (*RateQuote, error) {
	if err := validateParams(s.validate, "prebook", &params); err != nil {
		return nil, err
	}
	if params.Currency == "" {
		params.Currency = defaultCurrency
	}

	body := map[string]any{
		"book_hash":              params.BookHash,
		"price_increase_percent": params.PriceIncreasePercent,
		"currency":               params.Currency,
	}
	data, rl, err := s.client.Call(ctx, http.MethodPost, pathPrebook, body, nil)
	if err != nil {
		return nil, errs.Wrap(err, "prebook failed")
	}
	s.logRateLimit("prebook", rl)

	var quote RateQuote
	if err := s.decodeData(data, &quote, "prebook"); err != nil {
		return nil, err
	}
	if quote.BookHash == "" {
		quote.BookHash = params.BookHash
	}
	return &quote, nil
}

type bookingPhasePayload struct {
	ProcessID string `json:"process_id"`
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
}

// StartBooking drives the supplier's two-phase booking protocol. The form
// call creates the booking process; when its payload already carries both an
// order identifier and a status, that is the final result. Otherwise a finish
// call with whatever identifiers the form returned is authoritative. A finish
// call that yields no usable payload still returns the form-phase result with
// Finalized=false, so callers poll instead of failing a booking the supplier
// may have accepted.
func (s *Service) StartBooking(ctx context.Context, params BookingParams) (*BookingOutcome, error) {
	if err := validateParams(s.validate, "start_booking", &params); err != nil {
		return nil, err
	}

	formBody := map[string]any{
		"book_hash": params.BookHash,
		"guest": map[string]any{
			"name":  params.GuestName,
			"email": params.GuestEmail,
			"phone": params.GuestPhone,
		},
	}
	if len(params.Guests) > 0 {
		formBody["guests"] = params.Guests
	}
	if params.Nationality != "" {
		formBody["nationality"] = params.Nationality
	}
	if params.SpecialRequests != "" {
		formBody["notes"] = params.SpecialRequests
	}
	if params.Payment != nil {
		formBody["payment"] = params.Payment
	}
	if params.ReturnPath != "" {
		formBody["return_path"] = params.ReturnPath
	}

	data, rl, err := s.client.Call(ctx, http.MethodPost, pathBookingForm, formBody, nil)
	if err != nil {
		return nil, errs.Wrap(err, "booking form failed")
	}
	s.logRateLimit("booking_form", rl)

	var form bookingPhasePayload
	if err := s.decodeData(data, &form, "booking form"); err != nil {
		return nil, err
	}

	if form.OrderID != "" && form.Status != "" {
		return outcomeFromPhase(form), nil
	}

	finishBody := map[string]any{}
	if form.ProcessID != "" {
		finishBody["process_id"] = form.ProcessID
	}
	if form.OrderID != "" {
		finishBody["order_id"] = form.OrderID
	}

	finishData, finishRL, err := s.client.Call(ctx, http.MethodPost, pathBookingFinish, finishBody, nil)
	if err != nil {
		s.logger.Warn("booking finish call failed, returning form-phase result",
			"process_id", form.ProcessID, "error", err)
		return outcomeFromPhase(form), nil
	}
	s.logRateLimit("booking_finish", finishRL)

	var finish bookingPhasePayload
	if err := s.decodeData(finishData, &finish, "booking finish"); err != nil {
		s.logger.Warn("booking finish payload unusable, returning form-phase result",
			"process_id", form.ProcessID, "error", err)
		return outcomeFromPhase(form), nil
	}
	if finish.ProcessID == "" {
		finish.ProcessID = form.ProcessID
	}
	return outcomeFromPhase(finish), nil
}

func outcomeFromPhase(p bookingPhasePayload) *BookingOutcome {
	status := OrderStatus(p.Status)
	return &BookingOutcome{
		Finalized: status.Terminal(),
		ProcessID: p.ProcessID,
		OrderID:   p.OrderID,
		Status:    status,
	}
}

// PollFinish is an idempotent status check for an in-flight booking; it has
// no side effects on the supplier side and is safe to call repeatedly.
func (s *Service) PollFinish(ctx context.Context, processOrOrderID string) (*FinishStatus, error) {
	if processOrOrderID == "" {
		return nil, newError(KindValidation, 0, "", "poll finish requires a process or order id", nil)
	}
	body := map[string]any{
		"process_id": processOrOrderID,
		"order_id":   processOrOrderID,
	}
	data, rl, err := s.client.Call(ctx, http.MethodPost, pathFinishStatus, body, &CallOptions{
		Timeout: defaultSearchTimeout * time.Second,
	})
	if err != nil {
		return nil, errs.Wrap(err, "finish status failed")
	}
	s.logRateLimit("finish_status", rl)

	var fs FinishStatus
	if err := s.decodeData(data, &fs, "finish status"); err != nil {
		return nil, err
	}
	return &fs, nil
}

// StaticCatalog fetches the hotel content dump metadata. The dump regenerates
// a few times a day, so this is the one capability cached with the long TTL
// override; a cache miss always falls through to the real fetch.
func (s *Service) StaticCatalog(ctx context.Context) (*CatalogDump, error) {
	if cached, ok := s.cache.Get(ctx, catalogDumpCacheKey); ok {
		var dump CatalogDump
		if err := json.Unmarshal(cached, &dump); err == nil {
			return &dump, nil
		}
		s.logger.Warn("discarding undecodable catalog cache entry", "key", catalogDumpCacheKey)
	}

	data, rl, err := s.client.Call(ctx, http.MethodGet, pathCatalogDump, nil, &CallOptions{
		Timeout: 120 * time.Second,
	})
	if err != nil {
		return nil, errs.Wrap(err, "catalog dump failed")
	}
	s.logRateLimit("catalog_dump", rl)

	var raw struct {
		GeneratedAt string `json:"generated_at"`
		FileURL     string `json:"file_url"`
		URL         string `json:"url"`
	}
	if err := s.decodeData(data, &raw, "catalog dump"); err != nil {
		return nil, err
	}

	dump := &CatalogDump{GeneratedAt: raw.GeneratedAt, FileURL: raw.FileURL}
	if dump.FileURL == "" {
		dump.FileURL = raw.URL
	}

	if encoded, err := json.Marshal(dump); err == nil {
		s.cache.Set(ctx, catalogDumpCacheKey, encoded, s.catalogTTL)
	}
	return dump, nil
}

// IncrementalCatalog fetches dump deltas since the given timestamp.
func (s *Service) IncrementalCatalog(ctx context.Context, since string) (*IncrementalDump, error) {
	body := map[string]any{}
	if since != "" {
		body["since"] = since
	}
	data, rl, err := s.client.Call(ctx, http.MethodPost, pathIncrementalDump, body, &CallOptions{
		Timeout: 120 * time.Second,
	})
	if err != nil {
		return nil, errs.Wrap(err, "incremental dump failed")
	}
	s.logRateLimit("incremental_dump", rl)

	var dump IncrementalDump
	if err := s.decodeData(data, &dump, "incremental dump"); err != nil {
		return nil, err
	}
	return &dump, nil
}

// decodeData unwraps the envelope and decodes it into out; any failure is an
// INVALID_RESPONSE carrying the raw text.
func (s *Service) decodeData(raw json.RawMessage, out any, capability string) error {
	inner, err := decodeEnvelope(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(inner, out); err != nil {
		return newError(KindInvalidResponse, 0, string(inner), capability+" payload is malformed", err)
	}
	return nil
}

func (s *Service) logRateLimit(capability string, rl RateLimitSnapshot) {
	if rl.Limit == 0 && rl.Remaining == 0 {
		return
	}
	s.logger.Debug("supplier rate limit",
		"capability", capability,
		"limit", rl.Limit,
		"remaining", rl.Remaining,
		"reset_seconds", rl.ResetSeconds,
	)
}
