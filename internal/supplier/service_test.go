//go:build unit

package supplier_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"staybook/internal/infra/cache"
	"staybook/internal/pkg/config"
	"staybook/internal/supplier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite
	mux     *http.ServeMux
	srv     *httptest.Server
	service *supplier.Service
	calls   atomic.Int32
}

func (s *ServiceTestSuite) SetupTest() {
	s.calls.Store(0)
	s.mux = http.NewServeMux()
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		s.mux.ServeHTTP(w, r)
	}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := supplier.NewClient(testClientConfig(s.srv.URL), logger)
	s.Require().NoError(err)

	tiered := cache.NewTiered(logger, time.Minute, cache.NewMemoryTier())
	s.service = supplier.NewService(client, tiered, config.CacheConfig{
		DefaultTTL: time.Minute,
		CatalogTTL: 6 * time.Hour,
	}, logger)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.srv.Close()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) respond(path, body string) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func searchParams() supplier.SearchParams {
	return supplier.SearchParams{
		CheckIn:  "2026-09-12",
		CheckOut: "2026-09-14",
		HIDs:     []int64{123},
		Guests:   []supplier.Guest{{Adults: 2}},
	}
}

func (s *ServiceTestSuite) TestSearchMapsHotels() {
	s.respond("/api/b2b/v3/search/serp/hotels/", `{
		"data": {
			"hotels": [
				{"hid": 123, "name": "Hotel Minsk", "stars": 4, "price": {"show_amount": 240, "currency": "BYN"}},
				{"hid": 456, "name": "Hotel Vitebsk", "price": {"total": 180, "currency": "BYN"}}
			],
			"search_hash": "sh-1"
		}
	}`)

	result, err := s.service.Search(context.Background(), searchParams())
	s.Require().NoError(err)
	s.Equal("sh-1", result.SearchHash)
	s.Require().Len(result.Hotels, 2)
	s.Equal("Hotel Minsk", result.Hotels[0].Name)
	s.Equal(240.0, result.Hotels[0].Price)
	// show_amount absent: total is the fallback.
	s.Equal(180.0, result.Hotels[1].Price)
}

func (s *ServiceTestSuite) TestSearchMissingEnvelope() {
	s.respond("/api/b2b/v3/search/serp/hotels/", `{"status":"ok"}`)

	_, err := s.service.Search(context.Background(), searchParams())
	s.Require().Error(err)
	s.True(supplier.IsKind(err, supplier.KindInvalidResponse))
}

func (s *ServiceTestSuite) TestSearchValidationNeverReachesWire() {
	params := searchParams()
	params.CheckIn = "not-a-date"

	_, err := s.service.Search(context.Background(), params)
	s.Require().Error(err)
	s.True(supplier.IsKind(err, supplier.KindValidation))
	s.Equal(int32(0), s.calls.Load())
}

func (s *ServiceTestSuite) TestHotelPageNestedRates() {
	s.respond("/api/b2b/v3/search/hp/", `{
		"data": {
			"hotels": [
				{"rates": [{"book_hash": "h-abc123", "room_name": "Standard Double"}]}
			]
		}
	}`)

	page, err := s.service.HotelPage(context.Background(), supplier.HotelPageParams{
		HID:      123,
		CheckIn:  "2026-09-12",
		CheckOut: "2026-09-14",
		Guests:   []supplier.Guest{{Adults: 2}},
	})
	s.Require().NoError(err)
	s.Require().Len(page.Rates, 1)
	s.Equal("h-abc123", page.Rates[0].BookHash)
	s.Equal("Standard Double", page.Rates[0].RoomName)
}

func (s *ServiceTestSuite) TestPrebook() {
	s.respond("/api/b2b/v3/hotel/prebook", `{
		"data": {
			"price": 240,
			"currency": "BYN",
			"daily": [{"date": "2026-09-12", "price": 120}, {"date": "2026-09-13", "price": 120}]
		}
	}`)

	quote, err := s.service.Prebook(context.Background(), supplier.PrebookParams{BookHash: "h-abc123"})
	s.Require().NoError(err)
	s.Equal(240.0, quote.Price)
	s.Equal("BYN", quote.Currency)
	// Response omitted the hash; the requested one is kept.
	s.Equal("h-abc123", quote.BookHash)
	s.Len(quote.Daily, 2)
}

func bookingParams() supplier.BookingParams {
	return supplier.BookingParams{
		BookHash:   "h-abc123",
		GuestName:  "Ivan Petrov",
		GuestEmail: "ivan.petrov@example.com",
	}
}

func (s *ServiceTestSuite) TestStartBookingTerminalFormSkipsFinish() {
	s.respond("/api/b2b/v3/hotel/order/booking/form/",
		`{"data": {"order_id": "ord-1", "status": "ok"}}`)

	outcome, err := s.service.StartBooking(context.Background(), bookingParams())
	s.Require().NoError(err)
	s.True(outcome.Finalized)
	s.Equal("ord-1", outcome.OrderID)
	s.True(outcome.Status.Succeeded())
	s.Equal(int32(1), s.calls.Load())
}

func (s *ServiceTestSuite) TestStartBookingFinishCompletesOpenForm() {
	s.respond("/api/b2b/v3/hotel/order/booking/form/",
		`{"data": {"process_id": "proc-1"}}`)
	s.respond("/api/b2b/v3/hotel/order/booking/finish/",
		`{"data": {"order_id": "ord-2", "status": "confirmed"}}`)

	outcome, err := s.service.StartBooking(context.Background(), bookingParams())
	s.Require().NoError(err)
	s.True(outcome.Finalized)
	s.Equal("proc-1", outcome.ProcessID)
	s.Equal("ord-2", outcome.OrderID)
	s.Equal(int32(2), s.calls.Load())
}

func (s *ServiceTestSuite) TestStartBookingUnusableFinishFallsBack() {
	s.respond("/api/b2b/v3/hotel/order/booking/form/",
		`{"data": {"process_id": "proc-1"}}`)
	s.respond("/api/b2b/v3/hotel/order/booking/finish/",
		`{"status": "accepted"}`)

	outcome, err := s.service.StartBooking(context.Background(), bookingParams())
	s.Require().NoError(err)
	s.False(outcome.Finalized)
	s.Equal("proc-1", outcome.ProcessID)
	s.Empty(outcome.OrderID)
}

func (s *ServiceTestSuite) TestStartBookingValidationNeverReachesWire() {
	params := bookingParams()
	params.GuestEmail = "not-an-email"

	_, err := s.service.StartBooking(context.Background(), params)
	s.Require().Error(err)
	s.True(supplier.IsKind(err, supplier.KindValidation))
	s.Equal(int32(0), s.calls.Load())
}

func (s *ServiceTestSuite) TestPollFinish() {
	s.respond("/api/b2b/v3/hotel/order/booking/finish/status/",
		`{"data": {"order_id": "ord-1", "status": "completed"}}`)

	status, err := s.service.PollFinish(context.Background(), "proc-1")
	s.Require().NoError(err)
	s.Equal("ord-1", status.OrderID)
	s.True(status.Status.Terminal())
	s.True(status.Status.Succeeded())
}

func (s *ServiceTestSuite) TestStaticCatalogIsCached() {
	s.respond("/api/b2b/v3/hotel/info/dump/",
		`{"data": {"generated_at": "2026-08-28T04:00:00Z", "url": "https://cdn.example.com/dump.zst"}}`)

	first, err := s.service.StaticCatalog(context.Background())
	s.Require().NoError(err)
	s.Equal("https://cdn.example.com/dump.zst", first.FileURL)

	second, err := s.service.StaticCatalog(context.Background())
	s.Require().NoError(err)
	s.Equal(first.FileURL, second.FileURL)
	// Second read comes from the cache.
	s.Equal(int32(1), s.calls.Load())
}

func TestOrderStatus(t *testing.T) {
	assert.True(t, supplier.OrderStatus("OK").Succeeded())
	assert.True(t, supplier.OrderStatus("rejected").Failed())
	assert.False(t, supplier.OrderStatus("processing").Terminal())
	assert.False(t, supplier.OrderStatus("").Terminal())
}

func TestPollFinishRequiresReference(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := supplier.NewClient(testClientConfig("http://localhost:1"), logger)
	require.NoError(t, err)
	service := supplier.NewService(client, cache.NewTiered(logger, time.Minute, cache.NewMemoryTier()), config.CacheConfig{}, logger)

	_, err = service.PollFinish(context.Background(), "")
	require.Error(t, err)
	assert.True(t, supplier.IsKind(err, supplier.KindValidation))
}
