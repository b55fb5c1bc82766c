package response

import (
	"encoding/json"

	"staybook/internal/supplier"

	"github.com/jinzhu/copier"
)

type HotelSummary struct {
	HID      int64   `json:"hid"`
	Name     string  `json:"name"`
	Stars    int     `json:"stars,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

type SearchHotelsResponse struct {
	Hotels     []HotelSummary `json:"hotels"`
	SearchHash string         `json:"searchHash,omitempty"`
}

func FromSearchResult(result *supplier.SearchResult) (*SearchHotelsResponse, error) {
	var resp SearchHotelsResponse
	if err := copier.Copy(&resp, result); err != nil {
		return nil, err
	}
	if resp.Hotels == nil {
		resp.Hotels = []HotelSummary{}
	}
	return &resp, nil
}

type HotelPageResponse struct {
	Rates []supplier.Rate `json:"rates"`
}

func FromHotelPage(page *supplier.HotelPage) *HotelPageResponse {
	rates := page.Rates
	if rates == nil {
		rates = []supplier.Rate{}
	}
	return &HotelPageResponse{Rates: rates}
}

type CatalogResponse struct {
	GeneratedAt string `json:"generatedAt"`
	FileURL     string `json:"fileUrl"`
}

func FromCatalogDump(dump *supplier.CatalogDump) *CatalogResponse {
	return &CatalogResponse{GeneratedAt: dump.GeneratedAt, FileURL: dump.FileURL}
}

type IncrementalCatalogResponse struct {
	GeneratedAt string `json:"generatedAt,omitempty"`
	FileURL     string `json:"fileUrl,omitempty"`
	Since       string `json:"since,omitempty"`
}

func FromIncrementalDump(dump *supplier.IncrementalDump) *IncrementalCatalogResponse {
	return &IncrementalCatalogResponse{
		GeneratedAt: dump.GeneratedAt,
		FileURL:     dump.FileURL,
		Since:       dump.Since,
	}
}

// RawPayload wraps an opaque supplier payload for endpoints that pass the
// result set through unmodified.
type RawPayload struct {
	Data json.RawMessage `json:"data"`
}
