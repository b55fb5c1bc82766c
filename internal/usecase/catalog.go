package usecase

import (
	"context"
	"encoding/json"

	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/pkg/errs"
	"staybook/internal/supplier"
)

// CatalogGateway is the read-only slice of supplier capabilities backing the
// hotel discovery endpoints.
type CatalogGateway interface {
	Search(ctx context.Context, params supplier.SearchParams) (*supplier.SearchResult, error)
	SearchRegion(ctx context.Context, params supplier.RegionSearchParams) (json.RawMessage, error)
	SearchGeo(ctx context.Context, params supplier.GeoSearchParams) (json.RawMessage, error)
	HotelPage(ctx context.Context, params supplier.HotelPageParams) (*supplier.HotelPage, error)
	HotelInfo(ctx context.Context, params supplier.HotelInfoParams) (json.RawMessage, error)
	StaticCatalog(ctx context.Context) (*supplier.CatalogDump, error)
	IncrementalCatalog(ctx context.Context, since string) (*supplier.IncrementalDump, error)
}

type HotelCatalogUseCase interface {
	Search(ctx context.Context, req reqdto.SearchHotelsRequest) (*supplier.SearchResult, error)
	SearchRegion(ctx context.Context, req reqdto.RegionSearchRequest) (json.RawMessage, error)
	SearchGeo(ctx context.Context, req reqdto.GeoSearchRequest) (json.RawMessage, error)
	HotelPage(ctx context.Context, req reqdto.HotelPageRequest) (*supplier.HotelPage, error)
	HotelInfo(ctx context.Context, hid int64, hotelID string) (json.RawMessage, error)
	StaticCatalog(ctx context.Context) (*supplier.CatalogDump, error)
	IncrementalCatalog(ctx context.Context, since string) (*supplier.IncrementalDump, error)
}

type hotelCatalogUseCaseImpl struct {
	gateway CatalogGateway
}

func NewHotelCatalogUseCase(gateway CatalogGateway) HotelCatalogUseCase {
	return &hotelCatalogUseCaseImpl{gateway: gateway}
}

func (h *hotelCatalogUseCaseImpl) Search(ctx context.Context, req reqdto.SearchHotelsRequest) (*supplier.SearchResult, error) {
	result, err := h.gateway.Search(ctx, req.ToParams())
	if err != nil {
		return nil, markSupplierErr(err)
	}
	return result, nil
}

func (h *hotelCatalogUseCaseImpl) SearchRegion(ctx context.Context, req reqdto.RegionSearchRequest) (json.RawMessage, error) {
	result, err := h.gateway.SearchRegion(ctx, req.ToParams())
	if err != nil {
		return nil, markSupplierErr(err)
	}
	return result, nil
}

func (h *hotelCatalogUseCaseImpl) SearchGeo(ctx context.Context, req reqdto.GeoSearchRequest) (json.RawMessage, error) {
	result, err := h.gateway.SearchGeo(ctx, req.ToParams())
	if err != nil {
		return nil, markSupplierErr(err)
	}
	return result, nil
}

func (h *hotelCatalogUseCaseImpl) HotelPage(ctx context.Context, req reqdto.HotelPageRequest) (*supplier.HotelPage, error) {
	page, err := h.gateway.HotelPage(ctx, req.ToParams())
	if err != nil {
		return nil, markSupplierErr(err)
	}
	return page, nil
}

func (h *hotelCatalogUseCaseImpl) HotelInfo(ctx context.Context, hid int64, hotelID string) (json.RawMessage, error) {
	info, err := h.gateway.HotelInfo(ctx, supplier.HotelInfoParams{HID: hid, HotelID: hotelID})
	if err != nil {
		return nil, markSupplierErr(err)
	}
	return info, nil
}

func (h *hotelCatalogUseCaseImpl) StaticCatalog(ctx context.Context) (*supplier.CatalogDump, error) {
	dump, err := h.gateway.StaticCatalog(ctx)
	if err != nil {
		return nil, markSupplierErr(err)
	}
	return dump, nil
}

func (h *hotelCatalogUseCaseImpl) IncrementalCatalog(ctx context.Context, since string) (*supplier.IncrementalDump, error) {
	dump, err := h.gateway.IncrementalCatalog(ctx, since)
	if err != nil {
		return nil, markSupplierErr(err)
	}
	return dump, nil
}

// markSupplierErr preserves validation failures untouched so handlers can map
// them to 400; everything else is tagged as a supplier call failure.
func markSupplierErr(err error) error {
	if supplier.IsKind(err, supplier.KindValidation) {
		return err
	}
	return errs.Mark(err, errs.ErrSupplierCallFailed)
}
