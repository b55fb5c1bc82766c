package api

import (
	"errors"
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/pkg/errs"
	"staybook/internal/supplier"
	"staybook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HotelsHandler struct {
	catalogUseCase usecase.HotelCatalogUseCase
}

func NewHotelsHandler(catalogUseCase usecase.HotelCatalogUseCase) *HotelsHandler {
	return &HotelsHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary Search hotels
// @Description Query availability for a set of hotels
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.SearchHotelsRequest true "Search request"
// @Success 200 {object} resdto.SearchHotelsResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /hotels/search [post]
func (h *HotelsHandler) Search(c *gin.Context) {
	var req reqdto.SearchHotelsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.catalogUseCase.Search(c.Request.Context(), req)
	if err != nil {
		abortWithSupplierError(c, err)
		return
	}

	resp, copyErr := resdto.FromSearchResult(result)
	if copyErr != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, copyErr, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Search hotels by region
// @Description Query availability across a supplier region
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.RegionSearchRequest true "Region search request"
// @Success 200 {object} resdto.RawPayload
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /hotels/search/region [post]
func (h *HotelsHandler) SearchRegion(c *gin.Context) {
	var req reqdto.RegionSearchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.catalogUseCase.SearchRegion(c.Request.Context(), req)
	if err != nil {
		abortWithSupplierError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RawPayload{Data: result})
}

// @Summary Search hotels by coordinates
// @Description Query availability around a point
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.GeoSearchRequest true "Geo search request"
// @Success 200 {object} resdto.RawPayload
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /hotels/search/geo [post]
func (h *HotelsHandler) SearchGeo(c *gin.Context) {
	var req reqdto.GeoSearchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.catalogUseCase.SearchGeo(c.Request.Context(), req)
	if err != nil {
		abortWithSupplierError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RawPayload{Data: result})
}

// @Summary Hotel page
// @Description Retrieve detailed room rates for one hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.HotelPageRequest true "Hotel page request"
// @Success 200 {object} resdto.HotelPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /hotels/page [post]
func (h *HotelsHandler) Page(c *gin.Context) {
	var req reqdto.HotelPageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	page, err := h.catalogUseCase.HotelPage(c.Request.Context(), req)
	if err != nil {
		abortWithSupplierError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelPage(page))
}

// @Summary Hotel static information
// @Description Retrieve static content for one hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.HotelInfoRequest true "Hotel info request"
// @Success 200 {object} resdto.RawPayload
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /hotels/info [post]
func (h *HotelsHandler) Info(c *gin.Context) {
	var req reqdto.HotelInfoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	info, err := h.catalogUseCase.HotelInfo(c.Request.Context(), req.HID, req.HotelID)
	if err != nil {
		abortWithSupplierError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RawPayload{Data: info})
}

// @Summary Hotel content catalog
// @Description Fetch static hotel content dump metadata
// @Tags hotels
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Failure 502 {object} httperr.Response
// @Router /hotels/catalog [get]
func (h *HotelsHandler) Catalog(c *gin.Context) {
	dump, err := h.catalogUseCase.StaticCatalog(c.Request.Context())
	if err != nil {
		abortWithSupplierError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCatalogDump(dump))
}

// @Summary Incremental content catalog
// @Description Fetch the incremental hotel content dump since a timestamp
// @Tags hotels
// @Produce json
// @Param since query string false "Lower bound timestamp"
// @Success 200 {object} resdto.IncrementalCatalogResponse
// @Failure 502 {object} httperr.Response
// @Router /hotels/catalog/incremental [get]
func (h *HotelsHandler) IncrementalCatalog(c *gin.Context) {
	dump, err := h.catalogUseCase.IncrementalCatalog(c.Request.Context(), c.Query("since"))
	if err != nil {
		abortWithSupplierError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIncrementalDump(dump))
}

func abortWithSupplierError(c *gin.Context, err error) {
	switch {
	case supplier.IsKind(err, supplier.KindValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search parameters", nil)
	case supplier.IsKind(err, supplier.KindRateLimited):
		httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Supplier rate limit reached", nil)
	case errors.Is(err, errs.ErrSupplierCallFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Supplier is unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
