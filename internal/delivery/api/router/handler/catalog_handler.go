package handler

import (
	"math"
	"net/http"
	"strconv"

	"pricecheck/internal/delivery/api/response"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/errors"
	"pricecheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUsecase usecase.CatalogUsecase
}

// CatalogHandler serves the canonical shops, products and aliases.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUsecase}
}

// ListShops handles GET /api/v1/shops. With lat and lon the result is limited
// to shops within radius_km and sorted by distance.
func (h *CatalogHandler) ListShops(c echo.Context) error {
	near, err := parseNearbyQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shops, err := h.catalogUC.ListShops(c.Request().Context(), near)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNearbyShopResponses(shops, near != nil))
}

// GetShop handles GET /api/v1/shops/:id.
func (h *CatalogHandler) GetShop(c echo.Context) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.catalogUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop))
}

// GetShopQRCode handles GET /api/v1/shops/:id/qr and returns a PNG image.
func (h *CatalogHandler) GetShopQRCode(c echo.Context) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.catalogUC.GetShopQRCode(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListProducts handles GET /api/v1/products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

// ListProductAliases handles GET /api/v1/product-aliases.
func (h *CatalogHandler) ListProductAliases(c echo.Context) error {
	aliases, err := h.catalogUC.ListProductAliases(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductAliasResponses(aliases))
}

// parseNearbyQuery returns nil when neither lat nor lon is given. Supplying only one is an error.
func parseNearbyQuery(c echo.Context) (*usecase.NearbyQuery, error) {
	rawLat, rawLon, rawRadius := c.QueryParam("lat"), c.QueryParam("lon"), c.QueryParam("radius_km")
	if rawLat == "" && rawLon == "" {
		if rawRadius != "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("radius_km: requires lat and lon")
		}

		return nil, nil
	}
	if rawLat == "" || rawLon == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat, lon: both are required for a nearby search")
	}

	lat, err := parseFinite(rawLat)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat: must be a number")
	}
	lon, err := parseFinite(rawLon)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lon: must be a number")
	}

	var radius float64
	if rawRadius != "" {
		if radius, err = parseFinite(rawRadius); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("radius_km: must be a number")
		}
	}

	return &usecase.NearbyQuery{Latitude: lat, Longitude: lon, RadiusKm: radius}, nil
}

// parseFinite rejects the NaN and Inf spellings strconv.ParseFloat accepts.
func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("%q is not a finite number", raw)
	}

	return v, nil
}
