package handler

import (
	"net/http"

	"pricecheck/internal/delivery/api/middleware"
	"pricecheck/internal/delivery/api/response"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CreatePriceReportRequest names the shop by id or by the payload of its scanned QR code.
type CreatePriceReportRequest struct {
	ShopID         uuid.UUID `json:"shop_id" validate:"required_without=ShopQR"`
	ShopQR         string    `json:"shop_qr" validate:"required_without=ShopID"`
	ProductAliasID uuid.UUID `json:"product_alias_id" validate:"required"`
	PricePaid      float64   `json:"price_paid" validate:"gt=0"`
	Quantity       *int      `json:"quantity" validate:"omitempty,gt=0"`
}

// PriceReportHandlerParams holds dependencies for PriceReportHandler, injected by Fx.
type PriceReportHandlerParams struct {
	fx.In

	PriceReportUsecase usecase.PriceReportUsecase
}

// PriceReportHandler records and lists purchase prices.
type PriceReportHandler struct {
	priceReportUC usecase.PriceReportUsecase
}

// NewPriceReportHandler creates a new PriceReportHandler.
func NewPriceReportHandler(params PriceReportHandlerParams) *PriceReportHandler {
	return &PriceReportHandler{priceReportUC: params.PriceReportUsecase}
}

// Create handles POST /api/v1/price-reports. Quantity defaults to 1.
func (h *PriceReportHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req CreatePriceReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid price report input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreatePriceReportInput{
		ShopID:         req.ShopID,
		ShopQR:         req.ShopQR,
		ProductAliasID: req.ProductAliasID,
		PricePaid:      req.PricePaid,
		Quantity:       req.Quantity,
	}

	report, err := h.priceReportUC.Create(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, toPriceReportResponse(report), "Price report recorded")
}

// ListMine handles GET /api/v1/me/price-reports.
func (h *PriceReportHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	summaries, err := h.priceReportUC.ListMine(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPriceReportSummaryResponses(summaries))
}

// Browse handles GET /api/v1/price-reports with optional product_id, shop_id and limit.
func (h *PriceReportHandler) Browse(c echo.Context) error {
	productID, err := parseOptionalUUIDQuery(c, "product_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	shopID, err := parseOptionalUUIDQuery(c, "shop_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	limit, err := parseOptionalIntQuery(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summaries, err := h.priceReportUC.Browse(c.Request().Context(), &usecase.BrowsePriceReportsInput{
		ProductID: productID,
		ShopID:    shopID,
		Limit:     limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPriceReportSummaryResponses(summaries))
}
