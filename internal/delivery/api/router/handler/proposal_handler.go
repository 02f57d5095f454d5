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

type ProposeShopRequest struct {
	Name      string   `json:"name" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

type ProposeProductAliasRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	AliasName string    `json:"alias_name" validate:"required"`
}

// ProposalHandlerParams holds dependencies for ProposalHandler, injected by Fx.
type ProposalHandlerParams struct {
	fx.In

	ProposalUsecase usecase.ProposalUsecase
}

// ProposalHandler accepts user-submitted shop and alias proposals.
type ProposalHandler struct {
	proposalUC usecase.ProposalUsecase
}

// NewProposalHandler creates a new ProposalHandler.
func NewProposalHandler(params ProposalHandlerParams) *ProposalHandler {
	return &ProposalHandler{proposalUC: params.ProposalUsecase}
}

// ProposeShop handles POST /api/v1/proposals/shops.
func (h *ProposalHandler) ProposeShop(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req ProposeShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid shop proposal input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	proposal, err := h.proposalUC.ProposeShop(c.Request().Context(), userID, &usecase.ProposeShopInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, toShopProposalResponse(proposal), "Shop proposal submitted for review")
}

// ProposeProductAlias handles POST /api/v1/proposals/product-aliases.
func (h *ProposalHandler) ProposeProductAlias(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req ProposeProductAliasRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid alias proposal input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	proposal, err := h.proposalUC.ProposeProductAlias(c.Request().Context(), userID, &usecase.ProposeProductAliasInput{
		ProductID: req.ProductID,
		AliasName: req.AliasName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, toAliasProposalResponse(proposal), "Alias proposal submitted for review")
}
