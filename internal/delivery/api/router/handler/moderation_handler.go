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

// ModerationHandlerParams holds dependencies for ModerationHandler, injected by Fx.
type ModerationHandlerParams struct {
	fx.In

	ModerationUsecase usecase.ModerationUsecase
	AuditUsecase      usecase.AuditUsecase
}

// ModerationHandler exposes the admin review queue.
type ModerationHandler struct {
	moderationUC usecase.ModerationUsecase
	auditUC      usecase.AuditUsecase
}

// NewModerationHandler creates a new ModerationHandler.
func NewModerationHandler(params ModerationHandlerParams) *ModerationHandler {
	return &ModerationHandler{
		moderationUC: params.ModerationUsecase,
		auditUC:      params.AuditUsecase,
	}
}

type ShopApprovalResponse struct {
	Proposal *ShopProposalResponse `json:"proposal"`
	Shop     *ShopResponse         `json:"shop"`
}

type AliasApprovalResponse struct {
	Proposal *AliasProposalResponse `json:"proposal"`
	Alias    *ProductAliasResponse  `json:"alias"`
}

// ListPendingShops handles GET /api/v1/admin/proposals/shops.
func (h *ModerationHandler) ListPendingShops(c echo.Context) error {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	proposals, err := h.moderationUC.ListPendingShops(c.Request().Context(), reviewerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopProposalResponses(proposals))
}

// ApproveShop handles POST /api/v1/admin/proposals/shops/:id/approve.
func (h *ModerationHandler) ApproveShop(c echo.Context) error {
	reviewerID, proposalID, err := reviewTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	approval, err := h.moderationUC.ApproveShop(c.Request().Context(), reviewerID, proposalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, &ShopApprovalResponse{
		Proposal: toShopProposalResponse(approval.Proposal),
		Shop:     toShopResponse(approval.Shop),
	}, "Shop proposal approved")
}

// RejectShop handles POST /api/v1/admin/proposals/shops/:id/reject.
func (h *ModerationHandler) RejectShop(c echo.Context) error {
	reviewerID, proposalID, err := reviewTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	proposal, err := h.moderationUC.RejectShop(c.Request().Context(), reviewerID, proposalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, toShopProposalResponse(proposal), "Shop proposal rejected")
}

// ListPendingAliases handles GET /api/v1/admin/proposals/product-aliases.
func (h *ModerationHandler) ListPendingAliases(c echo.Context) error {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	proposals, err := h.moderationUC.ListPendingAliases(c.Request().Context(), reviewerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAliasProposalResponses(proposals))
}

// ApproveAlias handles POST /api/v1/admin/proposals/product-aliases/:id/approve.
func (h *ModerationHandler) ApproveAlias(c echo.Context) error {
	reviewerID, proposalID, err := reviewTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	approval, err := h.moderationUC.ApproveAlias(c.Request().Context(), reviewerID, proposalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, &AliasApprovalResponse{
		Proposal: toAliasProposalResponse(approval.Proposal),
		Alias:    toProductAliasResponse(approval.Alias),
	}, "Alias proposal approved")
}

// RejectAlias handles POST /api/v1/admin/proposals/product-aliases/:id/reject.
func (h *ModerationHandler) RejectAlias(c echo.Context) error {
	reviewerID, proposalID, err := reviewTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	proposal, err := h.moderationUC.RejectAlias(c.Request().Context(), reviewerID, proposalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, toAliasProposalResponse(proposal), "Alias proposal rejected")
}

// ListAudit handles GET /api/v1/admin/proposals/:id/audit.
func (h *ModerationHandler) ListAudit(c echo.Context) error {
	reviewerID, proposalID, err := reviewTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	entries, err := h.auditUC.ListProposalHistory(c.Request().Context(), reviewerID, proposalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewAuditResponses(entries))
}

func reviewTarget(c echo.Context) (reviewerID, proposalID uuid.UUID, err error) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnauthenticated
	}

	proposalID, err = parseIDParam(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return reviewerID, proposalID, nil
}
