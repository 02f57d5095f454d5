package handler

import (
	"time"

	"pricecheck/internal/domain/entity"
	"pricecheck/internal/domain/scoring"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account. The password hash never leaves the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		UserType:  user.UserType.String(),
		IsAdmin:   user.IsAdmin(),
		CreatedAt: user.CreatedAt,
	}
}

// SessionResponse is returned by a successful login.
type SessionResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

type ShopResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DistanceKm *float64  `json:"distance_km,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toShopResponse(shop *entity.Shop) *ShopResponse {
	return &ShopResponse{
		ID:        shop.ID,
		Name:      shop.Name,
		Address:   shop.Address,
		Latitude:  shop.Latitude,
		Longitude: shop.Longitude,
		CreatedAt: shop.CreatedAt,
	}
}

func toNearbyShopResponses(shops []*entity.NearbyShop, withDistance bool) []*ShopResponse {
	out := make([]*ShopResponse, 0, len(shops))
	for _, shop := range shops {
		resp := toShopResponse(shop.Shop)
		if withDistance {
			distance := shop.DistanceKm
			resp.DistanceKm = &distance
		}
		out = append(out, resp)
	}

	return out
}

type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	CanonicalName string    `json:"canonical_name"`
	Category      string    `json:"category"`
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, &ProductResponse{
			ID:            product.ID,
			CanonicalName: product.CanonicalName,
			Category:      product.Category.String(),
		})
	}

	return out
}

type ProductAliasResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	AliasName     string    `json:"alias_name"`
	CanonicalName string    `json:"canonical_name,omitempty"`
	Category      string    `json:"category,omitempty"`
}

func toProductAliasResponse(alias *entity.ProductAlias) *ProductAliasResponse {
	return &ProductAliasResponse{
		ID:            alias.ID,
		ProductID:     alias.ProductID,
		AliasName:     alias.AliasName,
		CanonicalName: alias.CanonicalName,
		Category:      alias.Category.String(),
	}
}

func toProductAliasResponses(aliases []*entity.ProductAlias) []*ProductAliasResponse {
	out := make([]*ProductAliasResponse, 0, len(aliases))
	for _, alias := range aliases {
		out = append(out, toProductAliasResponse(alias))
	}

	return out
}

// ReviewResponse is embedded in every proposal view.
type ReviewResponse struct {
	Status     string     `json:"status"`
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

func toReviewResponse(review entity.Review) ReviewResponse {
	return ReviewResponse{
		Status:     review.Status.String(),
		ReviewedBy: review.ReviewedBy,
		ReviewedAt: review.ReviewedAt,
	}
}

type ShopProposalResponse struct {
	ID              uuid.UUID `json:"id"`
	ProposedName    string    `json:"proposed_name"`
	ProposedAddress string    `json:"proposed_address"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	ProposedBy      uuid.UUID `json:"proposed_by"`
	ReviewResponse
	CreatedAt time.Time `json:"created_at"`
}

func toShopProposalResponse(proposal *entity.ShopProposal) *ShopProposalResponse {
	return &ShopProposalResponse{
		ID:              proposal.ID,
		ProposedName:    proposal.ProposedName,
		ProposedAddress: proposal.ProposedAddress,
		Latitude:        proposal.Latitude,
		Longitude:       proposal.Longitude,
		ProposedBy:      proposal.ProposedBy,
		ReviewResponse:  toReviewResponse(proposal.Review),
		CreatedAt:       proposal.CreatedAt,
	}
}

func toShopProposalResponses(proposals []*entity.ShopProposal) []*ShopProposalResponse {
	out := make([]*ShopProposalResponse, 0, len(proposals))
	for _, proposal := range proposals {
		out = append(out, toShopProposalResponse(proposal))
	}

	return out
}

type AliasProposalResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	CanonicalName string    `json:"canonical_name,omitempty"`
	ProposedAlias string    `json:"proposed_alias"`
	ProposedBy    uuid.UUID `json:"proposed_by"`
	ReviewResponse
	CreatedAt time.Time `json:"created_at"`
}

func toAliasProposalResponse(proposal *entity.ProductAliasProposal) *AliasProposalResponse {
	return &AliasProposalResponse{
		ID:             proposal.ID,
		ProductID:      proposal.ProductID,
		CanonicalName:  proposal.CanonicalName,
		ProposedAlias:  proposal.ProposedAlias,
		ProposedBy:     proposal.ProposedBy,
		ReviewResponse: toReviewResponse(proposal.Review),
		CreatedAt:      proposal.CreatedAt,
	}
}

func toAliasProposalResponses(proposals []*entity.ProductAliasProposal) []*AliasProposalResponse {
	out := make([]*AliasProposalResponse, 0, len(proposals))
	for _, proposal := range proposals {
		out = append(out, toAliasProposalResponse(proposal))
	}

	return out
}

type PriceReportResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	ShopID         uuid.UUID `json:"shop_id"`
	ProductAliasID uuid.UUID `json:"product_alias_id"`
	PricePaid      float64   `json:"price_paid"`
	Quantity       int       `json:"quantity"`
	ReportedAt     time.Time `json:"reported_at"`
}

func toPriceReportResponse(report *entity.PriceReport) *PriceReportResponse {
	return &PriceReportResponse{
		ID:             report.ID,
		UserID:         report.UserID,
		ShopID:         report.ShopID,
		ProductAliasID: report.ProductAliasID,
		PricePaid:      report.PricePaid,
		Quantity:       report.Quantity,
		ReportedAt:     report.ReportedAt,
	}
}

type PriceReportSummaryResponse struct {
	ID              uuid.UUID  `json:"id"`
	ShopID          uuid.UUID  `json:"shop_id"`
	ShopName        string     `json:"shop_name"`
	ProductAliasID  uuid.UUID  `json:"product_alias_id"`
	AliasName       string     `json:"alias_name"`
	ProductID       uuid.UUID  `json:"product_id"`
	CanonicalName   string     `json:"canonical_name"`
	Category        string     `json:"category"`
	PricePaid       float64    `json:"price_paid"`
	Quantity        int        `json:"quantity"`
	ReportedAt      time.Time  `json:"reported_at"`
	QualityReportID *uuid.UUID `json:"quality_report_id,omitempty"`
	QualityScore    *float64   `json:"normalized_quality_score,omitempty"`
}

func toPriceReportSummaryResponses(summaries []*entity.PriceReportSummary) []*PriceReportSummaryResponse {
	out := make([]*PriceReportSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, &PriceReportSummaryResponse{
			ID:              s.ID,
			ShopID:          s.ShopID,
			ShopName:        s.ShopName,
			ProductAliasID:  s.ProductAliasID,
			AliasName:       s.AliasName,
			ProductID:       s.ProductID,
			CanonicalName:   s.CanonicalName,
			Category:        s.Category.String(),
			PricePaid:       s.PricePaid,
			Quantity:        s.Quantity,
			ReportedAt:      s.ReportedAt,
			QualityReportID: s.QualityReportID,
			QualityScore:    s.QualityScore,
		})
	}

	return out
}

// QualityReportResponse carries the category detail under a key named after the category.
type QualityReportResponse struct {
	ID                     uuid.UUID `json:"id"`
	PriceReportID          uuid.UUID `json:"price_report_id"`
	Category               string    `json:"category"`
	NormalizedQualityScore float64   `json:"normalized_quality_score"`
	ScoringVersion         string    `json:"scoring_version"`
	QualityDetails
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toQualityReportResponse(report *entity.QualityReport) *QualityReportResponse {
	return &QualityReportResponse{
		ID:                     report.ID,
		PriceReportID:          report.PriceReportID,
		Category:               report.Category.String(),
		NormalizedQualityScore: report.NormalizedQualityScore,
		ScoringVersion:         report.ScoringVersion,
		QualityDetails:         toQualityDetails(report.Assessment),
		CreatedAt:              report.CreatedAt,
		UpdatedAt:              report.UpdatedAt,
	}
}

func toQualityDetails(assessment scoring.Assessment) QualityDetails {
	var details QualityDetails

	switch a := assessment.(type) {
	case scoring.Electronics:
		details.Electronics = &ElectronicsDetails{
			DeviceFunctional:       &a.DeviceFunctional,
			AuthenticityConfidence: a.AuthenticityConfidence,
			ConditionMatch:         a.ConditionMatch,
			WarrantyHonored:        a.WarrantyHonored,
			AccessoriesComplete:    &a.AccessoriesComplete,
		}
	case scoring.Pharma:
		details.Pharma = &PharmaDetails{
			ExpiryStatus:               string(a.ExpiryStatus),
			DosageLabelMatchesExpected: &a.DosageLabelMatchesExpected,
			PackagingSealed:            &a.PackagingSealed,
			ExpiryDatePresent:          &a.ExpiryDatePresent,
			LabelCompleteness:          string(a.LabelCompleteness),
			PhysicalAnomaliesPresent:   &a.PhysicalAnomaliesPresent,
		}
	case scoring.Food:
		details.Food = &FoodDetails{
			ExpiryStatus:               string(a.ExpiryStatus),
			VisibleSpoilagePresent:     &a.VisibleSpoilagePresent,
			PackagingIntact:            &a.PackagingIntact,
			WeightOrVolumeMatchesLabel: &a.WeightOrVolumeMatchesLabel,
			AbnormalSmellOrAppearance:  &a.AbnormalSmellOrAppearance,
		}
	case scoring.Apparel:
		details.Apparel = &ApparelDetails{
			MaterialQuality:    string(a.MaterialQuality),
			StitchingQuality:   string(a.StitchingQuality),
			FitConsistency:     string(a.FitConsistency),
			EarlyWearPresent:   &a.EarlyWearPresent,
			ColorOrPrintFading: &a.ColorOrPrintFading,
		}
	}

	return details
}

// ReviewAuditResponse is one recorded moderation decision.
type ReviewAuditResponse struct {
	MessageID   string     `json:"message_id"`
	RequestID   string     `json:"request_id,omitempty"`
	ProposalID  uuid.UUID  `json:"proposal_id"`
	Kind        string     `json:"kind"`
	Status      string     `json:"status"`
	ReviewerID  uuid.UUID  `json:"reviewer_id"`
	CanonicalID *uuid.UUID `json:"canonical_id,omitempty"`
	ReviewedAt  time.Time  `json:"reviewed_at"`
	RecordedAt  time.Time  `json:"recorded_at"`
}

func toReviewAuditResponses(entries []*entity.ReviewAuditEntry) []*ReviewAuditResponse {
	out := make([]*ReviewAuditResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, &ReviewAuditResponse{
			MessageID:   entry.MessageID,
			RequestID:   entry.RequestID,
			ProposalID:  entry.ProposalID,
			Kind:        entry.Kind,
			Status:      entry.Status.String(),
			ReviewerID:  entry.ReviewerID,
			CanonicalID: entry.CanonicalID,
			ReviewedAt:  entry.ReviewedAt,
			RecordedAt:  entry.RecordedAt,
		})
	}

	return out
}
