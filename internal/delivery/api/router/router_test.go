package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pricecheck/config"
	"pricecheck/internal/delivery/api/middleware"
	"pricecheck/internal/delivery/api/router/handler"
	"pricecheck/internal/delivery/api/validator"
	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/scoring"
	"pricecheck/internal/domain/service"
	"pricecheck/internal/errors"
	mockSvc "pricecheck/internal/mocks/service"
	mockUC "pricecheck/internal/mocks/usecase"
	"pricecheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "pricecheck_session"

type apiFixture struct {
	e          *echo.Echo
	tokens     *mockSvc.MockTokenService
	auth       *mockUC.MockAuthUsecase
	catalog    *mockUC.MockCatalogUsecase
	proposal   *mockUC.MockProposalUsecase
	price      *mockUC.MockPriceReportUsecase
	quality    *mockUC.MockQualityReportUsecase
	moderation *mockUC.MockModerationUsecase
	audit      *mockUC.MockAuditUsecase
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: testCookieName}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &apiFixture{
		e:          echo.New(),
		tokens:     mockSvc.NewMockTokenService(t),
		auth:       mockUC.NewMockAuthUsecase(t),
		catalog:    mockUC.NewMockCatalogUsecase(t),
		proposal:   mockUC.NewMockProposalUsecase(t),
		price:      mockUC.NewMockPriceReportUsecase(t),
		quality:    mockUC.NewMockQualityReportUsecase(t),
		moderation: mockUC.NewMockModerationUsecase(t),
		audit:      mockUC.NewMockAuditUsecase(t),
	}

	f.e.Validator = validator.New()
	f.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	moderationHandler := handler.NewModerationHandler(handler.ModerationHandlerParams{
		ModerationUsecase: f.moderation,
		AuditUsecase:      f.audit,
	})

	NewRouter(RouterParams{
		AuthHandler:          handler.NewAuthHandler(handler.AuthHandlerParams{AuthUsecase: f.auth, Config: cfg}),
		CatalogHandler:       handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUsecase: f.catalog}),
		ProposalHandler:      handler.NewProposalHandler(handler.ProposalHandlerParams{ProposalUsecase: f.proposal}),
		PriceReportHandler:   handler.NewPriceReportHandler(handler.PriceReportHandlerParams{PriceReportUsecase: f.price}),
		QualityReportHandler: handler.NewQualityReportHandler(handler.QualityReportHandlerParams{QualityReportUsecase: f.quality}),
		ModerationHandler:    moderationHandler,
		AuthMiddleware:       middleware.NewAuthMiddleware(f.tokens, cfg),
	}).RegisterRoutes(f.e)

	return f
}

// session registers a token for the given identity and returns it.
func (f *apiFixture) session(userID uuid.UUID, userType entity.UserType) string {
	token := "token-" + userID.String()
	f.tokens.EXPECT().ValidateToken(token).
		Return(&service.Claims{UserID: userID, UserType: userType.String()}, nil).Maybe()

	return token
}

func (f *apiFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()

	assert.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Error, rec.Body.String())
	assert.Equal(t, code, env.Error.Code)

	return env
}

func TestRouter_Health(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRouter_SessionGate(t *testing.T) {
	t.Run("missing token is rejected", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/me", "", "")

		env := assertErrorCode(t, rec, http.StatusForbidden, "UNAUTHENTICATED")
		assert.Nil(t, env.Error.Details)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		f := newAPIFixture(t)
		f.tokens.EXPECT().ValidateToken("forged").Return(nil, errors.New("invalid token"))

		rec := f.do(http.MethodGet, "/api/v1/products", "", "forged")

		assertErrorCode(t, rec, http.StatusForbidden, "UNAUTHENTICATED")
	})

	t.Run("session cookie is accepted", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := uuid.New()
		token := f.session(userID, entity.UserTypeUser)
		f.auth.EXPECT().Me(mock.Anything, userID).Return(&entity.User{
			ID:           userID,
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$secret",
			UserType:     entity.UserTypeUser,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var user handler.UserResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &user))
		assert.Equal(t, "alice", user.Username)
		assert.False(t, user.IsAdmin)
		assert.NotContains(t, rec.Body.String(), "secret")
	})
}

func TestRouter_Register(t *testing.T) {
	t.Run("missing fields never reach the use case", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/auth/register", `{"username":"alice","email":"a@example.com","password":"Secret123"}`, "")

		env := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "password_confirmation: is required")
	})

	t.Run("conflict surfaces as 409", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Username:             "alice",
			Email:                "a@example.com",
			Password:             "Secret123",
			PasswordConfirmation: "Secret123",
		}).Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "username taken"))

		rec := f.do(http.MethodPost, "/auth/register",
			`{"username":"alice","email":"a@example.com","password":"Secret123","password_confirmation":"Secret123"}`, "")

		assertErrorCode(t, rec, domainerrors.ErrUserAlreadyExists.HTTPCode(), "USER_ALREADY_EXISTS")
	})
}

func TestRouter_LoginAndLogout(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	f.auth.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "Secret123"}).
		Return(&usecase.LoginOutput{
			AccessToken: "signed-token",
			ExpiresAt:   expiresAt,
			User:        &entity.User{ID: userID, Username: "alice", UserType: entity.UserTypeUser},
		}, nil)

	rec := f.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"Secret123"}`, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var session handler.SessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &session))
	assert.Equal(t, "signed-token", session.AccessToken)
	assert.Equal(t, "Bearer", session.TokenType)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	rec = f.do(http.MethodPost, "/auth/logout", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestRouter_AdminRoutes(t *testing.T) {
	t.Run("non-admin session is denied before the use case", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)

		for _, path := range []string{
			"/api/v1/admin/proposals/shops/" + uuid.NewString() + "/approve",
			"/api/v1/admin/proposals/product-aliases/" + uuid.NewString() + "/reject",
		} {
			rec := f.do(http.MethodPost, path, "", token)
			assertErrorCode(t, rec, http.StatusForbidden, "PERMISSION_DENIED")
		}
	})

	t.Run("approve returns proposal and shop", func(t *testing.T) {
		f := newAPIFixture(t)
		adminID, proposalID, shopID := uuid.New(), uuid.New(), uuid.New()
		token := f.session(adminID, entity.UserTypeAdmin)
		reviewedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		f.moderation.EXPECT().ApproveShop(mock.Anything, adminID, proposalID).Return(&usecase.ShopApproval{
			Proposal: &entity.ShopProposal{
				ID:           proposalID,
				ProposedName: "Corner Market",
				Review:       entity.Review{Status: entity.ProposalApproved, ReviewedBy: &adminID, ReviewedAt: &reviewedAt},
			},
			Shop: &entity.Shop{ID: shopID, Name: "Corner Market"},
		}, nil)

		rec := f.do(http.MethodPost, "/api/v1/admin/proposals/shops/"+proposalID.String()+"/approve", "", token)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var approval handler.ShopApprovalResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &approval))
		assert.Equal(t, "approved", approval.Proposal.Status)
		assert.Equal(t, adminID, *approval.Proposal.ReviewedBy)
		assert.Equal(t, shopID, approval.Shop.ID)
	})

	t.Run("already reviewed proposal is 404", func(t *testing.T) {
		f := newAPIFixture(t)
		adminID, proposalID := uuid.New(), uuid.New()
		token := f.session(adminID, entity.UserTypeAdmin)
		f.moderation.EXPECT().ApproveShop(mock.Anything, adminID, proposalID).
			Return(nil, errors.Wrap(domainerrors.ErrProposalNotFound, "proposal already reviewed"))

		rec := f.do(http.MethodPost, "/api/v1/admin/proposals/shops/"+proposalID.String()+"/approve", "", token)

		assertErrorCode(t, rec, http.StatusNotFound, "PROPOSAL_NOT_FOUND")
	})

	t.Run("malformed proposal id", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeAdmin)

		rec := f.do(http.MethodPost, "/api/v1/admin/proposals/shops/not-a-uuid/reject", "", token)

		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("audit trail of a proposal", func(t *testing.T) {
		f := newAPIFixture(t)
		adminID, proposalID, shopID := uuid.New(), uuid.New(), uuid.New()
		token := f.session(adminID, entity.UserTypeAdmin)
		f.audit.EXPECT().ListProposalHistory(mock.Anything, adminID, proposalID).Return([]*entity.ReviewAuditEntry{{
			MessageID:   proposalID.String() + ":approved",
			ProposalID:  proposalID,
			Kind:        "shop",
			Status:      entity.ProposalApproved,
			ReviewerID:  adminID,
			CanonicalID: &shopID,
		}}, nil)

		rec := f.do(http.MethodGet, "/api/v1/admin/proposals/"+proposalID.String()+"/audit", "", token)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var entries []handler.ReviewAuditResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "approved", entries[0].Status)
		assert.Equal(t, shopID, *entries[0].CanonicalID)
	})
}

func TestRouter_Catalog(t *testing.T) {
	t.Run("nearby search passes the query and reports distance", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)
		shop := &entity.Shop{ID: uuid.New(), Name: "Corner Market", Latitude: 25.04, Longitude: 121.56}
		f.catalog.EXPECT().ListShops(mock.Anything, &usecase.NearbyQuery{Latitude: 25.03, Longitude: 121.56, RadiusKm: 2}).
			Return([]*entity.NearbyShop{{Shop: shop, DistanceKm: 1.1}}, nil)

		rec := f.do(http.MethodGet, "/api/v1/shops?lat=25.03&lon=121.56&radius_km=2", "", token)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var shops []handler.ShopResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &shops))
		require.Len(t, shops, 1)
		require.NotNil(t, shops[0].DistanceKm)
		assert.InDelta(t, 1.1, *shops[0].DistanceKm, 1e-9)
	})

	t.Run("plain listing has no distance", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)
		f.catalog.EXPECT().ListShops(mock.Anything, (*usecase.NearbyQuery)(nil)).
			Return([]*entity.NearbyShop{{Shop: &entity.Shop{ID: uuid.New(), Name: "A"}}}, nil)

		rec := f.do(http.MethodGet, "/api/v1/shops", "", token)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "distance_km")
	})

	t.Run("lat without lon", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)

		rec := f.do(http.MethodGet, "/api/v1/shops?lat=25.03", "", token)

		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("non-finite coordinates", func(t *testing.T) {
		for _, query := range []string{"lat=NaN&lon=121.56", "lat=25.03&lon=Inf", "lat=25.03&lon=121.56&radius_km=nan"} {
			f := newAPIFixture(t)
			token := f.session(uuid.New(), entity.UserTypeUser)

			rec := f.do(http.MethodGet, "/api/v1/shops?"+query, "", token)

			assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		}
	})

	t.Run("qr code is a png", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)
		shopID := uuid.New()
		png := []byte("\x89PNG\r\n\x1a\n")
		f.catalog.EXPECT().GetShopQRCode(mock.Anything, shopID).Return(png, nil)

		rec := f.do(http.MethodGet, "/api/v1/shops/"+shopID.String()+"/qr", "", token)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("unknown shop", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)
		shopID := uuid.New()
		f.catalog.EXPECT().GetShop(mock.Anything, shopID).Return(nil, domainerrors.ErrShopNotFound)

		rec := f.do(http.MethodGet, "/api/v1/shops/"+shopID.String(), "", token)

		assertErrorCode(t, rec, http.StatusNotFound, "SHOP_NOT_FOUND")
	})
}

func TestRouter_Proposals(t *testing.T) {
	t.Run("shop proposal", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := uuid.New()
		token := f.session(userID, entity.UserTypeUser)
		f.proposal.EXPECT().ProposeShop(mock.Anything, userID, &usecase.ProposeShopInput{
			Name: "Corner Market", Address: "1 Main St", Latitude: 0, Longitude: 0,
		}).Return(&entity.ShopProposal{
			ID:           uuid.New(),
			ProposedName: "Corner Market",
			ProposedBy:   userID,
			Review:       entity.Review{Status: entity.ProposalPending},
		}, nil)

		rec := f.do(http.MethodPost, "/api/v1/proposals/shops",
			`{"name":"Corner Market","address":"1 Main St","latitude":0,"longitude":0}`, token)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, string(decode(t, rec).Data), `"status":"pending"`)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)

		rec := f.do(http.MethodPost, "/api/v1/proposals/shops",
			`{"name":"Corner Market","address":"1 Main St","latitude":91,"longitude":0}`, token)

		env := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "latitude")
	})

	t.Run("alias proposal for unknown product", func(t *testing.T) {
		f := newAPIFixture(t)
		userID, productID := uuid.New(), uuid.New()
		token := f.session(userID, entity.UserTypeUser)
		f.proposal.EXPECT().ProposeProductAlias(mock.Anything, userID, &usecase.ProposeProductAliasInput{
			ProductID: productID, AliasName: "widget",
		}).Return(nil, domainerrors.ErrProductNotFound)

		rec := f.do(http.MethodPost, "/api/v1/proposals/product-aliases",
			`{"product_id":"`+productID.String()+`","alias_name":"widget"}`, token)

		assertErrorCode(t, rec, http.StatusNotFound, "PRODUCT_NOT_FOUND")
	})
}

func TestRouter_PriceReports(t *testing.T) {
	t.Run("quantity is optional", func(t *testing.T) {
		f := newAPIFixture(t)
		userID, shopID, aliasID := uuid.New(), uuid.New(), uuid.New()
		token := f.session(userID, entity.UserTypeUser)
		f.price.EXPECT().Create(mock.Anything, userID, &usecase.CreatePriceReportInput{
			ShopID: shopID, ProductAliasID: aliasID, PricePaid: 19.99,
		}).Return(&entity.PriceReport{
			ID: uuid.New(), UserID: userID, ShopID: shopID, ProductAliasID: aliasID, PricePaid: 19.99, Quantity: 1,
		}, nil)

		rec := f.do(http.MethodPost, "/api/v1/price-reports",
			`{"shop_id":"`+shopID.String()+`","product_alias_id":"`+aliasID.String()+`","price_paid":19.99}`, token)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, string(decode(t, rec).Data), `"quantity":1`)
	})

	t.Run("shop named by scanned QR payload", func(t *testing.T) {
		f := newAPIFixture(t)
		userID, shopID, aliasID := uuid.New(), uuid.New(), uuid.New()
		token := f.session(userID, entity.UserTypeUser)
		quantity := 3
		payload := `{"shop_id":"` + shopID.String() + `","type":"shop"}`
		f.price.EXPECT().Create(mock.Anything, userID, &usecase.CreatePriceReportInput{
			ShopQR: payload, ProductAliasID: aliasID, PricePaid: 5, Quantity: &quantity,
		}).Return(&entity.PriceReport{
			ID: uuid.New(), UserID: userID, ShopID: shopID, ProductAliasID: aliasID, PricePaid: 5, Quantity: 3,
		}, nil)

		body, err := json.Marshal(map[string]any{
			"shop_qr": payload, "product_alias_id": aliasID, "price_paid": 5, "quantity": 3,
		})
		require.NoError(t, err)
		rec := f.do(http.MethodPost, "/api/v1/price-reports", string(body), token)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("shop id or QR payload is required", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)

		rec := f.do(http.MethodPost, "/api/v1/price-reports",
			`{"product_alias_id":"`+uuid.NewString()+`","price_paid":2}`, token)

		env := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "shop_id: is required")
	})

	t.Run("explicit zero quantity", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)

		rec := f.do(http.MethodPost, "/api/v1/price-reports",
			`{"shop_id":"`+uuid.NewString()+`","product_alias_id":"`+uuid.NewString()+`","price_paid":2,"quantity":0}`, token)

		env := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "quantity")
	})

	t.Run("non-positive price", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)

		rec := f.do(http.MethodPost, "/api/v1/price-reports",
			`{"shop_id":"`+uuid.NewString()+`","product_alias_id":"`+uuid.NewString()+`","price_paid":0}`, token)

		env := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "price_paid")
	})

	t.Run("browse filters", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)
		productID := uuid.New()
		score := 0.8
		f.price.EXPECT().Browse(mock.Anything, &usecase.BrowsePriceReportsInput{ProductID: &productID, Limit: 10}).
			Return([]*entity.PriceReportSummary{{ID: uuid.New(), ProductID: productID, QualityScore: &score}}, nil)

		rec := f.do(http.MethodGet, "/api/v1/price-reports?product_id="+productID.String()+"&limit=10", "", token)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, string(decode(t, rec).Data), `"normalized_quality_score":0.8`)
	})

	t.Run("browse rejects a malformed limit", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)

		rec := f.do(http.MethodGet, "/api/v1/price-reports?limit=ten", "", token)

		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("my reports", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := uuid.New()
		token := f.session(userID, entity.UserTypeUser)
		f.price.EXPECT().ListMine(mock.Anything, userID).Return([]*entity.PriceReportSummary{}, nil)

		rec := f.do(http.MethodGet, "/api/v1/me/price-reports", "", token)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
	})
}

func TestRouter_QualityReports(t *testing.T) {
	apparelBody := `{"apparel":{"material_quality":"poor","stitching_quality":"no_defects","fit_consistency":"as_expected","early_wear_present":false,"color_or_print_fading":false}}`
	apparel := scoring.Apparel{
		MaterialQuality:  scoring.MaterialPoor,
		StitchingQuality: scoring.StitchingNoDefects,
		FitConsistency:   scoring.FitAsExpected,
	}

	for _, tt := range []struct {
		name     string
		isUpdate bool
		status   int
		message  string
	}{
		{name: "first submission", isUpdate: false, status: http.StatusCreated, message: "Quality report submitted"},
		{name: "resubmission", isUpdate: true, status: http.StatusOK, message: "Quality report updated"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			userID, priceReportID := uuid.New(), uuid.New()
			token := f.session(userID, entity.UserTypeUser)
			f.quality.EXPECT().Upsert(mock.Anything, userID, &usecase.UpsertQualityReportInput{
				PriceReportID: priceReportID,
				Assessment:    apparel,
			}).Return(&usecase.UpsertQualityReportOutput{
				Report: &entity.QualityReport{
					ID:                     uuid.New(),
					PriceReportID:          priceReportID,
					Category:               scoring.CategoryApparel,
					Assessment:             apparel,
					NormalizedQualityScore: apparel.Score(),
					ScoringVersion:         scoring.Version,
				},
				IsUpdate: tt.isUpdate,
			}, nil)

			rec := f.do(http.MethodPut, "/api/v1/price-reports/"+priceReportID.String()+"/quality-report", apparelBody, token)

			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			env := decode(t, rec)
			assert.Equal(t, tt.message, env.Message)

			var report handler.QualityReportResponse
			require.NoError(t, json.Unmarshal(env.Data, &report))
			assert.Equal(t, "apparel", report.Category)
			require.NotNil(t, report.Apparel)
			assert.Equal(t, "poor", report.Apparel.MaterialQuality)
			assert.Nil(t, report.Electronics)
			assert.InDelta(t, 0.7, report.NormalizedQualityScore, 1e-9)
		})
	}

	t.Run("more than one variant", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)
		body := `{"food":{"expiry_status":"valid","visible_spoilage_present":false,"packaging_intact":true,"weight_or_volume_matches_label":true,"abnormal_smell_or_appearance":false},` +
			`"apparel":{"material_quality":"poor","stitching_quality":"no_defects","fit_consistency":"as_expected","early_wear_present":false,"color_or_print_fading":false}}`

		rec := f.do(http.MethodPut, "/api/v1/price-reports/"+uuid.NewString()+"/quality-report", body, token)

		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("out of domain value names the field", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)
		body := `{"apparel":{"material_quality":"poor","stitching_quality":"no_defects","fit_consistency":"baggy","early_wear_present":false,"color_or_print_fading":false}}`

		rec := f.do(http.MethodPut, "/api/v1/price-reports/"+uuid.NewString()+"/quality-report", body, token)

		env := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "apparel.fit_consistency")
	})

	t.Run("missing boolean", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.session(uuid.New(), entity.UserTypeUser)
		body := `{"electronics":{"authenticity_confidence":5,"condition_match":5,"accessories_complete":true}}`

		rec := f.do(http.MethodPut, "/api/v1/price-reports/"+uuid.NewString()+"/quality-report", body, token)

		env := assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "electronics.device_functional: is required")
	})

	t.Run("category mismatch from the use case", func(t *testing.T) {
		f := newAPIFixture(t)
		userID, priceReportID := uuid.New(), uuid.New()
		token := f.session(userID, entity.UserTypeUser)
		f.quality.EXPECT().Upsert(mock.Anything, userID, mock.Anything).
			Return(nil, domainerrors.ErrCategoryMismatch.WithDetails("product category is electronics"))

		rec := f.do(http.MethodPut, "/api/v1/price-reports/"+priceReportID.String()+"/quality-report", apparelBody, token)

		env := assertErrorCode(t, rec, http.StatusBadRequest, "CATEGORY_MISMATCH")
		assert.Equal(t, "product category is electronics", env.Error.Details)
	})

	t.Run("reading another user's report is forbidden", func(t *testing.T) {
		f := newAPIFixture(t)
		userID, priceReportID := uuid.New(), uuid.New()
		token := f.session(userID, entity.UserTypeUser)
		f.quality.EXPECT().Get(mock.Anything, userID, priceReportID).Return(nil, domainerrors.ErrPriceReportOwnership)

		rec := f.do(http.MethodGet, "/api/v1/price-reports/"+priceReportID.String()+"/quality-report", "", token)

		assertErrorCode(t, rec, domainerrors.ErrPriceReportOwnership.HTTPCode(), "PRICE_REPORT_OWNERSHIP_VIOLATION")
	})
}
