package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pricecheck/config"
	"pricecheck/internal/domain/constants"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/service"
	"pricecheck/internal/errors"
	"pricecheck/internal/infra/pubsub"
	mockUsecase "pricecheck/internal/mocks/usecase"
	"pricecheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockAuditUsecase) {
	auditSvc := mockUsecase.NewMockAuditUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvLocal

	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuditSvc: auditSvc,
	})

	return h, auditSvc
}

func pushBody(t *testing.T, messageID string, event *service.ProposalReviewedEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PubSubPushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = messageID
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/moderation-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func reviewEvent() *service.ProposalReviewedEvent {
	return &service.ProposalReviewedEvent{
		RequestID:  "req-from-event",
		ProposalID: "0195f7a2-6f1c-7d3e-9a61-2b4c8d0e1f23",
		Kind:       service.ProposalKindShop,
		Status:     "approved",
		ReviewerID: "0195f7a2-6f1c-7d3e-9a61-2b4c8d0e1f24",
	}
}

func TestPushHandler_RecordsEvent(t *testing.T) {
	h, auditSvc := newTestPushHandler(t)

	auditSvc.EXPECT().RecordReview(mock.Anything, mock.MatchedBy(func(in *usecase.RecordReviewInput) bool {
		return in.MessageID == "msg-1" && in.Event.ProposalID == reviewEvent().ProposalID
	})).Return(&usecase.RecordReviewOutput{}, nil).Once()

	rec := doPush(h, pushBody(t, "msg-1", reviewEvent(), map[string]string{"request_id": "req-attr"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DuplicateIsAcknowledged(t *testing.T) {
	h, auditSvc := newTestPushHandler(t)
	auditSvc.EXPECT().RecordReview(mock.Anything, mock.Anything).
		Return(&usecase.RecordReviewOutput{Duplicate: true}, nil).Once()

	rec := doPush(h, pushBody(t, "msg-1", reviewEvent(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StorageFailureIsRetried(t *testing.T) {
	h, auditSvc := newTestPushHandler(t)
	auditSvc.EXPECT().RecordReview(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	rec := doPush(h, pushBody(t, "msg-1", reviewEvent(), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_InvalidEventIsDropped(t *testing.T) {
	h, auditSvc := newTestPushHandler(t)
	auditSvc.EXPECT().RecordReview(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("status: must be approved or rejected")).Once()

	rec := doPush(h, pushBody(t, "msg-1", reviewEvent(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%","messageId":"m"}}`},
		{name: "event not json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `","messageId":"m"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := doPush(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesTokenForGooglePushes(t *testing.T) {
	auditSvc := mockUsecase.NewMockAuditUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuditSvc: auditSvc,
	})
	require.True(t, h.verifyPushAuth)

	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }
	rec := doPush(h, pushBody(t, "msg-1", reviewEvent(), nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h.verifyToken = func(*http.Request) error { return nil }
	auditSvc.EXPECT().RecordReview(mock.Anything, mock.Anything).Return(&usecase.RecordReviewOutput{}, nil).Once()
	rec = doPush(h, pushBody(t, "msg-1", reviewEvent(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}

func TestExtractRequestID_Priority(t *testing.T) {
	h, _ := newTestPushHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	var msg pubsub.PubSubPushMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	event := reviewEvent()

	assert.Equal(t, "from-attr", h.extractRequestID(req.Context(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "req-from-event", h.extractRequestID(req.Context(), &msg, event))

	event.RequestID = ""
	assert.NotEmpty(t, h.extractRequestID(req.Context(), &msg, event))
}
