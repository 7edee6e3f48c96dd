package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/orderchat-backend/api/middleware"
	chatsvc "github.com/angelmondragon/orderchat-backend/internal/chat"
	"github.com/angelmondragon/orderchat-backend/internal/session"
	"github.com/angelmondragon/orderchat-backend/pkg/enums"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

func withSession(r *http.Request, sessionID string) *http.Request {
	return r.WithContext(middleware.WithSessionID(r.Context(), sessionID))
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, dest))
}

func TestCartItemApplyAddsMenuItem(t *testing.T) {
	registry := session.NewRegistry(nil, nil)
	handler := CartItemApply(registry, nil)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"itemId":2,"delta":2}`)), "s1")
	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body cartResponse
	decodeData(t, w, &body)
	require.Len(t, body.Items, 1)
	require.Equal(t, "Zinger Combo", body.Items[0].Name)
	require.Equal(t, 2, body.Items[0].Quantity)
	require.Equal(t, "56.00", body.Total)
}

func TestCartItemApplyClampsAtZeroAndKeepsRow(t *testing.T) {
	registry := session.NewRegistry(nil, nil)
	sess := registry.GetOrCreate(context.Background(), "s1")
	sess.Dispatch(session.UpdateCartItem{Item: types.CartItem{ID: 2, Name: "Zinger Combo", Price: "28.00", Quantity: 1}})

	handler := CartItemApply(registry, nil)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"itemId":2,"delta":-2}`)), "s1")
	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body cartResponse
	decodeData(t, w, &body)
	require.Len(t, body.Items, 1)
	require.Equal(t, 0, body.Items[0].Quantity)
	require.Equal(t, "0.00", body.Total)
}

func TestCartItemApplyUnknownMenuItem(t *testing.T) {
	registry := session.NewRegistry(nil, nil)
	handler := CartItemApply(registry, nil)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"itemId":9999,"delta":1}`)), "s1")
	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartItemApplyNegativeDeltaOnMissingRowIsNoop(t *testing.T) {
	registry := session.NewRegistry(nil, nil)
	handler := CartItemApply(registry, nil)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"itemId":2,"delta":-1}`)), "s1")
	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body cartResponse
	decodeData(t, w, &body)
	require.Empty(t, body.Items)
	require.Equal(t, "0.00", body.Total)
}

func TestCartFetchEmpty(t *testing.T) {
	registry := session.NewRegistry(nil, nil)
	handler := CartFetch(registry, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart/", nil), "s1")
	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body cartResponse
	decodeData(t, w, &body)
	require.Empty(t, body.Items)
	require.Equal(t, "0.00", body.Total)
}

func TestCartCheckoutEntersDetailsStep(t *testing.T) {
	registry := session.NewRegistry(nil, nil)

	svc, err := chatsvc.NewService(noopGateway{}, func() []types.MenuItem {
		return []types.MenuItem{{ID: 2, Name: "Zinger Combo", Price: "28.00"}}
	}, nil, nil)
	require.NoError(t, err)

	handler := CartCheckout(registry, svc, nil)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/checkout", nil), "s1")
	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body checkoutResponse
	decodeData(t, w, &body)
	require.Equal(t, enums.CheckoutStepDetails, body.CheckoutStep)

	state := registry.GetOrCreate(context.Background(), "s1").State()
	require.Equal(t, enums.CheckoutStepDetails, state.Checkout.Step)
}

type noopGateway struct{}

func (noopGateway) Recommend(ctx context.Context, userText string, vegOnly bool, menu []types.MenuItem) (string, error) {
	return "", nil
}

func (noopGateway) RecommendForImage(ctx context.Context, imageDescription string, vegOnly bool, menu []types.MenuItem) (string, error) {
	return "", nil
}

func (noopGateway) DescribeImage(ctx context.Context, imageURL string) (string, error) {
	return "", nil
}
