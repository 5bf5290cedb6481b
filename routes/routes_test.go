package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniellbaii/mp-fishnchips/configs"
	"github.com/daniellbaii/mp-fishnchips/repository"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &configs.Config{SessionSecret: "test-secret"}
	RegisterRoutes(r, cfg, repository.NewMemStore())
	return r
}

type client struct {
	r       *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	if got := w.Result().Cookies(); len(got) > 0 {
		c.cookies = got
	}
	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func addSnapper(t *testing.T, c *client) map[string]any {
	w, out := c.do(t, http.MethodPost, "/cart/items", gin.H{
		"menuItemId": "fish-single",
		"selections": []gin.H{
			{"customizationId": "fish-type", "optionId": "snapper"},
			{"customizationId": "extras", "optionId": "lemon"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return out["data"].(map[string]any)
}

func TestMenuEndpoints(t *testing.T) {
	c := &client{r: newTestRouter()}

	w, out := c.do(t, http.MethodGet, "/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, out["data"])

	w, out = c.do(t, http.MethodGet, "/menu?category=drinks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, it := range out["data"].([]any) {
		assert.Equal(t, "drinks", it.(map[string]any)["category"])
	}

	w, out = c.do(t, http.MethodGet, "/menu?q=battered", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, out["data"], 1)

	w, _ = c.do(t, http.MethodGet, "/menu/fish-single", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = c.do(t, http.MethodGet, "/menu/lobster", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartFlowMergesAndTotals(t *testing.T) {
	c := &client{r: newTestRouter()}

	state := addSnapper(t, c)
	assert.Equal(t, float64(1), state["totalItems"])
	assert.Equal(t, float64(1400), state["totalAmount"])

	// same choices again: one line, quantity 2
	state = addSnapper(t, c)
	items := state["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]any)["quantity"])
	assert.Equal(t, float64(2800), state["totalAmount"])

	// the cookie carries the session: a bare GET sees the same cart
	w, out := c.do(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), out["data"].(map[string]any)["totalItems"])

	// a different client gets an empty cart
	w, out = (&client{r: c.r}).do(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), out["data"].(map[string]any)["totalItems"])
}

func TestCartAddRejectsUnknownItem(t *testing.T) {
	c := &client{r: newTestRouter()}
	w, _ := c.do(t, http.MethodPost, "/cart/items", gin.H{"menuItemId": "lobster"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	c := &client{r: newTestRouter()}
	addSnapper(t, c)

	pickup := time.Now().Add(45 * time.Minute).Format(time.RFC3339)
	w, out := c.do(t, http.MethodPost, "/orders", gin.H{
		"customerInfo":  gin.H{"name": "Alex Chen", "phone": "0412345678"},
		"paymentMethod": "cash",
		"pickupTime":    pickup,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := out["data"].(map[string]any)["orderId"].(string)
	require.NotEmpty(t, orderID)

	// confirmation lookup
	w, out = c.do(t, http.MethodGet, "/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := out["data"].(map[string]any)
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, "pending", order["paymentStatus"])
	assert.Equal(t, float64(1400), order["totalAmount"])

	// cart cleared by the successful checkout
	w, out = c.do(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, out["data"].(map[string]any)["items"])
}

func TestCheckoutValidationErrors(t *testing.T) {
	c := &client{r: newTestRouter()}
	addSnapper(t, c)

	w, out := c.do(t, http.MethodPost, "/orders", gin.H{
		"customerInfo":  gin.H{"name": "", "phone": "123456789", "email": "not-an-email"},
		"paymentMethod": "cash",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := out["errors"].(map[string]any)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "pickupTime")

	// nothing placed, cart intact
	w, out = c.do(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), out["data"].(map[string]any)["totalItems"])
}

func TestOrderConfirmationMissIs404(t *testing.T) {
	c := &client{r: newTestRouter()}
	w, _ := c.do(t, http.MethodGet, "/orders/MP0XXXX", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPickupTimesEndpoint(t *testing.T) {
	c := &client{r: newTestRouter()}
	w, out := c.do(t, http.MethodGet, "/checkout/pickup-times", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, out["data"], 8)
}
