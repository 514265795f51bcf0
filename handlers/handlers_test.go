package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-service/handlers"
	"storefront-service/internal/bookings"
	"storefront-service/internal/contact"
	"storefront-service/internal/faqs"
	"storefront-service/internal/orders"
	"storefront-service/internal/payments"
	"storefront-service/internal/products"
	"storefront-service/internal/stores/mongodb"
	"storefront-service/internal/stores/mongodb/mongodbtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, store mongodb.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p, err := products.NewConf(store)
	require.NoError(t, err)
	o, err := orders.NewConf(store)
	require.NoError(t, err)
	b, err := bookings.NewConf(store)
	require.NoError(t, err)
	f, err := faqs.NewConf(store)
	require.NoError(t, err)
	cm, err := contact.NewConf(store)
	require.NoError(t, err)
	pay := payments.NewConf("", "")

	return handlers.API(store, p, o, b, f, cm, pay)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Body.String(), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestRootAndSchema(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	w, body := doJSON(t, r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Extensions Essence API is running", body["message"])

	w, body = doJSON(t, r, http.MethodGet, "/schema", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"product", "order", "booking", "faq", "contactmessage"}, body["collections"])
}

func TestDatabaseDiagnostic(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	w, body := doJSON(t, r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "running", body["backend"])
	assert.Equal(t, "connected and working", body["database"])
	assert.Equal(t, "connected", body["connection_status"])
	assert.Equal(t, "memdb", body["database_name"])
}

func TestCreateProductScenario(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	w, body := doJSON(t, r, http.MethodPost, "/products",
		`{"title":"Box Braids","price":25.0,"category":"braids"}`)
	require.Equal(t, http.StatusOK, w.Code)

	id, ok := body["id"].(string)
	require.True(t, ok)
	require.Len(t, id, 24)

	w, got := doJSON(t, r, http.MethodGet, "/products/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, got["id"])
	assert.Equal(t, "Box Braids", got["title"])
	assert.Equal(t, 25.0, got["price"])
	assert.Equal(t, "braids", got["category"])
	assert.Equal(t, true, got["in_stock"])
	assert.Equal(t, false, got["featured"])
	assert.Equal(t, []any{}, got["images"])
	assert.Equal(t, []any{}, got["tags"])
}

func TestCreateProductValidation(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	cases := map[string]string{
		"missing title":    `{"price":25.0,"category":"braids"}`,
		"missing price":    `{"title":"Box Braids","category":"braids"}`,
		"negative price":   `{"title":"Box Braids","price":-1,"category":"braids"}`,
		"missing category": `{"title":"Box Braids","price":25.0}`,
		"relative url":     `{"title":"Box Braids","price":25.0,"category":"braids","images":[{"url":"/img/braids.jpg"}]}`,
	}
	for name, payload := range cases {
		w, _ := doJSON(t, r, http.MethodPost, "/products", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}

	// price 0 is allowed
	w, _ := doJSON(t, r, http.MethodPost, "/products", `{"title":"Sample","price":0,"category":"braids"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMalformedIDNeverReachesStore(t *testing.T) {
	// FakeStore with no stubs panics on any store call, so reaching it fails
	// the test via gin's recovery turning panics into 500s.
	fake := &mongodbtest.FakeStore{}
	r := newTestAPI(t, fake)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/products/not-hex", ""},
		{http.MethodPut, "/products/not-hex", `{"title":"X","price":1,"category":"braids"}`},
		{http.MethodDelete, "/products/not-hex", ""},
		{http.MethodGet, "/products/507f1f77bcf86cd79943901", ""}, // 23 chars
	} {
		w, _ := doJSON(t, r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tc.method, tc.path)
	}
	assert.Empty(t, fake.Calls)
}

func TestProductNotFound(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())
	const absent = "507f1f77bcf86cd799439011"

	w, _ := doJSON(t, r, http.MethodGet, "/products/"+absent, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodPut, "/products/"+absent, `{"title":"X","price":1,"category":"braids"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/products/"+absent, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProductTwice(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	_, body := doJSON(t, r, http.MethodPost, "/products", `{"title":"Box Braids","price":25.0,"category":"braids"}`)
	id := body["id"].(string)

	w, deleted := doJSON(t, r, http.MethodDelete, "/products/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, deleted["deleted"])

	w, _ = doJSON(t, r, http.MethodDelete, "/products/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProductsFiltering(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	for _, payload := range []string{
		`{"title":"Crochet Locs","price":30,"category":"crochet","featured":true}`,
		`{"title":"Crochet Curls","price":28,"category":"crochet"}`,
		`{"title":"Box Braids","price":25,"category":"braids","featured":true}`,
	} {
		w, _ := doJSON(t, r, http.MethodPost, "/products", payload)
		require.Equal(t, http.StatusOK, w.Code)
	}

	list := func(path string) []map[string]any {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var out []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		return out
	}

	assert.Len(t, list("/products"), 3)

	crochet := list("/products?category=crochet")
	require.Len(t, crochet, 2)
	for _, p := range crochet {
		assert.Equal(t, "crochet", p["category"])
	}

	both := list("/products?category=crochet&featured=true")
	require.Len(t, both, 1)
	assert.Equal(t, "Crochet Locs", both[0]["title"])

	w, _ := doJSON(t, r, http.MethodGet, "/products?featured=maybe", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductFullReplace(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	_, body := doJSON(t, r, http.MethodPost, "/products",
		`{"title":"Box Braids","price":25,"category":"braids","tags":["protective"]}`)
	id := body["id"].(string)

	w, updated := doJSON(t, r, http.MethodPut, "/products/"+id,
		`{"title":"Jumbo Box Braids","price":32,"category":"braids"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, true, updated["updated"])

	_, got := doJSON(t, r, http.MethodGet, "/products/"+id, "")
	assert.Equal(t, "Jumbo Box Braids", got["title"])
	assert.Equal(t, 32.0, got["price"])
	assert.Equal(t, []any{}, got["tags"], "omitted fields are replaced, not kept")
}

func TestOrdersCreateAndList(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	w, body := doJSON(t, r, http.MethodPost, "/orders", `{
		"items":[{"product_id":"507f1f77bcf86cd799439011","quantity":2}],
		"amount":150.0,
		"payment_provider":"paystack",
		"customer":{"name":"Ada","email":"ada@example.com","phone":"+2348012345678"},
		"address":{"line1":"12 Allen Avenue","city":"Lagos"}
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body["id"].(string), 24)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "NGN", list[0]["currency"])
	assert.Equal(t, "pending", list[0]["status"])
	assert.Equal(t, "standard", list[0]["delivery_option"])

	w, _ = doJSON(t, r, http.MethodGet, "/orders?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderValidation(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	// bad customer email
	w, _ := doJSON(t, r, http.MethodPost, "/orders", `{
		"items":[],"amount":10,"payment_provider":"stripe",
		"customer":{"name":"Ada","email":"not-an-email","phone":"1"},
		"address":{"line1":"a","city":"b"}
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing items
	w, _ = doJSON(t, r, http.MethodPost, "/orders", `{
		"amount":10,"payment_provider":"stripe",
		"customer":{"name":"Ada","email":"ada@example.com","phone":"1"},
		"address":{"line1":"a","city":"b"}
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// zero quantity
	w, _ = doJSON(t, r, http.MethodPost, "/orders", `{
		"items":[{"product_id":"x","quantity":0}],"amount":10,"payment_provider":"stripe",
		"customer":{"name":"Ada","email":"ada@example.com","phone":"1"},
		"address":{"line1":"a","city":"b"}
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingsFAQsAndContact(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	w, body := doJSON(t, r, http.MethodPost, "/bookings",
		`{"name":"Ada","phone":"+2348012345678","service":"wig-install","preferred_date":"next saturday"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body["id"].(string), 24)

	w, _ = doJSON(t, r, http.MethodPost, "/bookings", `{"name":"Ada","phone":"+2348012345678"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "service is required")

	w, body = doJSON(t, r, http.MethodPost, "/faqs",
		`{"question":"How long do braids last?","answer":"Six to eight weeks with care."}`)
	require.Equal(t, http.StatusOK, w.Code)
	faqID := body["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/faqs", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var faqList []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &faqList))
	require.Len(t, faqList, 1)
	assert.Equal(t, faqID, faqList[0]["id"])

	w, body = doJSON(t, r, http.MethodPost, "/contact",
		`{"name":"Ada","email":"ada@example.com","message":"Do you restock soon?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body["id"].(string), 24)

	w, _ = doJSON(t, r, http.MethodPost, "/contact",
		`{"name":"Ada","email":"nope","message":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStripeIntentMockWithoutCredential(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	w, body := doJSON(t, r, http.MethodPost, "/payments/stripe-intent", `{"amount":1000}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mock_client_secret", body["clientSecret"])
	assert.Equal(t, true, body["mock"])

	w, _ = doJSON(t, r, http.MethodPost, "/payments/stripe-intent", `{"currency":"USD"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "amount is required")
}

func TestPaystackInitMockWithoutCredential(t *testing.T) {
	r := newTestAPI(t, mongodbtest.NewMemStore())

	w, body := doJSON(t, r, http.MethodPost, "/payments/paystack-init",
		`{"email":"ada@example.com","amount":500}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://paystack.mock/checkout", body["authorization_url"])
	assert.Equal(t, "mock_ref", body["reference"])
	assert.Equal(t, true, body["mock"])

	w, _ = doJSON(t, r, http.MethodPost, "/payments/paystack-init", `{"amount":500}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "email is required")
}
