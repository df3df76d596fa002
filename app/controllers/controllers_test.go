package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwisetyadi/warungpos/app/controllers"
	"github.com/dwisetyadi/warungpos/app/repositories"
	"github.com/dwisetyadi/warungpos/app/routes"
	"github.com/dwisetyadi/warungpos/app/services"
	"github.com/dwisetyadi/warungpos/pkg/router"
)

func newServer() *httptest.Server {
	itemRepo := repositories.NewMemoryItemRepository()
	categoryRepo := repositories.NewMemoryCategoryRepository()
	receiptRepo := repositories.NewMemoryReceiptRepository()

	categorySvc := services.NewCategoryService(categoryRepo, itemRepo)
	itemSvc := services.NewItemService(itemRepo, categorySvc)

	r := router.New()
	routes.RegisterAPI(r, routes.Controllers{
		Items:      controllers.NewItemController(itemSvc),
		Categories: controllers.NewCategoryController(categorySvc),
		Receipts:   controllers.NewReceiptController(services.NewReceiptService(receiptRepo)),
		Auth:       controllers.NewAuthController(services.NewAuthService()),
	})
	return httptest.NewServer(r.Handler())
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestItemStoreCreatesThenMerges(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	body := `{"name":"Es Teh","price":5000,"quantity":10,"category":"Minuman"}`
	resp, env := doJSON(t, http.MethodPost, ts.URL+"/api/items", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := env["data"].(map[string]interface{})
	id := data["id"].(string)
	require.NotEmpty(t, id)

	// Same name again: 200 with accumulated quantity, not a second document.
	restock := `{"name":"Es Teh","price":5500,"quantity":5,"category":"Minuman"}`
	resp, env = doJSON(t, http.MethodPost, ts.URL+"/api/items", restock)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data = env["data"].(map[string]interface{})
	assert.Equal(t, id, data["id"])
	assert.Equal(t, 15.0, data["quantity"])
	assert.Equal(t, 5500.0, data["price"])
}

func TestItemStoreValidation(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	cases := []string{
		`{"price":5000,"quantity":10,"category":"Minuman"}`,          // missing name
		`{"name":"X","quantity":10,"category":"Minuman"}`,            // missing price
		`{"name":"X","price":-1,"quantity":10,"category":"Minuman"}`, // negative price
		`{"name":"X","price":1,"quantity":-2,"category":"Minuman"}`,  // negative quantity
	}
	for _, body := range cases {
		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/items", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %s", body)
	}
}

func TestItemStoreZeroValuesAccepted(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	body := `{"name":"Promo","price":0,"quantity":0,"category":"Promo"}`
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/items", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestItemShowBadAndMissingID(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/items/zzz", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/items/64a0f0f0f0f0f0f0f0f0f0f0", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItemUpdateAndDestroy(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	_, env := doJSON(t, http.MethodPost, ts.URL+"/api/items",
		`{"name":"Kopi","price":6000,"quantity":10,"category":"Minuman"}`)
	id := env["data"].(map[string]interface{})["id"].(string)

	resp, env := doJSON(t, http.MethodPut, ts.URL+"/api/items/"+id,
		`{"name":"Kopi Susu","price":8000,"quantity":3,"category":"Minuman"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Kopi Susu", env["data"].(map[string]interface{})["name"])

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/items/"+id, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/items/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategoryLifecycle(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/categories", `{"name":"Minuman"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate under a different casing is rejected.
	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/categories", `{"name":"MINUMAN"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env := doJSON(t, http.MethodGet, ts.URL+"/api/categories", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []interface{}{"Minuman"}, env["data"])

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/categories?name=minuman", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/categories?name=minuman", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategoryDeleteCascadesToItems(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	doJSON(t, http.MethodPost, ts.URL+"/api/items",
		`{"name":"Teh","price":5000,"quantity":1,"category":"Minuman"}`)
	doJSON(t, http.MethodPost, ts.URL+"/api/items",
		`{"name":"Nasi","price":10000,"quantity":1,"category":"Makanan"}`)

	resp, env := doJSON(t, http.MethodDelete, ts.URL+"/api/categories?name=Minuman", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, env["data"].(map[string]interface{})["items_removed"])

	_, env = doJSON(t, http.MethodGet, ts.URL+"/api/items", "")
	items := env["data"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Nasi", items[0].(map[string]interface{})["name"])
}

func TestReceiptFlow(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	resp, env := doJSON(t, http.MethodPost, ts.URL+"/api/receipts",
		`{"lines":[{"name":"Teh","price":5000,"quantity":2},{"price":"oops"}]}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := env["data"].(map[string]interface{})
	id := data["id"].(string)
	assert.Equal(t, 10000.0, data["total"])

	resp, env = doJSON(t, http.MethodGet, ts.URL+"/api/receipts/"+id, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	lines := env["data"].(map[string]interface{})["lines"].([]interface{})
	require.Len(t, lines, 2)
	assert.Equal(t, "", lines[1].(map[string]interface{})["name"])

	resp, env = doJSON(t, http.MethodGet, ts.URL+"/api/receipts", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, env["data"].([]interface{}), 1)

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/receipts/"+id, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReceiptStoreAcceptsNonObjectLines(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	// A scalar line is archived as an empty line, never rejected.
	resp, env := doJSON(t, http.MethodPost, ts.URL+"/api/receipts", `{"lines":[5]}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := env["data"].(map[string]interface{})
	lines := data["lines"].([]interface{})
	require.Len(t, lines, 1)
	first := lines[0].(map[string]interface{})
	assert.Equal(t, "", first["name"])
	assert.Equal(t, 0.0, first["price"])
	assert.Equal(t, 0.0, first["quantity"])
	assert.Equal(t, 0.0, data["total"])
}

func TestReceiptStoreRejectsEmptyLines(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/receipts", `{"lines":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	// No AUTH_PASSWORD_HASH configured, so every login fails closed.
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/login",
		`{"username":"admin","password":"guess"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
