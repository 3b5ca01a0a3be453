package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-backoffice-console/internal/changefeed"
	"go-backoffice-console/internal/client"
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/repository"
	"go-backoffice-console/internal/service"
	"go-backoffice-console/internal/store"
	"go-backoffice-console/pkg/clock"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productPage = `{"content":[
	{"productId":1,"productName":"Premium Coffee Beans","category":"Beverages","unitOfMeasure":"kg","quantityAvailable":5,"inventoryStatus":"YELLOW"},
	{"productId":2,"productName":"Organic Green Tea","category":"Beverages","unitOfMeasure":"boxes","quantityAvailable":40,"inventoryStatus":"GREEN"}
],"page":{"page":0,"size":20,"totalElements":2,"totalPages":1}}`

// newTestApp wires every handler to real services over a stub backend.
// Paths missing from routes answer 404, which sends lists to their fallback data.
func newTestApp(t *testing.T, routes map[string]string) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if body == "500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c := client.NewJSONClient(srv.URL, 0)
	clk := clock.NewFake(time.Date(2024, 9, 20, 12, 0, 0, 0, time.UTC))
	seq := &store.Sequence{}
	productStore := store.New[model.Product]("products", clk, seq)
	supplierStore := store.New[model.Supplier]("suppliers", clk, seq)
	customerStore := store.New[model.Customer]("customers", clk, seq)
	orderStore := store.New[model.Order]("orders", clk, seq)
	campaignStore := store.New[model.Campaign]("campaigns", clk, seq)
	feed := changefeed.New()
	feed.Attach(productStore, supplierStore, customerStore, orderStore, campaignStore)

	products := service.NewProductService(repository.NewProductRepo(c), productStore)
	suppliers := service.NewSupplierService(repository.NewSupplierRepo(c), products, supplierStore)
	customers := service.NewCustomerService(repository.NewCustomerRepo(c), customerStore)
	orders := service.NewOrderService(repository.NewOrderRepo(c), orderStore, 4, products, suppliers, customers)
	campaigns := service.NewCampaignService(repository.NewCampaignRepo(c), campaignStore, clk)
	insights := service.NewInsightService(client.NewPlanner(c), client.NewForecaster(c), client.NewReporter(c),
		nil, clk, service.InsightOptions{CacheTTL: time.Minute})

	app := fiber.New()
	Handlers{
		Products:  NewProductHandler(products, insights),
		Suppliers: NewSupplierHandler(suppliers),
		Customers: NewCustomerHandler(customers),
		Orders:    NewOrderHandler(orders),
		Campaigns: NewCampaignHandler(campaigns),
		Insights:  NewInsightHandler(insights),
		Changes:   NewChangeHandler(feed, nil, clk),
	}.Register(app.Group("/api/v1"))
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestProductListAndSelection(t *testing.T) {
	app := newTestApp(t, map[string]string{"GET /products": productPage})

	status, body := call(t, app, "GET", "/api/v1/products", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2.0, body["total"])
	assert.Equal(t, 0.0, body["selectedCount"])

	status, body = call(t, app, "POST", "/api/v1/products/ID-002/select", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["selected"])

	_, body = call(t, app, "GET", "/api/v1/products?q=tea", "")
	rows := body["data"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, true, row["selected"])
	assert.Equal(t, "ID-002", row["item"].(map[string]any)["id"])

	status, _ = call(t, app, "DELETE", "/api/v1/products/selection", "")
	assert.Equal(t, http.StatusNoContent, status)
	_, body = call(t, app, "GET", "/api/v1/products", "")
	assert.Equal(t, 0.0, body["selectedCount"])

	status, _ = call(t, app, "POST", "/api/v1/products/ID-404/select", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestErrorMapping(t *testing.T) {
	app := newTestApp(t, map[string]string{
		"GET /products":   productPage,
		"PUT /products/2": "500",
	})

	status, _ := call(t, app, "GET", "/api/v1/products/SUP-001", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := call(t, app, "POST", "/api/v1/products", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid JSON", body["error"])

	status, body = call(t, app, "POST", "/api/v1/products", `{"name":"X"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.NotEmpty(t, body["details"])

	status, _ = call(t, app, "PUT", "/api/v1/products/ID-002",
		`{"name":"Green Tea","category":"Beverages","unit":"boxes"}`)
	assert.Equal(t, http.StatusBadGateway, status)

	status, _ = call(t, app, "GET", "/api/v1/products/ID-001", "")
	assert.Equal(t, http.StatusBadGateway, status)

	status, _ = call(t, app, "GET", "/api/v1/orders/SO-99999", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestOrderRoutes(t *testing.T) {
	app := newTestApp(t, nil)

	_, body := call(t, app, "GET", "/api/v1/orders?type=purchase", "")
	rows := body["data"].([]any)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.NotEmpty(t, r.(map[string]any)["statusColor"])
	}

	status, body := call(t, app, "POST", "/api/v1/orders/PO-00003/advance", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "canceled", body["data"].(map[string]any)["status"])
	assert.Equal(t, "#d64545", body["statusColor"])

	status, _ = call(t, app, "PUT", "/api/v1/orders/PO-00003/status", `{"status":"delivered"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, body = call(t, app, "PUT", "/api/v1/orders/PO-00003/status", `{"status":"placed"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "rgb(51, 0, 204)", body["statusColor"])
}

func TestBulkDeleteUsesSelection(t *testing.T) {
	app := newTestApp(t, nil)

	status, body := call(t, app, "POST", "/api/v1/customers/bulk-delete", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No items selected", body["error"])

	call(t, app, "GET", "/api/v1/customers", "")
	call(t, app, "POST", "/api/v1/customers/CUST-001/select", "")
	call(t, app, "POST", "/api/v1/customers/CUST-003/select", "")
	status, body = call(t, app, "POST", "/api/v1/customers/bulk-delete", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"CUST-001", "CUST-003"}, body["deleted"])

	status, body = call(t, app, "POST", "/api/v1/campaigns/bulk-delete", `{"ids":["CAMP-001"]}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"CAMP-001"}, body["deleted"])

	_, body = call(t, app, "GET", "/api/v1/customers", "")
	assert.Equal(t, 2.0, body["total"])
}

func TestChangeFeed(t *testing.T) {
	app := newTestApp(t, nil)

	status, body := call(t, app, "POST", "/api/v1/customers",
		`{"name":"Metro Office","segment":"sme","email":"fm@metro.com","phone":"555","city":"Houston"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "CUST-501", body["data"].(map[string]any)["id"])

	_, body = call(t, app, "GET", "/api/v1/changes?since=0", "")
	changes := body["data"].([]any)
	require.NotEmpty(t, changes)
	last := changes[len(changes)-1].(map[string]any)
	assert.Equal(t, "customers", last["entity"])
	assert.Equal(t, "upsert", last["op"])
	assert.Equal(t, []any{"CUST-501"}, last["ids"])
	assert.Equal(t, last["seq"], body["last"])

	_, body = call(t, app, "GET", "/api/v1/changes?since=100", "")
	assert.Empty(t, body["data"])

	status, _ = call(t, app, "GET", "/api/v1/changes/history", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestInsightRoutes(t *testing.T) {
	app := newTestApp(t, map[string]string{
		"GET /plan":     `{"message":"Reorder 40 kg"}`,
		"POST /forecast": `{"forecasts":[{"productId":1,"daily":[],"sum":12}],"modelVersion":"v3"}`,
	})

	status, body := call(t, app, "GET", "/api/v1/products/ID-001/suggestion", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Reorder 40 kg", body["message"])
	assert.Equal(t, "2024-09-27", body["asOfDate"])

	status, body = call(t, app, "GET", "/api/v1/products/CUST-1/suggestion", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid product ID format", body["data"].(map[string]any)["message"])

	status, _ = call(t, app, "POST", "/api/v1/forecast", `{"productIds":[1],"horizonDays":3}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, body = call(t, app, "POST", "/api/v1/forecast", `{"productIds":[1],"horizonDays":7}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "v3", body["modelVersion"])

	status, _ = call(t, app, "GET", "/api/v1/products/ID-001/sales-chart", "")
	assert.Equal(t, http.StatusBadGateway, status)
}
