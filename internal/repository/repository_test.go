package repository

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-backoffice-console/internal/client"
	"go-backoffice-console/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backend(t *testing.T, routes map[string]string) *client.JSONClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return client.NewJSONClient(srv.URL, 0)
}

func TestProductRepo_FindAll(t *testing.T) {
	c := backend(t, map[string]string{
		"GET /products": `{"content":[{"productId":1,"productName":"Beans","inventoryStatus":"RED"}],"page":{"page":0,"size":20,"totalElements":1,"totalPages":1}}`,
	})
	items, err := NewProductRepo(c).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "RED", items[0].InventoryStatus)
}

func TestProductRepo_RejectsMalformedRecords(t *testing.T) {
	c := backend(t, map[string]string{
		"GET /products":   `{"content":[{"productId":1},{"productName":"no id"}],"page":{}}`,
		"GET /products/7": `{"productName":"no id"}`,
	})
	repo := NewProductRepo(c)
	_, err := repo.FindAll(context.Background())
	assert.ErrorIs(t, err, model.ErrMalformedPayload)

	_, err = repo.FindByID(context.Background(), 7)
	assert.ErrorIs(t, err, model.ErrMalformedPayload)
}

func TestProductRepo_DetailAndStock(t *testing.T) {
	c := backend(t, map[string]string{
		"GET /products/1":       `{"productId":1,"productName":"Beans","safetyStock":10,"reorderPoint":20,"currentPrice":"25.99"}`,
		"GET /products/1/stock": `{"productId":1,"quantityOnHand":6,"quantityReserved":1,"quantityAvailable":5}`,
	})
	repo := NewProductRepo(c)
	d, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "25.99", d.CurrentPrice.String())

	s, err := repo.FindStock(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.QuantityAvailable)
}

func TestSupplierRepo_UpdateFillsMissingID(t *testing.T) {
	c := backend(t, map[string]string{"PUT /suppliers/4": `{}`})
	s, err := NewSupplierRepo(c).Update(context.Background(), 4, model.SupplierPayload{SupplierName: "X"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), s.SupplierID)
}

func TestSupplierRepo_BatchDeleteUnsupported(t *testing.T) {
	c := backend(t, map[string]string{})
	err := NewSupplierRepo(c).BatchDelete(context.Background(), []int64{1, 2})
	assert.Equal(t, http.StatusNotFound, client.StatusOf(err))
}

func TestOrderRepo_Items(t *testing.T) {
	c := backend(t, map[string]string{
		"GET /sales-orders":         `{"content":[{"salesOrderId":1,"customerId":2,"status":"PENDING"}],"page":{}}`,
		"GET /sales-orders/1/items": `{"content":[{"salesOrderItemId":9,"productId":3,"quantity":2,"lineTotal":10}],"page":{}}`,
	})
	repo := NewOrderRepo(c)
	orders, err := repo.FindSalesOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	items, err := repo.FindSalesOrderItems(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "10", items[0].LineTotal.String())

	_, err = repo.FindPurchaseOrders(context.Background())
	assert.Error(t, err)
}

func TestCampaignRepo(t *testing.T) {
	c := backend(t, map[string]string{
		"GET /campaigns":               `{"content":[{"campaignId":1,"campaignType":"DISCOUNT","products":[]}],"page":{}}`,
		"GET /customer-special-offers": `{"content":[{"specialOfferId":2,"customerId":4,"percentOff":15}],"page":{}}`,
	})
	repo := NewCampaignRepo(c)
	camps, err := repo.FindProductCampaigns(context.Background())
	require.NoError(t, err)
	assert.Len(t, camps, 1)
	offers, err := repo.FindCustomerOffers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), offers[0].CustomerID)
}

func TestCustomerRepo(t *testing.T) {
	c := backend(t, map[string]string{
		"GET /customers": `{"content":[{"customerId":1,"customerName":"A","segment":"SME"}],"page":{}}`,
	})
	cs, err := NewCustomerRepo(c).FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SME", cs[0].Segment)
}
