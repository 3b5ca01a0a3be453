package service

import (
	"context"
	"testing"

	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/query"
	"go-backoffice-console/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const supplierList = `[
	{"supplierId":1,"supplierName":"Anadolu Kahve","email":"info@anadolu.com","phone":"+905321234567","city":"Istanbul"},
	{"supplierId":2,"supplierName":"Ege Gida","email":"sales@egegida.com","phone":"02321234567","city":"Izmir"},
	{"supplierId":3,"supplierName":"Karadeniz Cay","email":"cay@karadeniz.com","phone":"+904621234567","city":"Rize"}
]`

func newSupplierService(t *testing.T, routes map[string]reply) (*fakeBackend, SupplierService) {
	b, c := newBackend(t, routes)
	products := NewProductService(repository.NewProductRepo(c), newStore[model.Product]("products", nil))
	return b, NewSupplierService(repository.NewSupplierRepo(c), products, newStore[model.Supplier]("suppliers", nil))
}

func TestSupplierService_ListFallsBackOn500(t *testing.T) {
	_, svc := newSupplierService(t, map[string]reply{"GET /suppliers": fail(500)})
	all := svc.List(context.Background(), query.SupplierFilter{}, false)
	assert.Equal(t, []string{"SUP-001", "SUP-002", "SUP-003"}, ids(all))
}

func TestSupplierService_ListFormatsPhones(t *testing.T) {
	_, svc := newSupplierService(t, map[string]reply{"GET /suppliers": ok(page(supplierList))})
	all := svc.List(context.Background(), query.SupplierFilter{Query: "izmir"}, false)
	require.Len(t, all, 1)
	assert.Equal(t, "SUP-002", all[0].ID)

	first, err := svc.Get(context.Background(), "SUP-001")
	require.NoError(t, err)
	assert.Equal(t, "+90 532 123 4567", first.Phone)
}

func TestSupplierService_CreateValidatesPhone(t *testing.T) {
	b, svc := newSupplierService(t, nil)
	_, err := svc.Create(context.Background(), model.Supplier{
		Name: "Global Coffee", Email: "orders@globalcoffee.com", Phone: "+1-555-0123", City: "Seattle",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, b.count("POST /suppliers"))
}

func TestSupplierService_CreateNormalizesPhone(t *testing.T) {
	b, svc := newSupplierService(t, map[string]reply{
		"GET /suppliers":  ok(page(supplierList)),
		"POST /suppliers": ok(`{"supplierId":4,"supplierName":"Trakya Sut","email":"info@trakya.com","phone":"+902821234567","city":"Edirne"}`),
	})
	created, err := svc.Create(context.Background(), model.Supplier{
		Name: " Trakya Sut ", Email: "info@trakya.com", Phone: "+90 (282) 123-4567", City: "Edirne",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUP-004", created.ID)
	assert.Equal(t, "+90 282 123 4567", created.Phone)
	assert.Contains(t, b.body("POST /suppliers"), `"phone":"+902821234567"`)
	assert.Contains(t, b.body("POST /suppliers"), `"supplierName":"Trakya Sut"`)
}

func TestSupplierService_UpdateBackendFailure(t *testing.T) {
	_, svc := newSupplierService(t, map[string]reply{
		"GET /suppliers":   ok(page(supplierList)),
		"PUT /suppliers/2": fail(503),
	})
	_, err := svc.Update(context.Background(), "SUP-002", model.Supplier{
		Name: "Ege Gida AS", Email: "sales@egegida.com", Phone: "02321234567", City: "Izmir",
	})
	var berr *BackendError
	assert.ErrorAs(t, err, &berr)
}

func TestSupplierService_BatchDelete(t *testing.T) {
	b, svc := newSupplierService(t, map[string]reply{
		"GET /suppliers":               ok(page(supplierList)),
		"GET /products":                ok(page(productList)),
		"POST /suppliers/batch-delete": ok(""),
	})
	ctx := context.Background()
	svc.List(ctx, query.SupplierFilter{}, false)

	report, err := svc.BatchDelete(ctx, []string{"SUP-001", "SUP-003"})
	require.NoError(t, err)
	assert.Equal(t, []string{"SUP-001", "SUP-003"}, report.Deleted)
	assert.Equal(t, []string{"ID-001", "ID-002"}, report.AffectedProducts)
	assert.Contains(t, report.Warning, "Premium Coffee Beans, Organic Green Tea")
	assert.JSONEq(t, `{"supplierIds":[1,3]}`, b.body("POST /suppliers/batch-delete"))
	assert.Equal(t, []string{"SUP-002"}, ids(svc.List(ctx, query.SupplierFilter{}, false)))
}

func TestSupplierService_BatchDeleteFallsBackToSingleDeletes(t *testing.T) {
	b, svc := newSupplierService(t, map[string]reply{
		"GET /suppliers":      ok(page(supplierList)),
		"GET /products":       ok(page("[]")),
		"DELETE /suppliers/1": ok(""),
		"DELETE /suppliers/2": fail(500),
		"DELETE /suppliers/3": ok(""),
	})
	ctx := context.Background()
	svc.List(ctx, query.SupplierFilter{}, false)

	_, err := svc.BatchDelete(ctx, []string{"SUP-001", "SUP-002", "SUP-003"})
	var berr *BackendError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, 1, b.count("POST /suppliers/batch-delete"))
	assert.Equal(t, 0, b.count("DELETE /suppliers/3"))
	assert.Equal(t, []string{"SUP-002", "SUP-003"}, ids(svc.List(ctx, query.SupplierFilter{}, false)))
}

func TestAssociationWarning(t *testing.T) {
	assert.Empty(t, AssociationWarning(nil))
	assert.Equal(t, "Suppliers were associated with products: A, B",
		AssociationWarning([]string{"A", "B"}))
	assert.Equal(t, "Suppliers were associated with products: A, B, C and 2 more",
		AssociationWarning([]string{"A", "B", "C", "D", "E"}))
}
