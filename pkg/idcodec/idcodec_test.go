package idcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDisplayID(t *testing.T) {
	assert.Equal(t, "ID-001", ToDisplayID("ID-", 1, 3))
	assert.Equal(t, "PO-00042", PurchaseOrder.Format(42))
	assert.Equal(t, "CUST-OFFER-007", CustomerOffer.Format(7))
	assert.Equal(t, "SUP-1234", Supplier.Format(1234))
}

func TestRoundTrip(t *testing.T) {
	kinds := []Kind{Product, Supplier, Customer, PurchaseOrder, SalesOrder, Campaign, CustomerOffer}
	for _, k := range kinds {
		for _, n := range []int64{0, 1, 9, 42, 999, 1000, 123456} {
			got, err := ToNumericID(ToDisplayID(k.Prefix, n, k.Width))
			require.NoError(t, err, k.Prefix)
			assert.Equal(t, n, got, k.Prefix)
		}
	}
}

func TestToNumericID_Invalid(t *testing.T) {
	for _, id := range []string{"", "XYZ-001", "ID-", "ID-12a", "SUP-001x", "id-001", "-1", "ID--1"} {
		_, err := ToNumericID(id)
		assert.ErrorIs(t, err, ErrInvalidIDFormat, id)
	}
}

func TestToNumericID_BareNumber(t *testing.T) {
	n, err := ToNumericID("0042")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestCustomerOfferIsNotCustomer(t *testing.T) {
	n, err := ToNumericID("CUST-OFFER-003")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, "CUST-OFFER-", PrefixOf("CUST-OFFER-003"))

	_, err = Customer.Parse("CUST-OFFER-003")
	assert.ErrorIs(t, err, ErrInvalidIDFormat)
}

func TestKindParse(t *testing.T) {
	n, err := Supplier.Parse("SUP-002")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = Supplier.Parse("ID-002")
	assert.ErrorIs(t, err, ErrInvalidIDFormat)

	n, err = Product.Parse("17")
	require.NoError(t, err)
	assert.Equal(t, int64(17), n)
}
