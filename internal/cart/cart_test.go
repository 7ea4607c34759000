package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
)

var (
	svcCut   = catalog.Service{ID: "svc-1", Name: "Haircut", Price: 35, DurationMinutes: 45}
	svcColor = catalog.Service{ID: "svc-2", Name: "Coloring", Price: 80, DurationMinutes: 90}
	prodOil  = catalog.Product{ID: "prod-1", Name: "Argan Oil", Price: 18.5}
	prodWax  = catalog.Product{ID: "prod-2", Name: "Styling Wax", Price: 12}
)

func TestAddServiceIsIdempotent(t *testing.T) {
	once := Cart{}.AddService(svcCut)
	twice := once.AddService(svcCut)

	require.Equal(t, 1, once.Len())
	assert.Equal(t, once.Entries(), twice.Entries())
	assert.Equal(t, 1, twice.Entries()[0].Quantity)
}

func TestAddProductAccumulatesQuantity(t *testing.T) {
	c := Cart{}.AddProduct(prodOil).AddProduct(prodOil).AddProduct(prodWax)

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.ProductQuantity("prod-1"))
	assert.Equal(t, 1, c.ProductQuantity("prod-2"))
}

func TestSetProductQuantity(t *testing.T) {
	tests := map[string]struct {
		qty          int
		wantInCart   bool
		wantQuantity int
	}{
		"absolute set, not relative": {qty: 1, wantInCart: true, wantQuantity: 1},
		"larger than current":        {qty: 7, wantInCart: true, wantQuantity: 7},
		"zero removes the line":      {qty: 0, wantInCart: false, wantQuantity: 0},
		"negative removes the line":  {qty: -3, wantInCart: false, wantQuantity: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := Cart{}.AddProduct(prodOil).AddProduct(prodOil) // quantity 2
			c = c.SetProductQuantity("prod-1", tc.qty)

			assert.Equal(t, tc.wantInCart, c.HasProduct("prod-1"))
			assert.Equal(t, tc.wantQuantity, c.ProductQuantity("prod-1"))
		})
	}
}

func TestSetQuantityOfAbsentProductIsNoop(t *testing.T) {
	c := Cart{}.AddService(svcCut)
	got := c.SetProductQuantity("prod-1", 5)

	assert.Equal(t, c.Entries(), got.Entries())
	assert.False(t, got.HasProduct("prod-1"))
}

func TestRemoveDropsAnyType(t *testing.T) {
	c := Cart{}.AddService(svcCut).AddProduct(prodOil)

	c = c.Remove("svc-1")
	assert.False(t, c.HasService("svc-1"))
	assert.True(t, c.HasProduct("prod-1"))

	c = c.Remove("prod-1")
	assert.True(t, c.IsEmpty())

	// absent id is a no-op
	c = c.Remove("nope")
	assert.True(t, c.IsEmpty())
}

func TestUniquenessByTypeAndID(t *testing.T) {
	c := Cart{}
	for i := 0; i < 4; i++ {
		c = c.AddService(svcCut)
		c = c.AddProduct(prodOil)
		c = c.AddService(svcColor)
	}

	seen := map[string]bool{}
	for _, e := range c.Entries() {
		key := string(e.Type) + "/" + e.ID
		require.False(t, seen[key], "duplicate entry %s", key)
		seen[key] = true
	}
	assert.Equal(t, 3, c.Len())
}

func TestMutationsDoNotAliasReceiver(t *testing.T) {
	base := Cart{}.AddProduct(prodOil)
	bumped := base.AddProduct(prodOil)

	assert.Equal(t, 1, base.ProductQuantity("prod-1"))
	assert.Equal(t, 2, bumped.ProductQuantity("prod-1"))
}

func TestTotal(t *testing.T) {
	c := Cart{}.AddService(svcCut).AddProduct(prodOil).AddProduct(prodOil)
	assert.InDelta(t, 35+2*18.5, c.Total(), 1e-9)

	assert.Zero(t, Cart{}.Total())
}

func TestFromEntriesNormalizes(t *testing.T) {
	entries := []Entry{
		{Type: EntryService, ID: "svc-1", Service: &svcCut, Quantity: 3}, // clamped to 1
		{Type: EntryService, ID: "svc-1", Service: &svcCut, Quantity: 1}, // duplicate dropped
		{Type: EntryProduct, ID: "prod-1", Product: &prodOil, Quantity: 2},
	}

	c := FromEntries(entries)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Entries()[0].Quantity)
	assert.Equal(t, 2, c.ProductQuantity("prod-1"))
}
