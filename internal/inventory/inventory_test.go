package inventory

import (
	"testing"

	"github.com/abryzgalov/motostore/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lowRider = catalog.Entry{Name: "Harley Low Rider", EngineSize: 1746, BasePrice: 18000, PrepRate: 0.01}
	scout    = catalog.Entry{Name: "Indian Scout Bobber", EngineSize: 1133, BasePrice: 11500, PrepRate: 0.01}
	ninja    = catalog.Entry{Name: "Kawasaki Ninja 650", EngineSize: 649, BasePrice: 7999, PrepRate: 0.02}
)

func Test_Inventory_Purchase(t *testing.T) {
	testCases := []struct {
		name             string
		stock            []catalog.Entry
		entry            catalog.Entry
		discount         float64
		expectedPrepTime float64
		expectedCost     float64
		expectError      error
	}{
		{
			name:             "Success - full price",
			stock:            []catalog.Entry{lowRider, scout},
			entry:            lowRider,
			discount:         0,
			expectedPrepTime: 17.46,
			expectedCost:     17999,
		},
		{
			name:             "Success - five percent off the sticker price",
			stock:            []catalog.Entry{lowRider, scout},
			entry:            lowRider,
			discount:         0.05,
			expectedPrepTime: 17.46,
			expectedCost:     17099.05, // 17999 * 0.95
		},
		{
			name:        "Error - entry from another category's stock",
			stock:       []catalog.Entry{lowRider, scout},
			entry:       ninja,
			expectError: ErrNotAvailable,
		},
		{
			name:        "Error - almost the same bike, different base price",
			stock:       []catalog.Entry{lowRider},
			entry:       catalog.Entry{Name: "Harley Low Rider", EngineSize: 1746, BasePrice: 17500, PrepRate: 0.01},
			expectError: ErrNotAvailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			inv := New(catalog.Cruiser, tc.stock)
			// when
			receipt, err := inv.Purchase(tc.entry, tc.discount)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, receipt)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expectedPrepTime, receipt.PrepTime, 1e-9)
			assert.InDelta(t, tc.expectedCost, receipt.Cost, 1e-9)
		})
	}
}

// The discount range is deliberately unconstrained here: a negative or >1
// value flows straight into the cost formula.
func Test_Inventory_Purchase_DiscountUnconstrained(t *testing.T) {
	inv := New(catalog.Cruiser, []catalog.Entry{lowRider})

	over, err := inv.Purchase(lowRider, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 17999*-0.5, over.Cost, 1e-9)

	negative, err := inv.Purchase(lowRider, -0.1)
	require.NoError(t, err)
	assert.InDelta(t, 17999*1.1, negative.Cost, 1e-9)
}

// Stock is never decremented: the same entry can be purchased repeatedly.
func Test_Inventory_Purchase_DoesNotDeplete(t *testing.T) {
	inv := New(catalog.Cruiser, []catalog.Entry{lowRider})
	for range 3 {
		receipt, err := inv.Purchase(lowRider, 0)
		require.NoError(t, err)
		assert.InDelta(t, 17999, receipt.Cost, 1e-9)
	}
	assert.Len(t, inv.Entries(), 1)
}

func Test_Inventory_Entries_Order(t *testing.T) {
	// given
	stock := []catalog.Entry{scout, lowRider}
	inv := New(catalog.Cruiser, stock)
	// then: insertion order is display order, and the list is a copy
	assert.Equal(t, stock, inv.Entries())
	got := inv.Entries()
	got[0] = ninja
	assert.Equal(t, stock, inv.Entries())
}

func Test_Inventory_Category(t *testing.T) {
	inv := New(catalog.Sport, []catalog.Entry{ninja})
	assert.Equal(t, catalog.Sport, inv.Category())
}
