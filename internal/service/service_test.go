package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/abryzgalov/motostore/internal/catalog"
	"github.com/abryzgalov/motostore/internal/inventory"
	"github.com/abryzgalov/motostore/internal/showroom"
	"github.com/abryzgalov/motostore/pkg/messaging"
	"github.com/abryzgalov/motostore/pkg/messaging/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lowRider = catalog.Entry{Name: "Harley Low Rider", EngineSize: 1746, BasePrice: 18000, PrepRate: 0.01}
	ninja    = catalog.Entry{Name: "Kawasaki Ninja 650", EngineSize: 649, BasePrice: 7999, PrepRate: 0.02}
)

// mockPublisher is a mock implementation of the messaging.Publisher interface
type mockPublisher struct {
	published []messaging.Event
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, event messaging.Event) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, event)
	return nil
}

func newTestService(t *testing.T, publisher messaging.Publisher) *Service {
	t.Helper()
	handlers := []inventory.Handler{
		inventory.New(catalog.Cruiser, []catalog.Entry{lowRider}),
		inventory.New(catalog.Sport, []catalog.Entry{ninja}),
	}
	// randomness disabled so batch outcomes are deterministic
	sr := showroom.New(handlers, io.Discard, func() bool { return false })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(sr, publisher, logger)
}

func Test_Service_Catalog(t *testing.T) {
	// given
	svc := newTestService(t, &mockPublisher{})
	// when
	sections, err := svc.Catalog(context.Background())
	// then
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "cruisers", sections[0].Category)
	assert.Equal(t, "sport", sections[1].Category)
	require.Len(t, sections[0].Bikes, 1)
	assert.Equal(t, BikeDto{Name: "Harley Low Rider", EngineSize: 1746, Price: 17999, PrepTime: 17.46}, sections[0].Bikes[0])
}

func Test_Service_CatalogByCategory(t *testing.T) {
	testCases := []struct {
		name        string
		category    string
		expectedLen int
		expectError error
	}{
		{name: "Success - sport", category: "sport", expectedLen: 1},
		{name: "Error - category outside the fixed set", category: "mopeds", expectError: ErrUnknownCategory},
		{name: "Error - known tag with no floor section", category: "touring", expectError: ErrUnknownCategory},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := newTestService(t, &mockPublisher{})
			// when
			section, err := svc.CatalogByCategory(context.Background(), tc.category)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, section)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.category, section.Category)
			assert.Len(t, section.Bikes, tc.expectedLen)
		})
	}
}

func Test_Service_Purchase(t *testing.T) {
	testCases := []struct {
		name        string
		purchase    PurchaseDto
		expectError error
	}{
		{
			name:     "Success - discounted cruiser",
			purchase: PurchaseDto{Category: "cruisers", Bike: "Harley Low Rider", Discount: 0.05},
		},
		{
			name:        "Error - unknown category",
			purchase:    PurchaseDto{Category: "mopeds", Bike: "Harley Low Rider"},
			expectError: ErrUnknownCategory,
		},
		{
			name:        "Error - bike stocked by another floor",
			purchase:    PurchaseDto{Category: "cruisers", Bike: "Kawasaki Ninja 650"},
			expectError: inventory.ErrNotAvailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			publisher := &mockPublisher{}
			svc := newTestService(t, publisher)
			// when
			receipt, err := svc.Purchase(context.Background(), tc.purchase)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, receipt)
				assert.Empty(t, publisher.published)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Harley Low Rider", receipt.Bike)
			assert.Equal(t, "cruisers", receipt.Category)
			assert.InDelta(t, 17.46, receipt.PrepTime, 1e-9)
			assert.InDelta(t, 17099.05, receipt.Cost, 1e-9) // 17999 * 0.95
			assert.Equal(t, int64(17099), receipt.Total)
			_, uuidErr := uuid.Parse(receipt.ID)
			assert.NoError(t, uuidErr)

			require.Len(t, publisher.published, 1)
			event, ok := publisher.published[0].(events.PurchaseCompletedEvent)
			require.True(t, ok)
			assert.Equal(t, "Harley Low Rider", event.Bike)
			assert.Equal(t, int64(17099), event.Total)
			assert.Equal(t, messaging.PurchasesCompletedSubject, event.Subject())
		})
	}
}

// A broker failure must not undo the sale.
func Test_Service_Purchase_PublisherFailure(t *testing.T) {
	// given
	publisher := &mockPublisher{err: errors.New("broker down")}
	svc := newTestService(t, publisher)
	// when
	receipt, err := svc.Purchase(context.Background(), PurchaseDto{Category: "cruisers", Bike: "Harley Low Rider"})
	// then
	require.NoError(t, err)
	assert.NotNil(t, receipt)
}

func Test_Service_PurchaseBatch(t *testing.T) {
	testCases := []struct {
		name                string
		batch               BatchPurchaseDto
		expectedSold        []string
		expectedUnavailable []string
		expectError         error
	}{
		{
			name:                "Mixed - one sold, one not stocked",
			batch:               BatchPurchaseDto{Category: "cruisers", Bikes: []string{"Harley Low Rider", "Kawasaki Ninja 650"}},
			expectedSold:        []string{"Harley Low Rider"},
			expectedUnavailable: []string{"Kawasaki Ninja 650"},
		},
		{
			name:                "All unavailable - nothing the floor stocks",
			batch:               BatchPurchaseDto{Category: "sport", Bikes: []string{"Harley Low Rider"}},
			expectedSold:        []string{},
			expectedUnavailable: []string{"Harley Low Rider"},
		},
		{
			name:        "Error - unknown category",
			batch:       BatchPurchaseDto{Category: "mopeds", Bikes: []string{"Harley Low Rider"}},
			expectError: ErrUnknownCategory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			publisher := &mockPublisher{}
			svc := newTestService(t, publisher)
			// when
			result, err := svc.PurchaseBatch(context.Background(), tc.batch)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)

			soldNames := make([]string, 0, len(result.Sold))
			for _, receipt := range result.Sold {
				soldNames = append(soldNames, receipt.Bike)
			}
			assert.Equal(t, tc.expectedSold, soldNames)
			assert.Equal(t, tc.expectedUnavailable, result.Unavailable)
			// every requested bike lands in exactly one partition
			assert.Equal(t, len(tc.batch.Bikes), len(result.Sold)+len(result.Unavailable))
			// one event per sale
			assert.Len(t, publisher.published, len(result.Sold))
		})
	}
}
