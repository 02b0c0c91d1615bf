// Package service provides the dealership business logic behind the
// transports: catalog listing and single/batch purchases over the showroom.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abryzgalov/motostore/internal/catalog"
	"github.com/abryzgalov/motostore/internal/inventory"
	"github.com/abryzgalov/motostore/internal/showroom"
	"github.com/abryzgalov/motostore/pkg/messaging"
	"github.com/abryzgalov/motostore/pkg/messaging/events"
	"github.com/google/uuid"
)

// DealerService defines the operations the transports depend on.
type DealerService interface {
	// Catalog returns every floor section with its stock, in display order.
	Catalog(ctx context.Context) ([]CategoryDto, error)

	// CatalogByCategory returns one section's stock.
	// Returns ErrUnknownCategory for a name outside the fixed set.
	CatalogByCategory(ctx context.Context, category string) (*CategoryDto, error)

	// Purchase sells a single bike.
	// Returns ErrUnknownCategory or inventory.ErrNotAvailable on failure.
	Purchase(ctx context.Context, purchase PurchaseDto) (*ReceiptDto, error)

	// PurchaseBatch walks a list of bikes against one section and returns
	// the sold/unavailable partition. Per-bike failures never fail the call.
	PurchaseBatch(ctx context.Context, batch BatchPurchaseDto) (*BatchResultDto, error)
}

// Service implements DealerService over the showroom coordinator.
type Service struct {
	showroom  *showroom.Showroom
	publisher messaging.Publisher
	logger    *slog.Logger
}

var _ DealerService = (*Service)(nil)

// NewService creates the dealership service. Purchase events go to the
// given publisher; pass a noop publisher when messaging is disabled.
func NewService(sr *showroom.Showroom, publisher messaging.Publisher, logger *slog.Logger) *Service {
	return &Service{
		showroom:  sr,
		publisher: publisher,
		logger:    logger.With("component", "service"),
	}
}

// BikeDto represents one catalog entry with its derived fields.
type BikeDto struct {
	Name       string  `json:"name"`
	EngineSize int     `json:"engine_size"`
	Price      int64   `json:"price"`
	PrepTime   float64 `json:"prep_time"`
}

// CategoryDto represents one floor section and its stock.
type CategoryDto struct {
	Category string    `json:"category"`
	Bikes    []BikeDto `json:"bikes"`
}

// PurchaseDto represents a single purchase request. The discount range is
// enforced here at the transport edge; the core accepts any value.
type PurchaseDto struct {
	Category string  `json:"category" validate:"required"`
	Bike     string  `json:"bike"     validate:"required"`
	Discount float64 `json:"discount" validate:"gte=0,lte=1"`
}

// BatchPurchaseDto represents a batch purchase against one category.
type BatchPurchaseDto struct {
	Category string   `json:"category" validate:"required"`
	Bikes    []string `json:"bikes"    validate:"required,gt=0,dive,required"`
	Discount float64  `json:"discount" validate:"gte=0,lte=1"`
}

// ReceiptDto represents the outcome of one successful purchase. Total is
// the cost with fractions dropped, the figure shown to the customer.
type ReceiptDto struct {
	ID       string  `json:"id"`
	Bike     string  `json:"bike"`
	Category string  `json:"category"`
	PrepTime float64 `json:"prep_time"`
	Cost     float64 `json:"cost"`
	Total    int64   `json:"total"`
}

// BatchResultDto partitions a batch purchase into sold and unavailable.
type BatchResultDto struct {
	Sold        []ReceiptDto `json:"sold"`
	Unavailable []string     `json:"unavailable"`
}

// Catalog returns every section with its stock, in display order.
func (s *Service) Catalog(_ context.Context) ([]CategoryDto, error) {
	handlers := s.showroom.Handlers()
	sections := make([]CategoryDto, len(handlers))
	for i, h := range handlers {
		sections[i] = toCategoryDto(h)
	}
	return sections, nil
}

// CatalogByCategory returns one section's stock.
func (s *Service) CatalogByCategory(_ context.Context, category string) (*CategoryDto, error) {
	h, err := s.handlerFor(category)
	if err != nil {
		return nil, err
	}
	dto := toCategoryDto(h)
	return &dto, nil
}

// Purchase sells a single bike through the showroom, so the console
// confirmation contract is honored for API sales too.
func (s *Service) Purchase(ctx context.Context, purchase PurchaseDto) (*ReceiptDto, error) {
	h, err := s.handlerFor(purchase.Category)
	if err != nil {
		return nil, err
	}
	entry, ok := findEntry(h, purchase.Bike)
	if !ok {
		return nil, fmt.Errorf("failed to purchase %q: %w", purchase.Bike, inventory.ErrNotAvailable)
	}
	if !s.showroom.Buy(entry, h, purchase.Discount) {
		return nil, fmt.Errorf("failed to purchase %q: %w", purchase.Bike, inventory.ErrNotAvailable)
	}
	receipt := toReceiptDto(entry, h.Category(), purchase.Discount)
	s.publishPurchase(ctx, receipt)
	return &receipt, nil
}

// PurchaseBatch resolves the requested names against the section's stock
// and hands the whole list to the showroom. Names the section does not
// stock are passed through as bare entries; the inventory rejects them and
// they land in the unavailable partition.
func (s *Service) PurchaseBatch(ctx context.Context, batch BatchPurchaseDto) (*BatchResultDto, error) {
	h, err := s.handlerFor(batch.Category)
	if err != nil {
		return nil, err
	}
	entries := make([]catalog.Entry, 0, len(batch.Bikes))
	for _, name := range batch.Bikes {
		if entry, ok := findEntry(h, name); ok {
			entries = append(entries, entry)
		} else {
			entries = append(entries, catalog.Entry{Name: name})
		}
	}

	sold, unavailable := s.showroom.BuyMultiple(entries, h, batch.Discount)

	result := &BatchResultDto{
		Sold:        make([]ReceiptDto, 0, len(sold)),
		Unavailable: make([]string, 0, len(unavailable)),
	}
	for _, entry := range sold {
		receipt := toReceiptDto(entry, h.Category(), batch.Discount)
		s.publishPurchase(ctx, receipt)
		result.Sold = append(result.Sold, receipt)
	}
	for _, entry := range unavailable {
		result.Unavailable = append(result.Unavailable, entry.Name)
	}
	return result, nil
}

// handlerFor resolves a category name to its floor section.
func (s *Service) handlerFor(category string) (inventory.Handler, error) {
	cat, err := catalog.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	h, ok := s.showroom.Handler(cat)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return h, nil
}

// publishPurchase emits the purchase event. Delivery is best effort: a
// broker failure is logged and the sale stands.
func (s *Service) publishPurchase(ctx context.Context, receipt ReceiptDto) {
	event := events.PurchaseCompletedEvent{
		ReceiptID:  uuid.MustParse(receipt.ID),
		Bike:       receipt.Bike,
		Category:   receipt.Category,
		Total:      receipt.Total,
		PrepTime:   receipt.PrepTime,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish purchase event", "receipt_id", receipt.ID, "error", err)
	}
}

// findEntry resolves a bike name within one section's stock.
func findEntry(h inventory.Handler, name string) (catalog.Entry, bool) {
	for _, entry := range h.Entries() {
		if entry.Name == name {
			return entry, true
		}
	}
	return catalog.Entry{}, false
}

// toCategoryDto converts a handler's stock to its DTO.
func toCategoryDto(h inventory.Handler) CategoryDto {
	entries := h.Entries()
	bikes := make([]BikeDto, len(entries))
	for i, entry := range entries {
		bikes[i] = BikeDto{
			Name:       entry.Name,
			EngineSize: entry.EngineSize,
			Price:      int64(entry.StickerPrice()),
			PrepTime:   entry.PrepTime(),
		}
	}
	return CategoryDto{
		Category: h.Category().String(),
		Bikes:    bikes,
	}
}

// toReceiptDto computes the receipt for a sold entry. Prep time and cost
// are pure functions of the entry and the discount.
func toReceiptDto(entry catalog.Entry, category catalog.Category, discount float64) ReceiptDto {
	cost := entry.StickerPrice() * (1 - discount)
	return ReceiptDto{
		ID:       uuid.NewString(),
		Bike:     entry.Name,
		Category: category.String(),
		PrepTime: entry.PrepTime(),
		Cost:     cost,
		Total:    int64(cost),
	}
}
