package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	ratesdomain "orders-retriever/internal/features/rates/domain"
	"orders-retriever/internal/features/retrieval/domain"
)

// assemble flattens raw pages into the two normalized tables. Every monetary
// field is converted with the requested day's rate, timestamps are coerced to
// UTC and flags to booleans. Assembly is all-or-nothing: any conversion
// failure or consistency violation discards both tables.
func (r *Retriever) assemble(ctx context.Context, pages []domain.RawPage, date string) ([]domain.OrderRecord, []domain.ItemRecord, error) {
	var orders []domain.OrderRecord
	seen := make(map[string]bool)
	for _, page := range pages {
		for _, raw := range page.Orders {
			if seen[raw.AmazonOrderID] {
				return nil, nil, &domain.AssemblyError{
					OrderID: raw.AmazonOrderID,
					Reason:  "order listed more than once",
				}
			}
			seen[raw.AmazonOrderID] = true

			order, err := r.buildOrder(ctx, raw, date)
			if err != nil {
				return nil, nil, err
			}
			orders = append(orders, order)
		}
	}

	var items []domain.ItemRecord
	for _, page := range pages {
		for _, raw := range page.Items {
			if !seen[raw.AmazonOrderID] {
				return nil, nil, &domain.AssemblyError{
					OrderID: raw.AmazonOrderID,
					Reason:  fmt.Sprintf("item %s references an order absent from the retrieval", raw.OrderItemID),
				}
			}

			item, err := r.buildItem(ctx, raw, date)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, item)
		}
	}

	return orders, items, nil
}

func (r *Retriever) buildOrder(ctx context.Context, raw domain.RawOrder, date string) (domain.OrderRecord, error) {
	order := domain.OrderRecord{
		AmazonOrderID:                raw.AmazonOrderID,
		OrderStatus:                  raw.OrderStatus,
		FulfillmentChannel:           raw.FulfillmentChannel,
		SalesChannel:                 raw.SalesChannel,
		ShipServiceLevel:             raw.ShipServiceLevel,
		NumberOfItemsShipped:         raw.NumberOfItemsShipped,
		NumberOfItemsUnshipped:       raw.NumberOfItemsUnshipped,
		IsReplacementOrder:           parseFlag(raw.IsReplacementOrder),
		MarketplaceID:                raw.MarketplaceID,
		ShipmentServiceLevelCategory: raw.ShipmentServiceLevelCategory,
		IsPrime:                      raw.IsPrime,
		IsGlobalExpressEnabled:       raw.IsGlobalExpressEnabled,
		IsPremiumOrder:               raw.IsPremiumOrder,
	}

	timestamps := []struct {
		value string
		dst   **time.Time
	}{
		{raw.PurchaseDate, &order.PurchaseDate},
		{raw.LastUpdateDate, &order.LastUpdateDate},
		{raw.EarliestShipDate, &order.EarliestShipDate},
		{raw.LatestShipDate, &order.LatestShipDate},
	}
	for _, ts := range timestamps {
		parsed, err := parseTimestamp(ts.value)
		if err != nil {
			return domain.OrderRecord{}, &domain.AssemblyError{OrderID: raw.AmazonOrderID, Reason: err.Error()}
		}
		*ts.dst = parsed
	}

	total, err := r.converter.Convert(ctx, raw.OrderTotal, date)
	if err != nil {
		return domain.OrderRecord{}, err
	}
	order.OrderTotalUSD = total

	return order, nil
}

func (r *Retriever) buildItem(ctx context.Context, raw domain.RawItem, date string) (domain.ItemRecord, error) {
	item := domain.ItemRecord{
		AmazonOrderID:   raw.AmazonOrderID,
		OrderItemID:     raw.OrderItemID,
		ASIN:            raw.ASIN,
		IsGift:          parseFlag(raw.IsGift),
		QuantityOrdered: raw.QuantityOrdered,
		QuantityShipped: raw.QuantityShipped,
		SellerSKU:       raw.SellerSKU,
	}

	monetary := []struct {
		src *ratesdomain.Money
		dst **float64
	}{
		{raw.ItemPrice, &item.ItemPrice},
		{raw.ItemTax, &item.ItemTax},
		{raw.PromotionDiscount, &item.PromotionDiscount},
		{raw.PromotionDiscountTax, &item.PromotionDiscountTax},
		{raw.ShippingPrice, &item.ShippingPrice},
		{raw.ShippingTax, &item.ShippingTax},
		{raw.ShippingDiscount, &item.ShippingDiscount},
	}
	for _, m := range monetary {
		converted, err := r.converter.Convert(ctx, m.src, date)
		if err != nil {
			return domain.ItemRecord{}, err
		}
		*m.dst = converted
	}

	return item, nil
}

// parseFlag coerces the provider's string-typed booleans. An empty value
// stays absent; anything that is not "true" is false.
func parseFlag(value string) *bool {
	if value == "" {
		return nil
	}
	flag := strings.EqualFold(value, "true")
	return &flag
}

// parseTimestamp coerces a provider timestamp to UTC. Absent values stay nil.
func parseTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("unparseable timestamp %q", value)
	}
	utc := parsed.UTC()
	return &utc, nil
}
