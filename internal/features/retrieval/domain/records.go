package domain

import (
	"time"

	ratesdomain "orders-retriever/internal/features/rates/domain"
)

// RawOrder is one order as the provider returns it, before normalization.
// Timestamps and flags keep the provider's loose string shapes; monetary
// fields keep their original currency.
type RawOrder struct {
	AmazonOrderID                string
	PurchaseDate                 string
	LastUpdateDate               string
	OrderStatus                  string
	FulfillmentChannel           string
	SalesChannel                 string
	ShipServiceLevel             string
	OrderTotal                   *ratesdomain.Money
	NumberOfItemsShipped         int
	NumberOfItemsUnshipped       int
	IsReplacementOrder           string
	MarketplaceID                string
	ShipmentServiceLevelCategory string
	EarliestShipDate             string
	LatestShipDate               string
	IsPrime                      *bool
	IsGlobalExpressEnabled       *bool
	IsPremiumOrder               *bool
}

// RawItem is one order line item as the provider returns it.
type RawItem struct {
	AmazonOrderID        string
	OrderItemID          string
	ASIN                 string
	IsGift               string
	ItemPrice            *ratesdomain.Money
	ItemTax              *ratesdomain.Money
	PromotionDiscount    *ratesdomain.Money
	PromotionDiscountTax *ratesdomain.Money
	QuantityOrdered      int
	QuantityShipped      int
	SellerSKU            string
	ShippingPrice        *ratesdomain.Money
	ShippingTax          *ratesdomain.Money
	ShippingDiscount     *ratesdomain.Money
}

// RawPage is one provider page: the orders it listed, the line items of those
// orders and the continuation token for the next page. An empty NextToken
// means the page is the last one.
type RawPage struct {
	Orders    []RawOrder
	Items     []RawItem
	NextToken string
}

// OrderRecord is one normalized order row. Timestamps are UTC regardless of
// the timezone used to select the day, monetary amounts are converted to USD
// with the requested day's rate, and absent provider values stay nil.
type OrderRecord struct {
	AmazonOrderID                string     `json:"amazon_order_id"`
	PurchaseDate                 *time.Time `json:"purchase_date"`
	LastUpdateDate               *time.Time `json:"last_update_date"`
	OrderStatus                  string     `json:"order_status"`
	FulfillmentChannel           string     `json:"fulfillment_channel"`
	SalesChannel                 string     `json:"sales_channel"`
	ShipServiceLevel             string     `json:"ship_service_level"`
	OrderTotalUSD                *float64   `json:"order_total_usd"`
	NumberOfItemsShipped         int        `json:"number_of_items_shipped"`
	NumberOfItemsUnshipped       int        `json:"number_of_items_unshipped"`
	IsReplacementOrder           *bool      `json:"is_replacement_order"`
	MarketplaceID                string     `json:"marketplace_id"`
	ShipmentServiceLevelCategory string     `json:"shipment_service_level_category"`
	EarliestShipDate             *time.Time `json:"earliest_ship_date"`
	LatestShipDate               *time.Time `json:"latest_ship_date"`
	IsPrime                      *bool      `json:"is_prime"`
	IsGlobalExpressEnabled       *bool      `json:"is_global_express_enabled"`
	IsPremiumOrder               *bool      `json:"is_premium_order"`
}

// ItemRecord is one normalized line-item row. Every ItemRecord references an
// OrderRecord of the same retrieval through AmazonOrderID.
type ItemRecord struct {
	AmazonOrderID        string   `json:"amazon_order_id"`
	OrderItemID          string   `json:"order_item_id"`
	ASIN                 string   `json:"asin"`
	IsGift               *bool    `json:"is_gift"`
	ItemPrice            *float64 `json:"item_price"`
	ItemTax              *float64 `json:"item_tax"`
	PromotionDiscount    *float64 `json:"promotion_discount"`
	PromotionDiscountTax *float64 `json:"promotion_discount_tax"`
	QuantityOrdered      int      `json:"quantity_ordered"`
	QuantityShipped      int      `json:"quantity_shipped"`
	SellerSKU            string   `json:"seller_sku"`
	ShippingPrice        *float64 `json:"shipping_price"`
	ShippingTax          *float64 `json:"shipping_tax"`
	ShippingDiscount     *float64 `json:"shipping_discount"`
}
