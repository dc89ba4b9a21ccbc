package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"orders-retriever/internal/core/httpclient"
	"orders-retriever/internal/core/ratelimit"
	ratesdomain "orders-retriever/internal/features/rates/domain"
	"orders-retriever/internal/features/retrieval/domain"
)

const (
	ordersPath     = "/orders/v0/orders"
	requestTimeout = 30 * time.Second
)

// SellingPartnerAdapter implements ports.ReportProvider against the Selling
// Partner Orders API. One adapter serves one region; the line-item
// sub-requests it issues per order are paced through the region's limiter so
// they draw from the same budget as the page calls.
type SellingPartnerAdapter struct {
	client  *http.Client
	limiter *ratelimit.Limiter
}

// NewSellingPartnerAdapter creates an adapter pacing its item sub-requests
// through limiter.
func NewSellingPartnerAdapter(limiter *ratelimit.Limiter) *SellingPartnerAdapter {
	return &SellingPartnerAdapter{
		client:  httpclient.NewClient(requestTimeout),
		limiter: limiter,
	}
}

type spMoney struct {
	CurrencyCode string `json:"CurrencyCode"`
	Amount       string `json:"Amount"`
}

type spOrder struct {
	AmazonOrderID                string   `json:"AmazonOrderId"`
	PurchaseDate                 string   `json:"PurchaseDate"`
	LastUpdateDate               string   `json:"LastUpdateDate"`
	OrderStatus                  string   `json:"OrderStatus"`
	FulfillmentChannel           string   `json:"FulfillmentChannel"`
	SalesChannel                 string   `json:"SalesChannel"`
	ShipServiceLevel             string   `json:"ShipServiceLevel"`
	OrderTotal                   *spMoney `json:"OrderTotal"`
	NumberOfItemsShipped         int      `json:"NumberOfItemsShipped"`
	NumberOfItemsUnshipped       int      `json:"NumberOfItemsUnshipped"`
	IsReplacementOrder           string   `json:"IsReplacementOrder"`
	MarketplaceID                string   `json:"MarketplaceId"`
	ShipmentServiceLevelCategory string   `json:"ShipmentServiceLevelCategory"`
	EarliestShipDate             string   `json:"EarliestShipDate"`
	LatestShipDate               string   `json:"LatestShipDate"`
	IsPrime                      *bool    `json:"IsPrime"`
	IsGlobalExpressEnabled       *bool    `json:"IsGlobalExpressEnabled"`
	IsPremiumOrder               *bool    `json:"IsPremiumOrder"`
}

type spOrdersResponse struct {
	Payload struct {
		Orders    []spOrder `json:"Orders"`
		NextToken string    `json:"NextToken"`
	} `json:"payload"`
}

type spItem struct {
	OrderItemID          string   `json:"OrderItemId"`
	ASIN                 string   `json:"ASIN"`
	IsGift               string   `json:"IsGift"`
	ItemPrice            *spMoney `json:"ItemPrice"`
	ItemTax              *spMoney `json:"ItemTax"`
	PromotionDiscount    *spMoney `json:"PromotionDiscount"`
	PromotionDiscountTax *spMoney `json:"PromotionDiscountTax"`
	QuantityOrdered      int      `json:"QuantityOrdered"`
	QuantityShipped      int      `json:"QuantityShipped"`
	SellerSKU            string   `json:"SellerSKU"`
	ShippingPrice        *spMoney `json:"ShippingPrice"`
	ShippingTax          *spMoney `json:"ShippingTax"`
	ShippingDiscount     *spMoney `json:"ShippingDiscount"`
}

type spItemsResponse struct {
	Payload struct {
		AmazonOrderID string   `json:"AmazonOrderId"`
		OrderItems    []spItem `json:"OrderItems"`
		NextToken     string   `json:"NextToken"`
	} `json:"payload"`
}

// FetchPage implements ports.ReportProvider.
func (a *SellingPartnerAdapter) FetchPage(ctx context.Context, creds domain.RegionCredentials, marketplace domain.Marketplace, window domain.FetchWindow, continuationToken string) (*domain.RawPage, error) {
	query := url.Values{}
	if continuationToken != "" {
		query.Set("NextToken", continuationToken)
	} else {
		query.Set("MarketplaceIds", marketplace.ID)
		query.Set("CreatedAfter", window.Start.Format(time.RFC3339))
		query.Set("CreatedBefore", window.End.Format(time.RFC3339))
	}

	var decoded spOrdersResponse
	if err := a.get(ctx, creds, ordersPath, query, &decoded); err != nil {
		return nil, err
	}

	page := &domain.RawPage{NextToken: decoded.Payload.NextToken}
	for _, order := range decoded.Payload.Orders {
		mapped, err := mapOrder(order)
		if err != nil {
			return nil, err
		}
		page.Orders = append(page.Orders, mapped)

		items, err := a.fetchOrderItems(ctx, creds, order.AmazonOrderID)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, items...)
	}
	return page, nil
}

// CheckAccess implements ports.ReportProvider. It issues a minimal orders
// request to verify that the region's token is accepted.
func (a *SellingPartnerAdapter) CheckAccess(ctx context.Context, creds domain.RegionCredentials, marketplace domain.Marketplace) error {
	if err := a.limiter.Acquire(ctx); err != nil {
		return err
	}
	query := url.Values{}
	query.Set("MarketplaceIds", marketplace.ID)
	query.Set("CreatedAfter", time.Now().UTC().Add(-time.Hour).Format(time.RFC3339))

	var decoded spOrdersResponse
	return a.get(ctx, creds, ordersPath, query, &decoded)
}

// fetchOrderItems pages through the line items of one order, pacing every
// request through the region limiter.
func (a *SellingPartnerAdapter) fetchOrderItems(ctx context.Context, creds domain.RegionCredentials, orderID string) ([]domain.RawItem, error) {
	var items []domain.RawItem
	token := ""
	for {
		if err := a.limiter.Acquire(ctx); err != nil {
			return nil, err
		}

		query := url.Values{}
		if token != "" {
			query.Set("NextToken", token)
		}

		var decoded spItemsResponse
		path := fmt.Sprintf("%s/%s/orderItems", ordersPath, orderID)
		if err := a.get(ctx, creds, path, query, &decoded); err != nil {
			return nil, err
		}

		for _, item := range decoded.Payload.OrderItems {
			mapped, err := mapItem(orderID, item)
			if err != nil {
				return nil, err
			}
			items = append(items, mapped)
		}

		if decoded.Payload.NextToken == "" {
			return items, nil
		}
		token = decoded.Payload.NextToken
	}
}

// get performs one authenticated GET against the region endpoint and decodes
// the JSON body into out.
func (a *SellingPartnerAdapter) get(ctx context.Context, creds domain.RegionCredentials, path string, query url.Values, out any) error {
	endpoint := fmt.Sprintf("%s%s?%s", creds.Endpoint, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("x-amz-access-token", creds.AccessToken)
	req.Header.Set("accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request to %s returned status %d: %s", path, resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

func mapOrder(order spOrder) (domain.RawOrder, error) {
	total, err := mapMoney(order.OrderTotal)
	if err != nil {
		return domain.RawOrder{}, fmt.Errorf("order %s: %w", order.AmazonOrderID, err)
	}
	return domain.RawOrder{
		AmazonOrderID:                order.AmazonOrderID,
		PurchaseDate:                 order.PurchaseDate,
		LastUpdateDate:               order.LastUpdateDate,
		OrderStatus:                  order.OrderStatus,
		FulfillmentChannel:           order.FulfillmentChannel,
		SalesChannel:                 order.SalesChannel,
		ShipServiceLevel:             order.ShipServiceLevel,
		OrderTotal:                   total,
		NumberOfItemsShipped:         order.NumberOfItemsShipped,
		NumberOfItemsUnshipped:       order.NumberOfItemsUnshipped,
		IsReplacementOrder:           order.IsReplacementOrder,
		MarketplaceID:                order.MarketplaceID,
		ShipmentServiceLevelCategory: order.ShipmentServiceLevelCategory,
		EarliestShipDate:             order.EarliestShipDate,
		LatestShipDate:               order.LatestShipDate,
		IsPrime:                      order.IsPrime,
		IsGlobalExpressEnabled:       order.IsGlobalExpressEnabled,
		IsPremiumOrder:               order.IsPremiumOrder,
	}, nil
}

func mapItem(orderID string, item spItem) (domain.RawItem, error) {
	mapped := domain.RawItem{
		AmazonOrderID:   orderID,
		OrderItemID:     item.OrderItemID,
		ASIN:            item.ASIN,
		IsGift:          item.IsGift,
		QuantityOrdered: item.QuantityOrdered,
		QuantityShipped: item.QuantityShipped,
		SellerSKU:       item.SellerSKU,
	}

	fields := []struct {
		src *spMoney
		dst **ratesdomain.Money
	}{
		{item.ItemPrice, &mapped.ItemPrice},
		{item.ItemTax, &mapped.ItemTax},
		{item.PromotionDiscount, &mapped.PromotionDiscount},
		{item.PromotionDiscountTax, &mapped.PromotionDiscountTax},
		{item.ShippingPrice, &mapped.ShippingPrice},
		{item.ShippingTax, &mapped.ShippingTax},
		{item.ShippingDiscount, &mapped.ShippingDiscount},
	}
	for _, f := range fields {
		money, err := mapMoney(f.src)
		if err != nil {
			return domain.RawItem{}, fmt.Errorf("order %s item %s: %w", orderID, item.OrderItemID, err)
		}
		*f.dst = money
	}
	return mapped, nil
}

// mapMoney parses the provider's string-typed amount. A nil input stays nil;
// the provider omits monetary fields it has no value for.
func mapMoney(money *spMoney) (*ratesdomain.Money, error) {
	if money == nil {
		return nil, nil
	}
	amount, err := strconv.ParseFloat(money.Amount, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable amount %q: %w", money.Amount, err)
	}
	return &ratesdomain.Money{Amount: amount, CurrencyCode: money.CurrencyCode}, nil
}
