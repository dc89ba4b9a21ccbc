package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders-retriever/internal/core/ratelimit"
	"orders-retriever/internal/features/retrieval/domain"
)

func testLimiter() *ratelimit.Limiter {
	return ratelimit.New(time.Millisecond, 100, time.Millisecond)
}

func testWindow(t *testing.T) domain.FetchWindow {
	t.Helper()
	window, err := domain.ResolveWindow("US", "2021-02-01", "")
	require.NoError(t, err)
	return window
}

func testMarketplace(t *testing.T) domain.Marketplace {
	t.Helper()
	mp, ok := domain.MarketplaceByCode("US")
	require.True(t, ok)
	return mp
}

const orderPayload = `{
	"payload": {
		"Orders": [{
			"AmazonOrderId": "111-222",
			"PurchaseDate": "2021-02-01T10:00:00Z",
			"LastUpdateDate": "2021-02-01T12:00:00Z",
			"OrderStatus": "Shipped",
			"FulfillmentChannel": "AFN",
			"SalesChannel": "Amazon.com",
			"ShipServiceLevel": "Std US D2D Dom",
			"OrderTotal": {"CurrencyCode": "USD", "Amount": "42.50"},
			"NumberOfItemsShipped": 2,
			"NumberOfItemsUnshipped": 0,
			"IsReplacementOrder": "false",
			"MarketplaceId": "ATVPDKIKX0DER",
			"ShipmentServiceLevelCategory": "Standard",
			"IsPrime": true
		}],
		"NextToken": %q
	}
}`

const itemPayload = `{
	"payload": {
		"AmazonOrderId": "111-222",
		"OrderItems": [{
			"OrderItemId": "9988",
			"ASIN": "B00TEST",
			"IsGift": "true",
			"ItemPrice": {"CurrencyCode": "USD", "Amount": "10.00"},
			"QuantityOrdered": 1,
			"QuantityShipped": 1,
			"SellerSKU": "SKU-1"
		}]
	}
}`

func TestFetchPage_MapsOrdersAndItems(t *testing.T) {
	var ordersQuery, token string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-abc", r.Header.Get("x-amz-access-token"))
		switch r.URL.Path {
		case "/orders/v0/orders":
			ordersQuery = r.URL.RawQuery
			fmt.Fprintf(w, orderPayload, "")
		case "/orders/v0/orders/111-222/orderItems":
			token = r.URL.Query().Get("NextToken")
			fmt.Fprint(w, itemPayload)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	adapter := NewSellingPartnerAdapter(testLimiter())
	creds := domain.RegionCredentials{Endpoint: server.URL, AccessToken: "token-abc"}

	page, err := adapter.FetchPage(context.Background(), creds, testMarketplace(t), testWindow(t), "")

	require.NoError(t, err)
	assert.Contains(t, ordersQuery, "MarketplaceIds=ATVPDKIKX0DER")
	assert.Contains(t, ordersQuery, "CreatedAfter=2021-02-01T08%3A00%3A00Z")
	assert.Contains(t, ordersQuery, "CreatedBefore=2021-02-02T08%3A00%3A00Z")
	assert.Empty(t, token)

	require.Len(t, page.Orders, 1)
	order := page.Orders[0]
	assert.Equal(t, "111-222", order.AmazonOrderID)
	assert.Equal(t, "Shipped", order.OrderStatus)
	require.NotNil(t, order.OrderTotal)
	assert.Equal(t, 42.50, order.OrderTotal.Amount)
	assert.Equal(t, "USD", order.OrderTotal.CurrencyCode)
	assert.Equal(t, "false", order.IsReplacementOrder)
	require.NotNil(t, order.IsPrime)
	assert.True(t, *order.IsPrime)
	assert.Nil(t, order.IsPremiumOrder)

	require.Len(t, page.Items, 1)
	item := page.Items[0]
	assert.Equal(t, "111-222", item.AmazonOrderID)
	assert.Equal(t, "9988", item.OrderItemID)
	assert.Equal(t, "B00TEST", item.ASIN)
	require.NotNil(t, item.ItemPrice)
	assert.Equal(t, 10.00, item.ItemPrice.Amount)
	assert.Nil(t, item.ShippingPrice)
	assert.Empty(t, page.NextToken)
}

func TestFetchPage_ContinuationTokenReplacesWindow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/orders/v0/orders" {
			assert.Equal(t, "page-2", r.URL.Query().Get("NextToken"))
			assert.Empty(t, r.URL.Query().Get("CreatedAfter"))
			fmt.Fprint(w, `{"payload": {"Orders": [], "NextToken": ""}}`)
			return
		}
		t.Errorf("unexpected path %s", r.URL.Path)
	}))
	defer server.Close()

	adapter := NewSellingPartnerAdapter(testLimiter())
	creds := domain.RegionCredentials{Endpoint: server.URL, AccessToken: "token-abc"}

	page, err := adapter.FetchPage(context.Background(), creds, testMarketplace(t), testWindow(t), "page-2")

	require.NoError(t, err)
	assert.Empty(t, page.Orders)
}

func TestFetchPage_SurfacesNextToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders/v0/orders":
			fmt.Fprintf(w, orderPayload, "more-pages")
		default:
			fmt.Fprint(w, itemPayload)
		}
	}))
	defer server.Close()

	adapter := NewSellingPartnerAdapter(testLimiter())
	creds := domain.RegionCredentials{Endpoint: server.URL, AccessToken: "token-abc"}

	page, err := adapter.FetchPage(context.Background(), creds, testMarketplace(t), testWindow(t), "")

	require.NoError(t, err)
	assert.Equal(t, "more-pages", page.NextToken)
}

func TestFetchPage_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"errors": [{"code": "Unauthorized"}]}`)
	}))
	defer server.Close()

	adapter := NewSellingPartnerAdapter(testLimiter())
	creds := domain.RegionCredentials{Endpoint: server.URL, AccessToken: "bad"}

	_, err := adapter.FetchPage(context.Background(), creds, testMarketplace(t), testWindow(t), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchPage_UnparseableAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"payload": {"Orders": [{"AmazonOrderId": "111-222", "OrderTotal": {"CurrencyCode": "USD", "Amount": "not-a-number"}}]}}`)
	}))
	defer server.Close()

	adapter := NewSellingPartnerAdapter(testLimiter())
	creds := domain.RegionCredentials{Endpoint: server.URL, AccessToken: "token-abc"}

	_, err := adapter.FetchPage(context.Background(), creds, testMarketplace(t), testWindow(t), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-number")
}

func TestFetchOrderItems_FollowsInnerPagination(t *testing.T) {
	itemCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders/v0/orders":
			fmt.Fprintf(w, orderPayload, "")
		case "/orders/v0/orders/111-222/orderItems":
			itemCalls++
			if itemCalls == 1 {
				fmt.Fprint(w, `{"payload": {"AmazonOrderId": "111-222", "OrderItems": [{"OrderItemId": "1"}], "NextToken": "items-2"}}`)
				return
			}
			assert.Equal(t, "items-2", r.URL.Query().Get("NextToken"))
			fmt.Fprint(w, `{"payload": {"AmazonOrderId": "111-222", "OrderItems": [{"OrderItemId": "2"}]}}`)
		}
	}))
	defer server.Close()

	adapter := NewSellingPartnerAdapter(testLimiter())
	creds := domain.RegionCredentials{Endpoint: server.URL, AccessToken: "token-abc"}

	page, err := adapter.FetchPage(context.Background(), creds, testMarketplace(t), testWindow(t), "")

	require.NoError(t, err)
	assert.Equal(t, 2, itemCalls)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "1", page.Items[0].OrderItemID)
	assert.Equal(t, "2", page.Items[1].OrderItemID)
}

func TestCheckAccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"payload": {"Orders": []}}`)
	}))
	defer server.Close()

	adapter := NewSellingPartnerAdapter(testLimiter())
	creds := domain.RegionCredentials{Endpoint: server.URL, AccessToken: "token-abc"}

	err := adapter.CheckAccess(context.Background(), creds, testMarketplace(t))

	assert.NoError(t, err)
}
