package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fsdine_restaurant/config"
	"fsdine_restaurant/database"
	"fsdine_restaurant/database/databasetest"
	"fsdine_restaurant/handler"
	"fsdine_restaurant/model"
	"fsdine_restaurant/router"
	"fsdine_restaurant/service"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	adminEmail    = "expo@fsdine.test"
	adminPassword = "secret123"
)

type response struct {
	Success bool                `json:"success"`
	Valid   *bool               `json:"valid"`
	Message string              `json:"message"`
	Error   *string             `json:"error"`
	Errors  map[string][]string `json:"errors"`
	Data    json.RawMessage     `json:"data"`
}

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := databasetest.Open(t)
	require.NoError(t, database.SeedData(db, adminEmail, adminPassword))

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		JWTLifetime: time.Hour,
		OrderingURL: "https://fsdine.test/order",
	}
	notifier := service.NewNotifier(database.NewStaffStore(db), database.NewNotificationStore(db))
	orders := service.NewOrderService(database.NewOrderStore(db), database.NewMenuStore(db), notifier)

	app := fiber.New()
	router.SetupRoutes(app, handler.New(db, orders, cfg), cfg.JWTSecret)
	return app, db
}

func do(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) (*http.Response, response) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = bytes.NewBufferString(raw)
		} else {
			payload, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(payload)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out response
	if resp.Header.Get(fiber.HeaderContentType) == fiber.MIMEApplicationJSON {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func orderBody(orderNumber string) fiber.Map {
	return fiber.Map{
		"table_number": "b4",
		"order_number": orderNumber,
		"items": []fiber.Map{
			{"menu_item_id": 3, "name": "Classic Burger", "quantity": 2, "price": 12.5},
			{"menu_item_id": 6, "name": "Fries", "quantity": 1, "price": 3.5, "notes": "extra salt"},
		},
		"notes":        "no rush",
		"total_amount": 28.5,
	}
}

func TestPlaceOrderEndpoint(t *testing.T) {
	app, db := newApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/v1/customer/orders", orderBody("WEB-1"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, body.Success)
	assert.Equal(t, "Order placed successfully! Your order will be prepared shortly.", body.Message)

	var result model.PlaceOrderResult
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.NotZero(t, result.OrderID)
	assert.Equal(t, "WEB-1", result.OrderNumber)
	assert.Equal(t, "B4", result.TableNumber)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, 2, result.ItemsCount)
	assert.Equal(t, "28.50", result.TotalAmount)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z$`, result.CreatedAt)

	var notifications int64
	require.NoError(t, db.Model(&model.TableNotification{}).Count(&notifications).Error)
	assert.EqualValues(t, 1, notifications)

	resp, body = do(t, app, http.MethodGet, "/api/v1/customer/orders/WEB-1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var detail model.OrderDetail
	require.NoError(t, json.Unmarshal(body.Data, &detail))
	assert.Equal(t, "bar", detail.Area)
	require.Len(t, detail.Items, 2)
	assert.Equal(t, "extra salt", *detail.Items[1].Notes)

	resp, body = do(t, app, http.MethodGet, "/api/v1/customer/orders/WEB-404", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Order not found", body.Message)
}

func TestGetOrderEndpointEscapedNumber(t *testing.T) {
	app, _ := newApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/v1/customer/orders", orderBody("  WEB 7#A  "))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var result model.PlaceOrderResult
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Equal(t, "WEB 7#A", result.OrderNumber)

	resp, body = do(t, app, http.MethodGet, "/api/v1/customer/orders/"+url.PathEscape("WEB 7#A"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var detail model.OrderDetail
	require.NoError(t, json.Unmarshal(body.Data, &detail))
	assert.Equal(t, "WEB 7#A", detail.OrderNumber)
}

// brokenOrders loses the connection right after writing, inside the
// placement transaction.
type brokenOrders struct {
	model.OrderRepository
}

func (b brokenOrders) InsertOrderWithMapping(ctx context.Context, mapping *model.TableMapping, order *model.TableOrder) error {
	if err := b.OrderRepository.InsertOrderWithMapping(ctx, mapping, order); err != nil {
		return err
	}
	return errors.New("connection reset by peer")
}

func (b brokenOrders) WithinTransaction(ctx context.Context, fn func(repo model.OrderRepository) error) error {
	return b.OrderRepository.WithinTransaction(ctx, func(repo model.OrderRepository) error {
		return fn(brokenOrders{repo})
	})
}

func TestPlaceOrderEndpointPersistenceFailure(t *testing.T) {
	db := databasetest.Open(t)
	require.NoError(t, database.SeedData(db, adminEmail, adminPassword))

	cfg := &config.Config{JWTSecret: "test-secret", JWTLifetime: time.Hour}
	notifier := service.NewNotifier(database.NewStaffStore(db), database.NewNotificationStore(db))
	orders := service.NewOrderService(brokenOrders{database.NewOrderStore(db)}, nil, notifier)

	app := fiber.New()
	router.SetupRoutes(app, handler.New(db, orders, cfg), cfg.JWTSecret)

	resp, body := do(t, app, http.MethodPost, "/api/v1/customer/orders", orderBody("WEB-500"))
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "Failed to place order. Please try again.", body.Message)
	require.NotNil(t, body.Error)
	assert.Contains(t, *body.Error, "connection reset by peer")

	var count int64
	require.NoError(t, db.Model(&model.TableOrder{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&model.TableNotification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderEndpointDuplicate(t *testing.T) {
	app, _ := newApp(t)

	resp, _ := do(t, app, http.MethodPost, "/api/v1/customer/orders", orderBody("WEB-2"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := do(t, app, http.MethodPost, "/api/v1/customer/orders", orderBody("WEB-2"))
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "An order with this order number has already been placed. Please refresh and try again.", body.Message)
	assert.Nil(t, body.Error)
}

func TestPlaceOrderEndpointConcurrentDuplicates(t *testing.T) {
	app, _ := newApp(t)

	var wg sync.WaitGroup
	statuses := make([]int, 2)
	for i := range statuses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload, _ := json.Marshal(orderBody("WEB-RACE"))
			req := httptest.NewRequest(http.MethodPost, "/api/v1/customer/orders", bytes.NewReader(payload))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req, -1)
			if err == nil {
				statuses[i] = resp.StatusCode
			}
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{fiber.StatusCreated, fiber.StatusConflict}, statuses)
}

func TestPlaceOrderEndpointValidation(t *testing.T) {
	app, _ := newApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/v1/customer/orders", fiber.Map{
		"order_number": "WEB-3",
		"items":        []fiber.Map{{"menu_item_id": 1, "name": "Garlic Bread", "quantity": 0, "price": 4.5}},
		"total_amount": 4.5,
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, []string{"The table_number field is required."}, body.Errors["table_number"])
	assert.Equal(t, []string{"The items.0.quantity field must be at least 1."}, body.Errors["items.0.quantity"])

	resp, body = do(t, app, http.MethodPost, "/api/v1/customer/orders", `{"table_number": 5}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body.Errors, "table_number")
}

func TestPlaceOrderEndpointUnknownMenuItem(t *testing.T) {
	app, _ := newApp(t)

	payload := orderBody("WEB-4")
	payload["items"] = []fiber.Map{{"menu_item_id": 999, "name": "Lobster", "quantity": 1, "price": 40}}

	resp, body := do(t, app, http.MethodPost, "/api/v1/customer/orders", payload)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body.Errors, "items.0.menu_item_id")
}

func TestValidateTableEndpoint(t *testing.T) {
	app, _ := newApp(t)

	cases := []struct {
		body    any
		status  int
		success bool
		valid   bool
		message string
	}{
		{fiber.Map{"table_number": " p12 "}, fiber.StatusOK, true, true, "Valid table number"},
		{fiber.Map{"table_number": "TABLE-NUMBER-99"}, fiber.StatusOK, true, false, "Invalid table number"},
		{fiber.Map{"table_number": ""}, fiber.StatusUnprocessableEntity, false, false, "Table number is required"},
		{fiber.Map{}, fiber.StatusUnprocessableEntity, false, false, "Table number is required"},
	}
	for _, tc := range cases {
		resp, body := do(t, app, http.MethodPost, "/api/v1/customer/validate-table", tc.body)
		assert.Equal(t, tc.status, resp.StatusCode)
		assert.Equal(t, tc.success, body.Success)
		require.NotNil(t, body.Valid)
		assert.Equal(t, tc.valid, *body.Valid)
		assert.Equal(t, tc.message, body.Message)
	}
}

func TestTableQRCodeEndpoint(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/tables/p3/qr", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	_, err = png.Decode(resp.Body)
	require.NoError(t, err)

	resp, body := do(t, app, http.MethodGet, "/api/v1/tables/THIS-IS-TOO-LONG/qr", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Invalid table number", body.Message)
}

func TestMenuEndpoints(t *testing.T) {
	app, _ := newApp(t)

	resp, body := do(t, app, http.MethodGet, "/api/v1/menu/categories", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var categories []model.MenuCategory
	require.NoError(t, json.Unmarshal(body.Data, &categories))
	require.Len(t, categories, 4)
	assert.Equal(t, "starters", categories[0].Slug)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/menu/categories/mains", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = do(t, app, http.MethodGet, "/api/v1/menu/categories/brunch", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = do(t, app, http.MethodGet, "/api/v1/menu/items?category_id=2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var items []model.MenuItem
	require.NoError(t, json.Unmarshal(body.Data, &items))
	assert.Len(t, items, 3)

	resp, body = do(t, app, http.MethodGet, "/api/v1/menu/items/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var item model.MenuItem
	require.NoError(t, json.Unmarshal(body.Data, &item))
	assert.Equal(t, "Garlic Bread", item.Name)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/menu/items/999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, app, http.MethodGet, "/api/v1/menu/items/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminLoginAndNotifications(t *testing.T) {
	app, _ := newApp(t)

	resp, _ := do(t, app, http.MethodPost, "/api/v1/customer/orders", orderBody("WEB-5"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := do(t, app, http.MethodPost, "/api/v1/admin/login", fiber.Map{"email": adminEmail, "password": "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", body.Message)

	resp, body = do(t, app, http.MethodPost, "/api/v1/admin/login", fiber.Map{"email": " EXPO@fsdine.test ", "password": adminPassword})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var token model.TokenData
	require.NoError(t, json.Unmarshal(body.Data, &token))
	require.NotEmpty(t, token.AccessToken)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/admin/notifications", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body = do(t, app, http.MethodGet, "/api/v1/admin/notifications?unread=true", nil, "Authorization", "Bearer "+token.AccessToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var page struct {
		Rows       []model.TableNotification `json:"rows"`
		TotalCount int64                     `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &page))
	assert.EqualValues(t, 1, page.TotalCount)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "New Web Order - Table B4", page.Rows[0].Title)
	assert.Equal(t, "Order #WEB-5 - 2x Classic Burger, 1x Fries", page.Rows[0].Message)
	assert.Equal(t, "bar", page.Rows[0].Location)
}
