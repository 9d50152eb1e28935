package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/handler"
	mocks "github.com/SergeyBogomolovv/order-fulfillment/internal/handler/mocks"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleCart() entities.Cart {
	return entities.Cart{
		ID:     "cart-1",
		UserID: userID,
		Items: []entities.CartItem{
			{ProductID: "A", Name: "Mug", Quantity: 2, Price: decimal.RequireFromString("10")},
			{ProductID: "B", Name: "Tea", Quantity: 1, Price: decimal.RequireFromString("5")},
		},
		Subtotal:     decimal.RequireFromString("25"),
		ShippingCost: decimal.RequireFromString("3"),
		Total:        decimal.RequireFromString("28"),
	}
}

func serveCart(t *testing.T, setup func(svc *mocks.MockCartService), method, target, body string) (int, string) {
	t.Helper()

	svc := mocks.NewMockCartService(t)
	if setup != nil {
		setup(svc)
	}

	r := chi.NewRouter()
	handler.NewCartHandler(discardLogger(), svc).Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(method, target, reader))
	return rr.Code, rr.Body.String()
}

const cartPath = "/users/" + userID + "/cart"

func TestCartHandler_GetCart(t *testing.T) {
	code, body := serveCart(t, func(svc *mocks.MockCartService) {
		svc.EXPECT().GetCart(mock.Anything, userID).Return(sampleCart(), nil).Once()
	}, http.MethodGet, cartPath, "")
	require.Equal(t, http.StatusOK, code)

	var got handler.Cart
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, 3, got.TotalItems)
	assert.Equal(t, "25.00", got.Subtotal)
	assert.Equal(t, "28.00", got.Total)
	assert.Equal(t, "20.00", got.Items[0].LineTotal)

	code, _ = serveCart(t, nil, http.MethodGet, "/users/guest/cart", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCartHandler_AddItems(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		setup      func(svc *mocks.MockCartService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "single item uses strict add",
			body: `{"items":[{"product_id":"A","quantity":2}]}`,
			setup: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddItem(mock.Anything, userID, service.CartLine{ProductID: "A", Quantity: 2}).Return(sampleCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":"28.00"`,
		},
		{
			name: "single item out of stock",
			body: `{"items":[{"product_id":"A","quantity":50}]}`,
			setup: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddItem(mock.Anything, userID, mock.Anything).Return(entities.Cart{}, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "partial failures reported",
			body: `{"items":[{"product_id":"A","quantity":1},{"product_id":"X","quantity":1}]}`,
			setup: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddItems(mock.Anything, userID, []service.CartLine{{ProductID: "A", Quantity: 1}, {ProductID: "X", Quantity: 1}}, false).
					Return(sampleCart(), []service.LineError{{ProductID: "X", Err: entities.ErrProductNotFound}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"failed":[{"product_id":"X","error":"product not found"}]`,
		},
		{
			name: "all or nothing rejected",
			body: `{"items":[{"product_id":"A","quantity":1}],"all_or_nothing":true}`,
			setup: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddItems(mock.Anything, userID, mock.Anything, true).
					Return(entities.Cart{}, []service.LineError{{ProductID: "A", Err: entities.ErrInsufficientStock}}, entities.ErrBulkRejected).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"insufficient stock"`,
		},
		{
			name:       "zero quantity",
			body:       `{"items":[{"product_id":"A","quantity":0}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no items",
			body:       `{"items":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"items":[{"product_id":"A","quantity":1}],"extra":1}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
		{
			name: "repository failure",
			body: `{"items":[{"product_id":"A","quantity":1},{"product_id":"B","quantity":1}]}`,
			setup: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddItems(mock.Anything, userID, mock.Anything, false).Return(entities.Cart{}, nil, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := serveCart(t, tc.setup, http.MethodPost, cartPath+"/items", tc.body)
			assert.Equal(t, tc.wantStatus, code)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestCartHandler_UpdateItems(t *testing.T) {
	code, _ := serveCart(t, func(svc *mocks.MockCartService) {
		svc.EXPECT().UpdateItems(mock.Anything, userID, []service.CartLine{{ProductID: "A", Quantity: 0}, {ProductID: "B", Quantity: 4}}, false).
			Return(sampleCart(), nil, nil).Once()
	}, http.MethodPatch, cartPath+"/items", `{"items":[{"product_id":"A","quantity":0},{"product_id":"B","quantity":4}]}`)
	assert.Equal(t, http.StatusOK, code)
}

func TestCartHandler_ItemRoutes(t *testing.T) {
	t.Run("update quantity", func(t *testing.T) {
		code, _ := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().UpdateQuantity(mock.Anything, userID, service.CartLine{ProductID: "A", Quantity: 3}).Return(sampleCart(), nil).Once()
		}, http.MethodPut, cartPath+"/items/A", `{"quantity":3}`)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("negative quantity", func(t *testing.T) {
		code, _ := serveCart(t, nil, http.MethodPut, cartPath+"/items/A", `{"quantity":-1}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("remove missing item", func(t *testing.T) {
		code, body := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().RemoveItem(mock.Anything, userID, "Z").Return(entities.Cart{}, entities.ErrCartItemNotFound).Once()
		}, http.MethodDelete, cartPath+"/items/Z", "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, body, "cart item not found")
	})

	t.Run("clear", func(t *testing.T) {
		code, _ := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().Clear(mock.Anything, userID).Return(entities.Cart{ID: "cart-1", UserID: userID}, nil).Once()
		}, http.MethodDelete, cartPath, "")
		assert.Equal(t, http.StatusOK, code)
	})
}

func TestCartHandler_Pricing(t *testing.T) {
	t.Run("apply coupon", func(t *testing.T) {
		code, _ := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().ApplyCoupon(mock.Anything, userID, "SAVE10").Return(sampleCart(), nil).Once()
		}, http.MethodPost, cartPath+"/coupon", `{"code":"SAVE10"}`)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("unknown coupon", func(t *testing.T) {
		code, body := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().ApplyCoupon(mock.Anything, userID, "BOGUS").Return(entities.Cart{}, entities.ErrInvalidCoupon).Once()
		}, http.MethodPost, cartPath+"/coupon", `{"code":"BOGUS"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, body, "invalid coupon code")
	})

	t.Run("remove coupon", func(t *testing.T) {
		code, _ := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().RemoveCoupon(mock.Anything, userID).Return(sampleCart(), nil).Once()
		}, http.MethodDelete, cartPath+"/coupon", "")
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("shipping", func(t *testing.T) {
		code, _ := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().SetShippingMethod(mock.Anything, userID, "express", mock.MatchedBy(func(d decimal.Decimal) bool {
				return d.Equal(decimal.RequireFromString("7.5"))
			})).Return(sampleCart(), nil).Once()
		}, http.MethodPut, cartPath+"/shipping", `{"method_id":"express","cost":"7.50"}`)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("negative tax", func(t *testing.T) {
		code, _ := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().SetTax(mock.Anything, userID, mock.Anything).Return(entities.Cart{}, entities.ErrInvalidAmount).Once()
		}, http.MethodPut, cartPath+"/tax", `{"tax":"-1"}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestCartHandler_Validation(t *testing.T) {
	t.Run("no invalid items", func(t *testing.T) {
		code, body := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().InvalidItems(mock.Anything, userID).Return(nil, nil).Once()
		}, http.MethodGet, cartPath+"/validation", "")
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"product_ids":[]}`, body)
	})

	t.Run("remove invalid", func(t *testing.T) {
		code, body := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().RemoveInvalidItems(mock.Anything, userID).Return(sampleCart(), []string{"C"}, nil).Once()
		}, http.MethodDelete, cartPath+"/validation", "")
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, `"skipped":["C"]`)
	})

	t.Run("merge guest cart", func(t *testing.T) {
		code, body := serveCart(t, func(svc *mocks.MockCartService) {
			svc.EXPECT().MergeGuestCart(mock.Anything, userID, []service.CartLine{{ProductID: "A", Quantity: 9}, {ProductID: "X", Quantity: 1}}).
				Return(sampleCart(), []string{"X"}, nil).Once()
		}, http.MethodPost, cartPath+"/merge", `{"items":[{"product_id":"A","quantity":9},{"product_id":"X","quantity":1}]}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, `"skipped":["X"]`)
	})
}
