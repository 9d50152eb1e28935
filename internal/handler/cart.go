package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/service"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/utils"

	"github.com/go-chi/chi/v5"
)

const idRule = "required,uuid"

type CartHandler struct {
	httpBase
	svc CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService) *CartHandler {
	return &CartHandler{
		httpBase: newHTTPBase(logger, "cart"),
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/users/{user_id}/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.Clear)

		r.Post("/items", h.AddItems)
		r.Patch("/items", h.UpdateItems)
		r.Put("/items/{product_id}", h.UpdateQuantity)
		r.Delete("/items/{product_id}", h.RemoveItem)

		r.Post("/coupon", h.ApplyCoupon)
		r.Delete("/coupon", h.RemoveCoupon)
		r.Put("/shipping", h.SetShipping)
		r.Put("/tax", h.SetTax)

		r.Get("/validation", h.InvalidItems)
		r.Delete("/validation", h.RemoveInvalidItems)
		r.Post("/merge", h.MergeGuestCart)
	})
}

// GetCart возвращает корзину пользователя.
// @Summary      Получить корзину
// @Description  Возвращает корзину пользователя, создавая пустую при первом обращении
// @Tags         cart
// @Param        user_id  path      string  true  "ID пользователя"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}

	cart, err := h.svc.GetCart(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "failed to get cart")
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// AddItems добавляет товары в корзину.
// @Summary      Добавить товары
// @Description  Одна позиция добавляется строго. Для нескольких позиций ошибки возвращаются по каждой,
// @Description  а с all_or_nothing любая ошибка отменяет всю операцию
// @Tags         cart
// @Accept       json
// @Param        user_id  path      string           true  "ID пользователя"
// @Param        request  body      AddItemsRequest  true  "Позиции"
// @Success      200  {object}  CartMutationResponse
// @Failure      400  {object}  BulkErrorResponse "Операция отклонена"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недостаточно товара на складе"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/items [post]
func (h *CartHandler) AddItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}
	var req AddItemsRequest
	if !h.decode(w, r, &req) {
		return
	}

	lines := AddLinesToService(req.Items)
	if len(lines) == 1 {
		cart, err := h.svc.AddItem(r.Context(), userID, lines[0])
		if err != nil {
			h.writeError(w, r, err, "failed to add item")
			return
		}
		utils.WriteJSON(w, CartMutationResponse{Cart: CartEntityToJSON(cart)}, http.StatusOK)
		return
	}

	cart, failed, err := h.svc.AddItems(r.Context(), userID, lines, req.AllOrNothing)
	h.writeBulk(w, r, cart, failed, err)
}

// UpdateItems меняет количество нескольких позиций.
// @Summary      Обновить позиции
// @Description  Количество 0 удаляет позицию
// @Tags         cart
// @Accept       json
// @Param        user_id  path      string              true  "ID пользователя"
// @Param        request  body      UpdateItemsRequest  true  "Позиции"
// @Success      200  {object}  CartMutationResponse
// @Failure      400  {object}  BulkErrorResponse "Операция отклонена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/items [patch]
func (h *CartHandler) UpdateItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}
	var req UpdateItemsRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, failed, err := h.svc.UpdateItems(r.Context(), userID, UpdateLinesToService(req.Items), req.AllOrNothing)
	h.writeBulk(w, r, cart, failed, err)
}

func (h *CartHandler) writeBulk(w http.ResponseWriter, r *http.Request, cart entities.Cart, failed []service.LineError, err error) {
	if errors.Is(err, entities.ErrBulkRejected) {
		utils.WriteJSON(w, BulkErrorResponse{Message: err.Error(), Failed: LineErrorsToJSON(failed)}, http.StatusBadRequest)
		return
	}
	if err != nil {
		h.writeError(w, r, err, "failed to update cart items")
		return
	}
	utils.WriteJSON(w, CartMutationResponse{Cart: CartEntityToJSON(cart), Failed: LineErrorsToJSON(failed)}, http.StatusOK)
}

// UpdateQuantity задаёт количество товара в корзине.
// @Summary      Изменить количество
// @Tags         cart
// @Accept       json
// @Param        user_id     path  string                 true  "ID пользователя"
// @Param        product_id  path  string                 true  "ID товара"
// @Param        request     body  UpdateQuantityRequest  true  "Количество, 0 удаляет позицию"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Позиция не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Недостаточно товара на складе"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/items/{product_id} [put]
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}
	productID, ok := h.pathParam(w, r, "product_id", "required")
	if !ok {
		return
	}
	var req UpdateQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.svc.UpdateQuantity(r.Context(), userID, service.CartLine{ProductID: productID, Quantity: req.Quantity})
	if err != nil {
		h.writeError(w, r, err, "failed to update quantity")
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// RemoveItem удаляет товар из корзины.
// @Summary      Удалить позицию
// @Tags         cart
// @Param        user_id     path  string  true  "ID пользователя"
// @Param        product_id  path  string  true  "ID товара"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse "Позиция не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}
	productID, ok := h.pathParam(w, r, "product_id", "required")
	if !ok {
		return
	}

	cart, err := h.svc.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		h.writeError(w, r, err, "failed to remove item")
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// Clear очищает корзину.
// @Summary      Очистить корзину
// @Description  Удаляет позиции, купон, доставку и налог
// @Tags         cart
// @Param        user_id  path  string  true  "ID пользователя"
// @Success      200  {object}  Cart
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}

	cart, err := h.svc.Clear(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "failed to clear cart")
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// ApplyCoupon применяет купон к корзине.
// @Summary      Применить купон
// @Tags         cart
// @Accept       json
// @Param        user_id  path  string              true  "ID пользователя"
// @Param        request  body  ApplyCouponRequest  true  "Купон"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ErrorResponse "Неизвестный купон"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/coupon [post]
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}
	var req ApplyCouponRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.svc.ApplyCoupon(r.Context(), userID, req.Code)
	if err != nil {
		h.writeError(w, r, err, "failed to apply coupon")
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// RemoveCoupon убирает купон из корзины.
// @Summary      Убрать купон
// @Tags         cart
// @Param        user_id  path  string  true  "ID пользователя"
// @Success      200  {object}  Cart
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/coupon [delete]
func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}

	cart, err := h.svc.RemoveCoupon(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "failed to remove coupon")
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// SetShipping задаёт способ и стоимость доставки.
// @Summary      Задать доставку
// @Tags         cart
// @Accept       json
// @Param        user_id  path  string           true  "ID пользователя"
// @Param        request  body  ShippingRequest  true  "Доставка"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ErrorResponse "Отрицательная стоимость"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/shipping [put]
func (h *CartHandler) SetShipping(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}
	var req ShippingRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.svc.SetShippingMethod(r.Context(), userID, req.MethodID, req.Cost)
	if err != nil {
		h.writeError(w, r, err, "failed to set shipping")
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// SetTax задаёт налог.
// @Summary      Задать налог
// @Tags         cart
// @Accept       json
// @Param        user_id  path  string      true  "ID пользователя"
// @Param        request  body  TaxRequest  true  "Налог"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ErrorResponse "Отрицательный налог"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/tax [put]
func (h *CartHandler) SetTax(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}
	var req TaxRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.svc.SetTax(r.Context(), userID, req.Tax)
	if err != nil {
		h.writeError(w, r, err, "failed to set tax")
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// InvalidItems возвращает позиции, которые сейчас нельзя заказать.
// @Summary      Проверить корзину
// @Tags         cart
// @Param        user_id  path  string  true  "ID пользователя"
// @Success      200  {object}  InvalidItemsResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/validation [get]
func (h *CartHandler) InvalidItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}

	invalid, err := h.svc.InvalidItems(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "failed to validate cart")
		return
	}
	if invalid == nil {
		invalid = []string{}
	}
	utils.WriteJSON(w, InvalidItemsResponse{ProductIDs: invalid}, http.StatusOK)
}

// RemoveInvalidItems удаляет из корзины позиции, которые нельзя заказать.
// @Summary      Удалить недоступные позиции
// @Tags         cart
// @Param        user_id  path  string  true  "ID пользователя"
// @Success      200  {object}  CartMutationResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/validation [delete]
func (h *CartHandler) RemoveInvalidItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}

	cart, removed, err := h.svc.RemoveInvalidItems(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "failed to remove invalid items")
		return
	}
	utils.WriteJSON(w, CartMutationResponse{Cart: CartEntityToJSON(cart), Skipped: removed}, http.StatusOK)
}

// MergeGuestCart переносит гостевую корзину в корзину пользователя.
// @Summary      Слить гостевую корзину
// @Description  Количество урезается до остатка на складе, недоступные товары возвращаются в skipped
// @Tags         cart
// @Accept       json
// @Param        user_id  path  string            true  "ID пользователя"
// @Param        request  body  MergeCartRequest  true  "Гостевая корзина"
// @Success      200  {object}  CartMutationResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/cart/merge [post]
func (h *CartHandler) MergeGuestCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}
	var req MergeCartRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, skipped, err := h.svc.MergeGuestCart(r.Context(), userID, AddLinesToService(req.Items))
	if err != nil {
		h.writeError(w, r, err, "failed to merge cart")
		return
	}
	utils.WriteJSON(w, CartMutationResponse{Cart: CartEntityToJSON(cart), Skipped: skipped}, http.StatusOK)
}
