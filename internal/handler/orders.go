package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/utils"

	"github.com/go-chi/chi/v5"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type OrderHandler struct {
	httpBase
	orders   OrderService
	payments PaymentService
}

func NewOrderHandler(logger *slog.Logger, orders OrderService, payments PaymentService) *OrderHandler {
	return &OrderHandler{
		httpBase: newHTTPBase(logger, "orders"),
		orders:   orders,
		payments: payments,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Post("/users/{user_id}/orders", h.Checkout)
	r.Get("/users/{user_id}/orders", h.ListUserOrders)

	r.Get("/orders/number/{order_number}", h.GetOrderByNumber)
	r.Route("/orders/{order_id}", func(r chi.Router) {
		r.Get("/", h.GetOrderByID)
		r.Post("/status", h.TransitionStatus)
		r.Post("/ship", h.Ship)
		r.Post("/cancel", h.Cancel)
		r.Post("/payment", h.RecordPayment)
		r.Post("/pay", h.ProcessPayment)
	})
}

// Checkout оформляет заказ из корзины пользователя.
// @Summary      Оформить заказ
// @Description  Резервирует товары, создаёт заказ и очищает корзину в одной транзакции
// @Tags         orders
// @Accept       json
// @Param        user_id  path  string           true  "ID пользователя"
// @Param        request  body  CheckoutRequest  true  "Данные заказа"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Корзина пуста или содержит недоступные товары"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недостаточно товара на складе"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/orders [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}
	var req CheckoutRequest
	if !h.decode(w, r, &req) {
		return
	}
	checkout, err := CheckoutJSONToEntity(req)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.orders.CreateOrderFromCart(r.Context(), userID, checkout)
	if err != nil {
		h.writeError(w, r, err, "failed to create order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListUserOrders возвращает заказы пользователя, новые первыми.
// @Summary      Заказы пользователя
// @Tags         orders
// @Param        user_id  path   string  true   "ID пользователя"
// @Param        limit    query  int     false  "Размер страницы"  default(20)
// @Param        offset   query  int     false  "Смещение"         default(0)
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse "Неверные параметры"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/orders [get]
func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathParam(w, r, "user_id", idRule)
	if !ok {
		return
	}
	limit, err := utils.QueryUint(r, "limit", defaultListLimit)
	if err != nil || limit == 0 || limit > maxListLimit {
		utils.WriteError(w, "invalid limit", http.StatusBadRequest)
		return
	}
	offset, err := utils.QueryUint(r, "offset", 0)
	if err != nil {
		utils.WriteError(w, "invalid offset", http.StatusBadRequest)
		return
	}

	orders, err := h.orders.ListUserOrders(r.Context(), userID, limit, offset)
	if err != nil {
		h.writeError(w, r, err, "failed to list orders")
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id  path  string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()

	orderID, ok := h.pathParam(w, r, "order_id", idRule)
	if !ok {
		orderRequestTotal.WithLabelValues("bad_request").Inc()
		return
	}

	order, err := h.orders.GetOrderByID(r.Context(), orderID)
	if err != nil {
		orderRequestTotal.WithLabelValues("error").Inc()
		h.writeError(w, r, err, "failed to get order")
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	orderRequestDuration.Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetOrderByNumber возвращает заказ по человекочитаемому номеру.
// @Summary      Найти заказ по номеру
// @Tags         orders
// @Param        order_number  path  string  true  "Номер заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/number/{order_number} [get]
func (h *OrderHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	number, ok := h.pathParam(w, r, "order_number", "required,startswith=ORD,alphanum")
	if !ok {
		return
	}

	order, err := h.orders.GetOrderByNumber(r.Context(), number)
	if err != nil {
		h.writeError(w, r, err, "failed to get order by number")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// TransitionStatus переводит заказ в новый статус.
// @Summary      Сменить статус
// @Description  Допустимы только переходы из таблицы жизненного цикла заказа
// @Tags         orders
// @Accept       json
// @Param        order_id  path  string             true  "ID заказа"
// @Param        request   body  TransitionRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменён параллельно"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/status [post]
func (h *OrderHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathParam(w, r, "order_id", idRule)
	if !ok {
		return
	}
	var req TransitionRequest
	if !h.decode(w, r, &req) {
		return
	}
	status, err := entities.ParseOrderStatus(req.Status)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.orders.TransitionStatus(r.Context(), orderID, status, req.Note)
	if err != nil {
		h.writeError(w, r, err, "failed to transition order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Ship отмечает заказ отправленным.
// @Summary      Отправить заказ
// @Tags         orders
// @Accept       json
// @Param        order_id  path  string       true  "ID заказа"
// @Param        request   body  ShipRequest  true  "Данные отправки"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/ship [post]
func (h *OrderHandler) Ship(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathParam(w, r, "order_id", idRule)
	if !ok {
		return
	}
	var req ShipRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.ShipOrder(r.Context(), orderID, req.TrackingNumber, req.Carrier)
	if err != nil {
		h.writeError(w, r, err, "failed to ship order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Cancel отменяет заказ и возвращает товары на склад.
// @Summary      Отменить заказ
// @Tags         orders
// @Accept       json
// @Param        order_id  path  string         true  "ID заказа"
// @Param        request   body  CancelRequest  true  "Причина"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Заказ нельзя отменить"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathParam(w, r, "order_id", idRule)
	if !ok {
		return
	}
	var req CancelRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.CancelOrder(r.Context(), orderID, req.Reason)
	if err != nil {
		h.writeError(w, r, err, "failed to cancel order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// RecordPayment записывает статус оплаты, пришедший от шлюза.
// @Summary      Записать оплату
// @Description  PAID подтверждает ожидающий заказ
// @Tags         payments
// @Accept       json
// @Param        order_id  path  string          true  "ID заказа"
// @Param        request   body  PaymentRequest  true  "Статус оплаты"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Неизвестный статус"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/payment [post]
func (h *OrderHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathParam(w, r, "order_id", idRule)
	if !ok {
		return
	}
	var req PaymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	status, err := entities.ParsePaymentStatus(req.Status)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.payments.RecordPayment(r.Context(), orderID, status, req.TransactionID)
	if err != nil {
		h.writeError(w, r, err, "failed to record payment")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ProcessPayment списывает оплату через платёжный шлюз.
// @Summary      Оплатить заказ
// @Description  Отказ шлюза записывается как FAILED и не считается ошибкой запроса
// @Tags         payments
// @Param        order_id  path  string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Заказ уже оплачен или отменён"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/pay [post]
func (h *OrderHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathParam(w, r, "order_id", idRule)
	if !ok {
		return
	}

	order, err := h.payments.ProcessPayment(r.Context(), orderID)
	if err != nil {
		h.writeError(w, r, err, "failed to process payment")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
