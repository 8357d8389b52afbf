package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	cartapp "github.com/OuicestnousCA/oca/application/cart"
	checkoutapp "github.com/OuicestnousCA/oca/application/checkout"
	newsletterapp "github.com/OuicestnousCA/oca/application/newsletter"
	orderapp "github.com/OuicestnousCA/oca/application/order"
	userapp "github.com/OuicestnousCA/oca/application/user"
	"github.com/OuicestnousCA/oca/constant"
	"github.com/OuicestnousCA/oca/model"
	utilsContext "github.com/OuicestnousCA/oca/utils/context"
	"github.com/OuicestnousCA/oca/utils/errors"
	validatorx "github.com/OuicestnousCA/oca/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// sessionHeader carries the browser-generated cart session id.
const sessionHeader = "X-Session-ID"

type RestHandler struct {
	UserApp       userapp.UserApp
	CartApp       cartapp.CartApp
	CheckoutApp   checkoutapp.CheckoutApp
	OrderApp      orderapp.OrderApp
	NewsletterApp newsletterapp.NewsletterApp
}

func NewTransport(UserApp userapp.UserApp, CartApp cartapp.CartApp, CheckoutApp checkoutapp.CheckoutApp, OrderApp orderapp.OrderApp, NewsletterApp newsletterapp.NewsletterApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		UserApp:       UserApp,
		CartApp:       CartApp,
		CheckoutApp:   CheckoutApp,
		OrderApp:      OrderApp,
		NewsletterApp: NewsletterApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Auth
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Cart
	router.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart", rh.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/items/{id}", rh.UpdateCartItem).Methods(http.MethodPatch)
	router.HandleFunc("/cart/items/{id}", rh.RemoveCartItem).Methods(http.MethodDelete)

	// Checkout flow
	router.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)
	router.HandleFunc("/checkout/verify", rh.CompleteCheckout).Methods(http.MethodPost)

	// Raw payment endpoints (same contract as the gateway functions)
	router.HandleFunc("/payments/initialize", rh.InitializePayment).Methods(http.MethodPost)
	router.HandleFunc("/payments/verify", rh.VerifyPayment).Methods(http.MethodPost)

	// Orders + newsletter
	router.HandleFunc("/orders/track", rh.TrackOrder).Methods(http.MethodGet)
	router.HandleFunc("/newsletter/subscribe", rh.Subscribe).Methods(http.MethodPost)

	// Admin routes: session plus role check before any handler runs
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(AdminMiddleware(UserApp))
	admin.HandleFunc("/verify", rh.VerifyAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/status", rh.UpdateOrderStatus).Methods(http.MethodPatch)

	router.Use(LoggingMiddleware())

	return router
}

func sessionID(r *http.Request) string {
	return r.Header.Get(sessionHeader)
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCart handler
// @Summary Get cart
// @Description Current session cart with derived total
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.Get(r.Context(), sid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add item to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param request body model.AddCartItemRequest true "Item"
// @Success 200 {object} model.CartResponse
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.Add(r.Context(), sid, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Update item quantity
// @Description Quantity of zero or less removes the item
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Product ID"
// @Param request body model.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} model.CartResponse
// @Router /cart/items/{id} [patch]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	productID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.UpdateQuantity(r.Context(), sid, productID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RemoveCartItem handler
// @Summary Remove item from cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Product ID"
// @Success 200 {object} model.CartResponse
// @Router /cart/items/{id} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	productID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.Remove(r.Context(), sid, productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Clear cart
// @Tags Cart
// @Param X-Session-ID header string true "Session ID"
// @Success 200
// @Router /cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CartApp.Clear(r.Context(), sid); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// Checkout handler
// @Summary Start checkout
// @Description Initializes a gateway transaction for the session cart and returns the authorization redirect URL
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param request body model.CheckoutForm true "Contact and shipping"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} errors.CustomError
// @Router /checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var form model.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.Checkout(r.Context(), sid, &form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CompleteCheckout handler
// @Summary Complete checkout
// @Description Verifies the transaction the gateway redirected back with; clears the cart only when paid
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param request body model.PaymentVerifyRequest true "Reference"
// @Success 200 {object} model.VerifyResult
// @Failure 402 {object} errors.CustomError
// @Router /checkout/verify [post]
func (s *RestHandler) CompleteCheckout(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.PaymentVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.Complete(r.Context(), sid, req.Reference)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// InitializePayment handler
// @Summary Initialize a payment transaction
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body model.PaymentInitRequest true "Payment Init Request"
// @Success 200 {object} model.InitializeResponse
// @Failure 400 {object} errors.CustomError
// @Router /payments/initialize [post]
func (s *RestHandler) InitializePayment(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentInitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.Initialize(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// VerifyPayment handler
// @Summary Verify a payment transaction
// @Description Returns the gateway verdict; materializes the order exactly once on success
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body model.PaymentVerifyRequest true "Reference"
// @Success 200 {object} model.VerifyResult
// @Failure 400 {object} errors.CustomError
// @Router /payments/verify [post]
func (s *RestHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.Verify(r.Context(), req.Reference)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// TrackOrder handler
// @Summary Track an order
// @Tags Orders
// @Produce json
// @Param order_number query string true "Order Number"
// @Param email query string true "Customer Email"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.CustomError
// @Router /orders/track [get]
func (s *RestHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := r.URL.Query().Get("order_number")
	email := r.URL.Query().Get("email")

	res, err := s.OrderApp.Track(r.Context(), orderNumber, email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Subscribe handler
// @Summary Subscribe to the newsletter
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body model.SubscribeRequest true "Email"
// @Success 200 {object} model.SubscribeResponse
// @Router /newsletter/subscribe [post]
func (s *RestHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req model.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.NewsletterApp.Subscribe(r.Context(), req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// VerifyAdmin handler
// @Summary Verify admin role
// @Description Server-authoritative role answer for the caller's session
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AdminVerifyResponse
// @Router /admin/verify [get]
func (s *RestHandler) VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())

	writeSuccess(w, model.AdminVerifyResponse{
		IsAdmin:    utilsContext.IsAdmin(r.Context()),
		UserID:     userID,
		VerifiedAt: time.Now(),
	})
}

// ListOrders handler
// @Summary List orders
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status filter"
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Success 200 {object} model.OrderListResponse
// @Router /admin/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	res, err := s.OrderApp.List(r.Context(), &model.OrderFilter{
		Status:  constant.OrderStatus(q.Get("status")),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateOrderStatus handler
// @Summary Update order status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "New status"
// @Success 200
// @Failure 400 {object} errors.CustomError
// @Router /admin/orders/{id}/status [patch]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
