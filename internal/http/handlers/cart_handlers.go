package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/marketmind/marketmind/internal/cart"
	"github.com/marketmind/marketmind/internal/repo"
)

func cartFromRequest(w http.ResponseWriter, r *http.Request) (string, *cart.Cart, bool) {
	cartID := chi.URLParam(r, "cartID")
	c, ok := carts.Get(cartID)
	if !ok {
		http.Error(w, "cart not found", http.StatusNotFound)
		return "", nil, false
	}
	return cartID, c, true
}

func cartResponse(id string, c *cart.Cart, page int) CartResponse {
	if page < 1 {
		page = 1
	}
	window := c.Page(page)
	items := make([]CartItemResponse, len(window))
	for i, item := range window {
		items[i] = CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Category:  item.Category,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Total:     item.Price * float64(item.Quantity),
		}
	}
	return CartResponse{
		ID:         id,
		State:      c.State().String(),
		Items:      items,
		ItemCount:  c.Size(),
		Total:      c.Total(),
		Page:       page,
		TotalPages: c.TotalPages(),
	}
}

// CreateCartHandler godoc
// @Summary Open a new sales session
// @Tags carts
// @Produce json
// @Success 201 {object} CartResponse
// @Router /carts [post]
// @Security BearerAuth
func CreateCartHandler(w http.ResponseWriter, r *http.Request) {
	id, c := carts.Create()
	if err := writeJSON(w, http.StatusCreated, cartResponse(id, c, 1)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetCartHandler godoc
// @Summary View a cart page
// @Tags carts
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param page query int false "1-based display page"
// @Success 200 {object} CartResponse
// @Failure 404 {string} string "Not found"
// @Router /carts/{cartID} [get]
// @Security BearerAuth
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	cartID, c, ok := cartFromRequest(w, r)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if err := writeJSON(w, http.StatusOK, cartResponse(cartID, c, page)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// DropCartHandler godoc
// @Summary Discard a sales session without checking out
// @Tags carts
// @Param cartID path string true "Cart ID"
// @Success 204 "Discarded"
// @Router /carts/{cartID} [delete]
// @Security BearerAuth
func DropCartHandler(w http.ResponseWriter, r *http.Request) {
	cartID, _, ok := cartFromRequest(w, r)
	if !ok {
		return
	}
	carts.Drop(cartID)
	w.WriteHeader(http.StatusNoContent)
}

// AddCartItemHandler godoc
// @Summary Add a product to the cart
// @Description Repeated adds for the same product merge into one line.
// @Tags carts
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param item body CartItemRequest true "Product and quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /carts/{cartID}/items [post]
// @Security BearerAuth
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	cartID, c, ok := cartFromRequest(w, r)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.ProductID == 0 {
		http.Error(w, "please select a product", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "please select a product", http.StatusBadRequest)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	if err := c.Add(product, req.Quantity); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := writeJSON(w, http.StatusOK, cartResponse(cartID, c, 1)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpdateCartItemHandler godoc
// @Summary Replace the purchase quantity of a cart line
// @Description A quantity of zero or below removes the line.
// @Tags carts
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param productID path int true "Product ID"
// @Param quantity body CartQuantityRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /carts/{cartID}/items/{productID} [put]
// @Security BearerAuth
func UpdateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	cartID, c, ok := cartFromRequest(w, r)
	if !ok {
		return
	}
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req CartQuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := c.UpdateQuantity(productID, req.Quantity); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := writeJSON(w, http.StatusOK, cartResponse(cartID, c, 1)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// RemoveCartItemHandler godoc
// @Summary Remove a cart line
// @Tags carts
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param productID path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /carts/{cartID}/items/{productID} [delete]
// @Security BearerAuth
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	cartID, c, ok := cartFromRequest(w, r)
	if !ok {
		return
	}
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	c.Remove(productID)
	if err := writeJSON(w, http.StatusOK, cartResponse(cartID, c, 1)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// BeginCheckoutHandler godoc
// @Summary Freeze the cart for the checkout summary
// @Tags carts
// @Produce json
// @Param cartID path string true "Cart ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Cart is empty"
// @Failure 404 {string} string "Not found"
// @Router /carts/{cartID}/checkout/begin [post]
// @Security BearerAuth
func BeginCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	cartID, c, ok := cartFromRequest(w, r)
	if !ok {
		return
	}
	if err := c.BeginCheckout(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := writeJSON(w, http.StatusOK, cartResponse(cartID, c, 1)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// CancelCheckoutHandler godoc
// @Summary Reopen a frozen cart for edits
// @Tags carts
// @Produce json
// @Param cartID path string true "Cart ID"
// @Success 200 {object} CartResponse
// @Failure 404 {string} string "Not found"
// @Router /carts/{cartID}/checkout/cancel [post]
// @Security BearerAuth
func CancelCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	cartID, c, ok := cartFromRequest(w, r)
	if !ok {
		return
	}
	c.CancelCheckout()
	if err := writeJSON(w, http.StatusOK, cartResponse(cartID, c, 1)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// CheckoutHandler godoc
// @Summary Generate the bill and close the sales session
// @Description Builds the immutable invoice snapshot, appends it to the
// @Description bill ledger, and only then discards the session. Validation
// @Description or persistence failures leave both the cart and the ledger
// @Description untouched so the checkout can be retried.
// @Tags carts
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param checkout body CheckoutRequest true "Customer details"
// @Success 201 {object} models.Bill
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /carts/{cartID}/checkout [post]
// @Security BearerAuth
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	cartID, c, ok := cartFromRequest(w, r)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	bill, err := c.Checkout(req.CustomerName, req.PhoneNumber, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := billRepo.Create(bill)
	if err != nil {
		http.Error(w, "could not save bill", http.StatusInternalServerError)
		return
	}

	carts.Drop(cartID)
	if err := writeJSON(w, http.StatusCreated, saved); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
