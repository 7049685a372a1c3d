package handlers

//go:generate mockgen -source=fridge.go -destination=fridge_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
	"github.com/sbilibin2017/gw-diet-tracker/internal/views"
)

// defaultAddQuantity is used when an add request carries no quantity.
const defaultAddQuantity = 1.0

// fridgePage is where form posts return to.
const fridgePage = "/"

// FridgeAdder adds products to a fridge.
type FridgeAdder interface {
	AddToFridge(ctx context.Context, userID, barcode int64, quantity float64) (float64, error)
}

// FridgeUpdater overwrites quantities.
type FridgeUpdater interface {
	UpdateFridge(ctx context.Context, userID, barcode int64, quantity float64) error
}

// ProductDeleter removes products from a fridge.
type ProductDeleter interface {
	DeleteProduct(ctx context.Context, userID, barcode int64) error
}

// FridgeLister lists fridge contents.
type FridgeLister interface {
	GetFridge(ctx context.Context, userID int64) ([]models.FridgeProduct, error)
}

// MealPlanner picks a meal plan from the fridge.
type MealPlanner interface {
	GetMealPlan(ctx context.Context, userID int64, count int) (*models.MealPlan, error)
}

// FridgeItemRequest represents the body of add and update calls
// swagger:model FridgeItemRequest
type FridgeItemRequest struct {
	// Barcode of a scanned product
	// required: true
	// default: 3017620422003
	Barcode json.Number `json:"barcode" swaggertype:"string"`

	// Quantity, defaults to 1 when adding
	// default: 1
	Quantity *float64 `json:"quantity,omitempty"`
}

func (req *FridgeItemRequest) decodeForm(form url.Values) error {
	req.Barcode = json.Number(strings.TrimSpace(form.Get("barcode")))
	q, err := parseOptionalFloat(form.Get("quantity"))
	if err != nil {
		return err
	}
	req.Quantity = q
	return nil
}

// DeleteProductRequest represents the body of a delete call
// swagger:model DeleteProductRequest
type DeleteProductRequest struct {
	// Barcode of the product to remove
	// required: true
	Barcode json.Number `json:"barcode" swaggertype:"string"`
}

func (req *DeleteProductRequest) decodeForm(form url.Values) error {
	req.Barcode = json.Number(strings.TrimSpace(form.Get("barcode")))
	return nil
}

// MealPlanRequest represents the body of a meal plan call
// swagger:model MealPlanRequest
type MealPlanRequest struct {
	// Number of items, defaults to 3
	// default: 3
	Count int `json:"count"`
}

func (req *MealPlanRequest) decodeForm(form url.Values) error {
	if s := strings.TrimSpace(form.Get("count")); s != "" {
		count, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		req.Count = count
	}
	return nil
}

// AddToFridgeResponse represents a successful add
// swagger:model AddToFridgeResponse
type AddToFridgeResponse struct {
	// Success message
	// default: Product added to fridge
	Message string `json:"message"`

	// Barcode of the product
	Barcode int64 `json:"barcode"`

	// Quantity after the add
	Quantity float64 `json:"quantity"`
}

// NewAddToFridgeHandler returns an HTTP handler that adds a product to the fridge.
// @Summary Add to fridge
// @Description Adds a stored product to the user's fridge. Repeated adds increase the quantity.
// @Tags fridge
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body handlers.FridgeItemRequest true "Add request"
// @Success 200 {object} handlers.AddToFridgeResponse "Product added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid barcode or quantity"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Product not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /add-to-fridge [post]
// @Security SessionCookie
func NewAddToFridgeHandler(svc FridgeAdder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}

		var req FridgeItemRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", fridgePage)
			return
		}

		barcode, err := parseBarcode(req.Barcode)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid barcode", fridgePage)
			return
		}

		quantity := defaultAddQuantity
		if req.Quantity != nil {
			quantity = *req.Quantity
		}

		total, err := svc.AddToFridge(r.Context(), claims.UserID, barcode, quantity)
		if err != nil {
			status, msg := serviceError(err)
			if status == http.StatusInternalServerError {
				logger.FromContext(r.Context()).Errorw("failed to add to fridge", "user_id", claims.UserID, "barcode", barcode, "error", err)
			}
			writeError(w, r, status, msg, fridgePage)
			return
		}

		if isForm(r) {
			http.Redirect(w, r, fridgePage, http.StatusSeeOther)
			return
		}

		writeJSON(w, http.StatusOK, AddToFridgeResponse{
			Message:  "Product added to fridge",
			Barcode:  barcode,
			Quantity: total,
		})
	}
}

// NewUpdateFridgeHandler returns an HTTP handler that overwrites a quantity.
// @Summary Update fridge quantity
// @Tags fridge
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body handlers.FridgeItemRequest true "Update request"
// @Success 200 {object} handlers.MessageResponse "Quantity updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid barcode or quantity"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Product is not in the fridge"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /update-fridge [post]
// @Security SessionCookie
func NewUpdateFridgeHandler(svc FridgeUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}

		var req FridgeItemRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", fridgePage)
			return
		}

		barcode, err := parseBarcode(req.Barcode)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid barcode", fridgePage)
			return
		}
		if req.Quantity == nil {
			writeError(w, r, http.StatusBadRequest, "Quantity is required", fridgePage)
			return
		}

		if err := svc.UpdateFridge(r.Context(), claims.UserID, barcode, *req.Quantity); err != nil {
			status, msg := serviceError(err)
			if status == http.StatusInternalServerError {
				logger.FromContext(r.Context()).Errorw("failed to update fridge", "user_id", claims.UserID, "barcode", barcode, "error", err)
			}
			writeError(w, r, status, msg, fridgePage)
			return
		}

		if isForm(r) {
			http.Redirect(w, r, fridgePage, http.StatusSeeOther)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Quantity updated"})
	}
}

// NewDeleteProductHandler returns an HTTP handler that removes a product from the fridge.
// @Summary Remove from fridge
// @Description Removes a product from the user's fridge. The product stays in the shared product store.
// @Tags fridge
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body handlers.DeleteProductRequest true "Delete request"
// @Success 200 {object} handlers.MessageResponse "Product removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid barcode"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Product is not in the fridge"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /delete-product [post]
// @Security SessionCookie
func NewDeleteProductHandler(svc ProductDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}

		var req DeleteProductRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", fridgePage)
			return
		}

		barcode, err := parseBarcode(req.Barcode)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid barcode", fridgePage)
			return
		}

		if err := svc.DeleteProduct(r.Context(), claims.UserID, barcode); err != nil {
			status, msg := serviceError(err)
			if status == http.StatusInternalServerError {
				logger.FromContext(r.Context()).Errorw("failed to delete product", "user_id", claims.UserID, "barcode", barcode, "error", err)
			}
			writeError(w, r, status, msg, fridgePage)
			return
		}

		if isForm(r) {
			http.Redirect(w, r, fridgePage, http.StatusSeeOther)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Product removed from fridge"})
	}
}

// NewFridgeHandler returns an HTTP handler that lists the fridge.
// @Summary List fridge
// @Description Returns the fridge contents sorted by quantity descending, ties by barcode ascending.
// @Tags fridge
// @Produce json
// @Success 200 {array} models.FridgeProduct "Fridge contents"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Fridge not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /fridge [get]
// @Security SessionCookie
func NewFridgeHandler(svc FridgeLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}

		items, err := svc.GetFridge(r.Context(), claims.UserID)
		if err != nil {
			status, msg := serviceError(err)
			if status == http.StatusInternalServerError {
				logger.FromContext(r.Context()).Errorw("failed to get fridge", "user_id", claims.UserID, "error", err)
			}
			writeJSON(w, status, ErrorResponse{Error: msg})
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// NewMealPlanHandler returns an HTTP handler that builds a meal plan.
// @Summary Get meal plan
// @Description Picks the first count items of the sorted fridge and sums their nutrients per 100g. Form posts get an HTML page.
// @Tags fridge
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body handlers.MealPlanRequest false "Meal plan request"
// @Success 200 {object} models.MealPlan "Meal plan"
// @Failure 400 {object} handlers.ErrorResponse "Invalid count"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Fridge not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /get-meal-plan [post]
// @Security SessionCookie
func NewMealPlanHandler(svc MealPlanner, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}

		// An empty body asks for the default plan size.
		var req MealPlanRequest
		if err := decodeRequest(r, &req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", fridgePage)
			return
		}

		plan, err := svc.GetMealPlan(r.Context(), claims.UserID, req.Count)
		if err != nil {
			status, msg := serviceError(err)
			if status == http.StatusInternalServerError {
				logger.FromContext(r.Context()).Errorw("failed to build meal plan", "user_id", claims.UserID, "error", err)
			}
			writeError(w, r, status, msg, fridgePage)
			return
		}

		// The home page form gets a rendered plan.
		if isForm(r) {
			renderPage(w, r, http.StatusOK, views.PageMealPlan, map[string]any{
				"Username": claims.Username,
				"Plan":     plan,
			})
			return
		}

		writeJSON(w, http.StatusOK, plan)
	}
}
