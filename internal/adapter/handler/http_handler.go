package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rl1809/shop-catalog/internal/core/domain"
	"github.com/rl1809/shop-catalog/internal/core/service"
)

// HTTPHandler exposes the catalog over JSON HTTP. Routing and request
// shaping live here; all cache and store behavior stays in the services.
type HTTPHandler struct {
	query    *service.ProductQuery
	mutation *service.ProductMutation
	search   *service.ProductSearch
	orders   *service.OrderPlacer
}

func NewHTTPHandler(query *service.ProductQuery, mutation *service.ProductMutation, search *service.ProductSearch, orders *service.OrderPlacer) *HTTPHandler {
	return &HTTPHandler{query: query, mutation: mutation, search: search, orders: orders}
}

// Register mounts all routes on the mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("GET /api/products/latest", h.LatestProducts)
	mux.HandleFunc("GET /api/products/categories", h.Categories)
	mux.HandleFunc("GET /api/products/all", h.AllProducts)
	mux.HandleFunc("GET /api/products/search", h.SearchProducts)
	mux.HandleFunc("GET /api/products/{id}", h.SingleProduct)
	mux.HandleFunc("POST /api/products", h.CreateProduct)
	mux.HandleFunc("PUT /api/products/{id}", h.UpdateProduct)
	mux.HandleFunc("DELETE /api/products/{id}", h.DeleteProduct)
	mux.HandleFunc("POST /api/orders", h.PlaceOrder)
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *HTTPHandler) LatestProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.query.Latest(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "products": products})
}

func (h *HTTPHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.query.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "categories": categories})
}

func (h *HTTPHandler) AllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.query.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "products": products})
}

func (h *HTTPHandler) SingleProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.query.ByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "product": product})
}

func (h *HTTPHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := service.SearchRequest{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}
	if price := q.Get("price"); price != "" {
		n, err := strconv.ParseInt(price, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid price"})
			return
		}
		req.MaxPrice = n
	}
	switch q.Get("sort") {
	case "asc":
		req.Sort = domain.SortPriceAsc
	case "desc":
		req.Sort = domain.SortPriceDesc
	}
	if page := q.Get("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid page"})
			return
		}
		req.Page = n
	}

	result, err := h.search.Search(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"products":    result.Products,
		"total_pages": result.TotalPages,
	})
}

type createProductRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Category string `json:"category"`
	Photo    string `json:"photo"`
}

func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	product, err := h.mutation.Create(r.Context(), service.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		Photo:    req.Photo,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "product": product})
}

type updateProductRequest struct {
	Name     *string `json:"name"`
	Price    *int64  `json:"price"`
	Stock    *int    `json:"stock"`
	Category *string `json:"category"`
	Photo    *string `json:"photo"`
}

func (h *HTTPHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	product, err := h.mutation.Update(r.Context(), r.PathValue("id"), service.UpdateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		Photo:    req.Photo,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "product": product})
}

func (h *HTTPHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.mutation.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "product deleted"})
}

type placeOrderRequest struct {
	UserID string             `json:"user_id"`
	Lines  []domain.OrderLine `json:"lines"`
}

func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	if len(req.Lines) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "order has no lines"})
		return
	}
	for _, line := range req.Lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid order line"})
			return
		}
	}

	if err := h.orders.PlaceOrder(r.Context(), req.UserID, req.Lines); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "order placed"})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		status = http.StatusNotFound
		message = "product not found"
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		status = http.StatusConflict
		message = "insufficient stock"
	}

	writeJSON(w, status, errorResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
