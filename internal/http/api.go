package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"product-api/internal/auth"
	"product-api/internal/domain"
	"product-api/internal/repository"
	"product-api/internal/service"
)

const welcomeMessage = "Welcome to the Product API! Go to /api/products to see all products."

// Handler wires HTTP routes to domain services.
type Handler struct {
	products service.ProductService
	authSvc  service.AuthService
	tokens   *auth.TokenManager
	logger   *logrus.Logger
}

func NewHandler(products service.ProductService, authSvc service.AuthService, tokens *auth.TokenManager, logger *logrus.Logger) *Handler {
	return &Handler{
		products: products,
		authSvc:  authSvc,
		tokens:   tokens,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, welcomeMessage)
	})

	api := router.Group("/api")
	{
		api.POST("/login", h.login)
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)

		protected := api.Group("/products", requireAuth(h.tokens))
		{
			protected.POST("", h.createProduct)
			protected.PUT("/:id", h.updateProduct)
			protected.DELETE("/:id", h.deleteProduct)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Endpoint not found")
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type productRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"inStock"`
}

// validate applies the mutation payload rules: name and price must be
// present, and price must be strictly positive. First failure wins.
func (r productRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" || r.Price == nil {
		return errors.New("Name and price are required fields.")
	}
	if *r.Price <= 0 {
		return errors.New("Price must be a positive number.")
	}
	return nil
}

func (r productRequest) toInput() domain.ProductInput {
	return domain.ProductInput{
		Name:        r.Name,
		Price:       *r.Price,
		Description: r.Description,
		Category:    r.Category,
		InStock:     r.InStock,
	}
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Errorf("login: %v", err)
		respondError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (h *Handler) listProducts(c *gin.Context) {
	q, ok := parseListQuery(c)
	if !ok {
		return
	}

	page, err := h.products.ListProducts(c.Request.Context(), q)
	if err != nil {
		h.logger.Errorf("list products: %v", err)
		respondError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	data := make([]ProductResponse, len(page.Data))
	for i := range page.Data {
		data[i] = productToResponse(page.Data[i])
	}
	c.JSON(http.StatusOK, listResponse{
		Success: true,
		Count:   page.Count,
		Total:   page.Total,
		Page:    page.Page,
		Pages:   page.Pages,
		Data:    data,
	})
}

// parseListQuery reads the filter and pagination parameters. Prices
// must be numeric and page/limit must be positive integers; anything
// else is rejected with a 400 rather than silently ignored.
func parseListQuery(c *gin.Context) (service.ListQuery, bool) {
	q := service.ListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     1,
		Limit:    10,
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "minPrice must be a number.")
			return q, false
		}
		q.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "maxPrice must be a number.")
			return q, false
		}
		q.MaxPrice = &v
	}
	if raw := c.Query("inStock"); raw != "" {
		v := raw == "true"
		q.InStock = &v
	}
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "page must be a positive integer.")
			return q, false
		}
		q.Page = n
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "limit must be a positive integer.")
			return q, false
		}
		q.Limit = n
	}

	return q, true
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Errorf("get product: %v", err)
		respondError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	c.JSON(http.StatusOK, dataResponse{Success: true, Data: productToResponse(*product)})
}

func (h *Handler) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), req.toInput())
	if err != nil {
		h.logger.Errorf("create product: %v", err)
		respondError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	c.JSON(http.StatusCreated, dataResponse{Success: true, Data: productToResponse(*product)})
}

func (h *Handler) updateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Errorf("update product: %v", err)
		respondError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	c.JSON(http.StatusOK, dataResponse{Success: true, Data: productToResponse(*product)})
}

func (h *Handler) deleteProduct(c *gin.Context) {
	err := h.products.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Errorf("delete product: %v", err)
		respondError(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

type listResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Total   int               `json:"total"`
	Page    int               `json:"page"`
	Pages   int               `json:"pages"`
	Data    []ProductResponse `json:"data"`
}

type dataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
}

func productToResponse(p domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	if p.UpdatedAt != nil {
		v := p.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &v
	}
	return resp
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}
