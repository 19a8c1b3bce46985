package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dealfourwheel/marketplace-api/internal/api/metrics"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

// ProductHandler handles product listing creation and queries.
type ProductHandler struct {
	products ports.ProductService
	users    ports.UserService
	logger   zerolog.Logger
}

func NewProductHandler(products ports.ProductService, users ports.UserService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{products: products, users: users, logger: logger}
}

// Create handles POST /products. The seller identity is the authenticated
// caller's email from the token, never a body field.
//
// @Summary      Create a product listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Listing details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Denormalise the seller name onto the listing; cosmetic, so a failed
	// lookup is logged but not fatal.
	sellerName := ""
	if seller, err := h.users.GetByEmail(c.Request().Context(), email); err != nil {
		h.logger.Debug().Err(err).Str("seller", email).Msg("seller name lookup failed")
	} else if seller != nil {
		sellerName = seller.Name
	}

	product, err := h.products.Create(c.Request().Context(), ports.CreateProductInput{
		Name:          req.Name,
		Category:      req.Category,
		SellerEmail:   email,
		SellerName:    sellerName,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		YearOfUse:     req.YearOfUse,
		Location:      req.Location,
		Phone:         req.Phone,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(product.Category).Inc()
	return c.JSON(http.StatusCreated, product)
}

// List handles GET /products with optional ?category and ?limit filters.
// An unknown category yields an empty array, not an error.
//
// @Summary      List product listings
// @Tags         products
// @Produce      json
// @Param        category  query    string  false  "Filter by category"
// @Param        limit     query    int     false  "Maximum number of results"
// @Success      200       {array}  domain.Product
// @Failure      400       {object} errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := ports.ProductFilter{Category: c.QueryParam("category")}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filter.Limit = limit
	}

	products, err := h.products.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListByCategory handles GET /products/:category.
//
// @Summary      List product listings in a category
// @Tags         products
// @Produce      json
// @Param        category  path     string  true  "Category name"
// @Success      200       {array}  domain.Product
// @Router       /products/{category} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.products.List(c.Request().Context(), ports.ProductFilter{
		Category: c.Param("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListBySeller handles GET /user/products/:email.
//
// @Summary      List a seller's product listings
// @Tags         products
// @Produce      json
// @Param        email  path     string  true  "Seller email"
// @Success      200    {array}  domain.Product
// @Router       /user/products/{email} [get]
func (h *ProductHandler) ListBySeller(c echo.Context) error {
	products, err := h.products.ListBySeller(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
