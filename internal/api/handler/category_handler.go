package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

// CategoryHandler serves the read-only category collection.
type CategoryHandler struct {
	categories ports.CategoryService
}

func NewCategoryHandler(categories ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /categories.
//
// @Summary      List vehicle categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}
