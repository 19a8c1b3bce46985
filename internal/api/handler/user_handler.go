package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

// UserHandler handles user registration, listing, role classification, and
// the admin-guarded verification endpoint.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users — self-registration.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     domain.Role(req.Role),
		Phone:    req.Phone,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListSellers handles GET /users/sellers.
//
// @Summary      List users with the seller role
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users/sellers [get]
func (h *UserHandler) ListSellers(c echo.Context) error {
	users, err := h.users.ListByRole(c.Request().Context(), domain.RoleSeller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListBuyers handles GET /users/buyers.
//
// @Summary      List users with the buyer role
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users/buyers [get]
func (h *UserHandler) ListBuyers(c echo.Context) error {
	users, err := h.users.ListByRole(c.Request().Context(), domain.RoleBuyer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ClassifyBuyer handles GET /user/buyer/:email. An unknown email classifies
// as false, never as an error.
//
// @Summary      Check whether an email belongs to a buyer
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  isBuyerResponse
// @Router       /user/buyer/{email} [get]
func (h *UserHandler) ClassifyBuyer(c echo.Context) error {
	ok, err := h.users.IsBuyer(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, isBuyerResponse{IsBuyer: ok})
}

// ClassifySeller handles GET /user/seller/:email.
//
// @Summary      Check whether an email belongs to a seller
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  isSellerResponse
// @Router       /user/seller/{email} [get]
func (h *UserHandler) ClassifySeller(c echo.Context) error {
	ok, err := h.users.IsSeller(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, isSellerResponse{IsSeller: ok})
}

// ClassifyAdmin handles GET /user/admin/:email.
//
// @Summary      Check whether an email belongs to an admin
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  isAdminResponse
// @Router       /user/admin/{email} [get]
func (h *UserHandler) ClassifyAdmin(c echo.Context) error {
	ok, err := h.users.IsAdmin(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, isAdminResponse{IsAdmin: ok})
}

// Verify handles PUT /user/:id — sets verified=true on the target user.
// The route is wrapped by Auth and RequireRole(admin); the target id has no
// bearing on whose role was checked.
//
// @Summary      Mark a user as verified
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  acknowledgedResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /user/{id} [put]
func (h *UserHandler) Verify(c echo.Context) error {
	if err := h.users.Verify(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, acknowledgedResponse{Acknowledged: true})
}

// Delete handles DELETE /user/:id. Deleting a missing user is not
// distinguished from success.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  acknowledgedResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, acknowledgedResponse{Acknowledged: true})
}
