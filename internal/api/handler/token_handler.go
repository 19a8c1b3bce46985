package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealfourwheel/marketplace-api/internal/api/metrics"
	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

// TokenHandler issues access tokens for known identities.
type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Issue handles GET /jwt?email=... — returns a signed access token for an
// existing user, or 403 with an empty token for unknown identities.
//
// @Summary      Issue an access token
// @Tags         auth
// @Produce      json
// @Param        email  query     string  true  "User email"
// @Success      200    {object}  tokenResponse
// @Failure      403    {object}  tokenResponse
// @Router       /jwt [get]
func (h *TokenHandler) Issue(c echo.Context) error {
	email := c.QueryParam("email")

	token, err := h.tokens.Issue(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, tokenResponse{AccessToken: ""})
		}
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}
