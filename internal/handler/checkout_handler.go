package handler

import (
	"net/http"

	"shop/internal/config"
	"shop/internal/middleware"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP。プリファレンス作成と、決済から戻ったあとの確定
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CreatePreferenceRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

type CreatePreferenceResponse struct {
	RedirectURL string `json:"redirect_url"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/checkout")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("/preference", h.createPreference)
	g.POST("/complete", h.complete)
}

func (h *CheckoutHandler) createPreference(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CreatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	url, err := h.uc.CreatePreference(c.Request().Context(), userID, req.ShippingAddress)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CreatePreferenceResponse{RedirectURL: url})
}

func (h *CheckoutHandler) complete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
