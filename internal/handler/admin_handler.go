package handler

import (
	"net/http"
	"strconv"

	"campusmarket/internal/config"
	"campusmarket/internal/middleware"
	"campusmarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /adminのHTTP（ADMINロール専用）
type AdminHandler struct {
	uc       *usecase.AdminUsecase
	reviewUC *usecase.ReviewUsecase
}

// DI
func NewAdminHandler(uc *usecase.AdminUsecase, reviewUC *usecase.ReviewUsecase) *AdminHandler {
	return &AdminHandler{uc: uc, reviewUC: reviewUC}
}

type ApprovalRequest struct {
	Approved bool `json:"approved"`
}

type PopularRequest struct {
	Popular bool `json:"popular"`
}

type FeaturedRequest struct {
	Featured bool `json:"featured"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("/overview", h.overview)
	g.GET("/vendors/pending", h.listPendingVendors)
	g.PATCH("/vendors/:id/approval", h.setVendorApproval)
	g.GET("/shops/pending", h.listPendingShops)
	g.PATCH("/shops/:id/approval", h.setShopApproval)
	g.PATCH("/products/:id/popular", h.setProductPopular)
	g.PATCH("/reviews/:id/featured", h.setReviewFeatured)
	g.GET("/orders", h.listOrders)
	g.PATCH("/orders/:id/status", h.updateOrderStatus)
}

func (h *AdminHandler) overview(c echo.Context) error {
	out, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) listPendingVendors(c echo.Context) error {
	out, err := h.uc.ListPendingVendors(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) setVendorApproval(c echo.Context) error {
	var req ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.SetVendorApproval(c.Request().Context(), c.Param("id"), req.Approved); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) listPendingShops(c echo.Context) error {
	out, err := h.uc.ListPendingShops(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) setShopApproval(c echo.Context) error {
	var req ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.SetShopApproval(c.Request().Context(), c.Param("id"), req.Approved); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) setProductPopular(c echo.Context) error {
	var req PopularRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.SetProductPopular(c.Request().Context(), c.Param("id"), req.Popular); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) setReviewFeatured(c echo.Context) error {
	var req FeaturedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.reviewUC.SetFeatured(c.Request().Context(), c.Param("id"), req.Featured); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) listOrders(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 20）
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	var userID *string
	if v := c.QueryParam("user_id"); v != "" {
		userID = &v
	}

	out, err := h.uc.ListOrders(c.Request().Context(), usecase.AdminOrderListInput{
		Page:   page,
		Limit:  limit,
		Status: c.QueryParam("status"),
		UserID: userID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) updateOrderStatus(c echo.Context) error {
	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
