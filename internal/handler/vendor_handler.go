package handler

import (
	"net/http"
	"time"

	"campusmarket/internal/config"
	"campusmarket/internal/middleware"
	"campusmarket/internal/repository"
	"campusmarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /vendorのHTTP（承認済みベンダー専用）
type VendorHandler struct {
	uc       *usecase.VendorUsecase
	reportUC *usecase.SalesReportUsecase
}

// DI
func NewVendorHandler(uc *usecase.VendorUsecase, reportUC *usecase.SalesReportUsecase) *VendorHandler {
	return &VendorHandler{uc: uc, reportUC: reportUC}
}

type ShopRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Phone       string `json:"phone"`
}

type ProductRequest struct {
	ShopID      string `json:"shop_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

func (h *VendorHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/vendor")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.VendorGuard(userRepo))

	g.GET("/shops", h.listShops)
	g.POST("/shops", h.createShop)
	g.PUT("/shops/:id", h.updateShop)
	g.DELETE("/shops/:id", h.deleteShop)

	g.GET("/products", h.listProducts)
	g.POST("/products", h.createProduct)
	g.PUT("/products/:id", h.updateProduct)
	g.DELETE("/products/:id", h.deleteProduct)

	g.GET("/sales-report", h.salesReport)
}

func (h *VendorHandler) listShops(c echo.Context) error {
	vendorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListMyShops(c.Request().Context(), vendorID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *VendorHandler) createShop(c echo.Context) error {
	vendorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	vendorName := getUserNameFromContext(c)

	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateShop(c.Request().Context(), vendorID, vendorName, shopInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *VendorHandler) updateShop(c echo.Context) error {
	vendorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateShop(c.Request().Context(), vendorID, c.Param("id"), shopInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *VendorHandler) deleteShop(c echo.Context) error {
	vendorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.DeleteShop(c.Request().Context(), vendorID, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *VendorHandler) listProducts(c echo.Context) error {
	vendorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListMyProducts(c.Request().Context(), vendorID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *VendorHandler) createProduct(c echo.Context) error {
	vendorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateProduct(c.Request().Context(), vendorID, productInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *VendorHandler) updateProduct(c echo.Context) error {
	vendorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateProduct(c.Request().Context(), vendorID, c.Param("id"), productInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *VendorHandler) deleteProduct(c echo.Context) error {
	vendorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), vendorID, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GET /vendor/sales-report?from=2025-01-01&to=2025-01-31
func (h *VendorHandler) salesReport(c echo.Context) error {
	vendorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var in usecase.SalesReportInput
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from"})
		}
		in.From = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to"})
		}
		//toの指定日を含める（翌日0時まで）
		end := t.AddDate(0, 0, 1)
		in.To = &end
	}

	out, err := h.reportUC.Report(c.Request().Context(), vendorID, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func shopInput(req ShopRequest) usecase.ShopInput {
	return usecase.ShopInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Phone:       req.Phone,
	}
}

func productInput(req ProductRequest) usecase.ProductInput {
	return usecase.ProductInput{
		ShopID:      req.ShopID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
}
