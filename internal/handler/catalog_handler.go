package handler

import (
	"net/http"
	"strconv"

	"campusmarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 商品・ショップ閲覧の公開API
type CatalogHandler struct {
	uc       *usecase.CatalogUsecase
	reviewUC *usecase.ReviewUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase, reviewUC *usecase.ReviewUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc, reviewUC: reviewUC}
}

// 公開カタログのルートを登録
func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.listProducts)
	e.GET("/products/popular", h.listPopular)
	e.GET("/products/search", h.search)
	e.GET("/products/:id", h.productDetail)
	e.GET("/shops", h.listShops)
	e.GET("/shops/:id", h.shopDetail)
	e.GET("/shops/:id/products", h.listShopProducts)
	e.GET("/reviews/featured", h.listFeaturedReviews)
}

func (h *CatalogHandler) listProducts(c echo.Context) error {
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

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Page:     page,
		Limit:    limit,
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listPopular(c echo.Context) error {
	out, err := h.uc.ListPopularProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) search(c echo.Context) error {
	out, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) productDetail(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) listShops(c echo.Context) error {
	out, err := h.uc.ListShops(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) shopDetail(c echo.Context) error {
	s, err := h.uc.GetShop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *CatalogHandler) listShopProducts(c echo.Context) error {
	out, err := h.uc.ListShopProducts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listFeaturedReviews(c echo.Context) error {
	out, err := h.reviewUC.ListFeatured(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
