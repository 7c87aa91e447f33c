package server

import (
	"net/http"

	"campusmarket/internal/config"
	"campusmarket/internal/handler"
	"campusmarket/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
	Saved    *handler.SavedHandler
	Review   *handler.ReviewHandler
	Vendor   *handler.VendorHandler
	Admin    *handler.AdminHandler
}

type Server struct {
	echo *echo.Echo
}

func New(cfg config.Config, h Handlers, userRepo repository.UserRepository) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Auth.RegisterRoutes(e, cfg)
	h.Catalog.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, cfg)
	h.Checkout.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.Saved.RegisterRoutes(e, cfg)
	h.Review.RegisterRoutes(e, cfg)
	h.Vendor.RegisterRoutes(e, cfg, userRepo)
	h.Admin.RegisterRoutes(e, cfg)

	return &Server{echo: e}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
