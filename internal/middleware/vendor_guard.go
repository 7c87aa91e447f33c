package middleware

import (
	"net/http"

	"campusmarket/internal/repository"

	"github.com/labstack/echo/v4"
)

// VendorGuard は承認済みベンダーだけ通す。
// approvedはトークン発行時の値なので、承認取り消しを即反映するためDBを確認する。
func VendorGuard(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if role != "VENDOR" {
				return c.JSON(http.StatusForbidden, errorJSON("vendor only"))
			}

			rawUserID := c.Get(CtxUserIDKey)
			userID, ok := rawUserID.(string)
			if !ok || userID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//DBから最新のuserを取得する
			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil || user == nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//未承認ベンダーは出店操作できない（403）
			if !user.Approved {
				return c.JSON(http.StatusForbidden, errorJSON("pending approval"))
			}

			return next(c)
		}
	}
}
