package middleware

import (
	"strings"

	deliverycontext "restops/internal/delivery/context"
	"restops/internal/delivery/http/response"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	"restops/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// QueryParamToken carries the access token for browser WebSocket clients,
// which cannot set an Authorization header on the upgrade request.
const QueryParamToken = "token"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing or malformed")
		}

		principal, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid or expired token")
		}

		deliverycontext.SetPrincipal(c, *principal)

		return next(c)
	}
}

// RequireRole allows only principals holding one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authentication required")
			}

			if !allowed.Contains(principal.Role) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied for role '"+principal.Role.String()+"'")
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			return "", false
		}

		return token, true
	}

	token := c.QueryParam(QueryParamToken)

	return token, token != ""
}
