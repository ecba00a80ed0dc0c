package handler

import (
	"net/http" // HTTP status codes and primitives

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/spidergroupcm/renthox-car-rent-server/internal/config" // app configuration
	"github.com/spidergroupcm/renthox-car-rent-server/internal/utils"  // token and cookie helpers
)

// AuthHandler bundles dependencies for the session endpoints. Sessions are
// stateless: issuing sets a signed cookie, logout clears it, nothing is
// stored server-side.
type AuthHandler struct {
	Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

// IssueToken handles POST /jwt. The request body is taken verbatim as the
// identity claim (expected shape: {email}) and signed into a 365-day session
// token delivered as the session cookie.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var identity map[string]interface{}
	if err := c.Bind(&identity); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	token, err := utils.NewSessionToken(h.Cfg.JWTSecret, identity)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	c.SetCookie(utils.NewSessionCookie(token))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Logout handles GET /logout. It instructs the client to discard the session
// cookie; the token itself stays valid until it expires (no revocation list).
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(utils.ExpiredSessionCookie())
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
