package api

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"github.com/inkstone/inkwell/pkg/internal/services"
)

const authCookieKey = "inkwell_session"

// authContext resolves the session cookie into an account and leaves it in
// the request locals. A missing or dead session just means an anonymous
// request, never an error.
func authContext(c *fiber.Ctx) error {
	if token := c.Cookies(authCookieKey); len(token) > 0 {
		if user, err := services.GetSessionAccount(token); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}

func loginRequired(c *fiber.Ctx) error {
	if _, authenticated := c.Locals("user").(models.Account); !authenticated {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	return c.Next()
}

func loginRequiredWeb(c *fiber.Ctx) error {
	if _, authenticated := c.Locals("user").(models.Account); !authenticated {
		return c.Redirect(fmt.Sprintf("/web/login?next=%s", url.QueryEscape(c.Path())))
	}

	return c.Next()
}
