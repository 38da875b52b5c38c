package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inkstone/inkwell/pkg/internal/http/exts"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"github.com/inkstone/inkwell/pkg/internal/services"
)

func doRegister(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" form:"name" validate:"required,alphanum,min=3,max=32"`
		Nick     string `json:"nick" form:"nick"`
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required,min=6"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.Name, data.Nick, data.Email, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(account)
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" form:"name" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthenticateAccount(data.Name, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	session, err := services.NewSession(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieKey,
		Value:    session.Token,
		Expires:  session.ExpiredAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"token":   session.Token,
		"account": account,
	})
}

func doLogout(c *fiber.Ctx) error {
	if token := c.Cookies(authCookieKey); len(token) > 0 {
		if err := services.DeleteSession(token); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieKey,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.SendStatus(fiber.StatusNoContent)
}

func getUserinfo(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	return c.JSON(user)
}

// showLoginGate is where anonymous visitors of gated pages land. Page
// rendering is owned by the frontend; the gate only echoes where to go back.
func showLoginGate(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "authentication required",
		"next":    c.Query("next", "/web/"),
	})
}
