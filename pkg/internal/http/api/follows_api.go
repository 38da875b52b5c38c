package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"github.com/inkstone/inkwell/pkg/internal/services"
)

func followAuthor(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	author, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if _, err := services.FollowAuthor(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/web/profile/%s", author.Name))
}

func unfollowAuthor(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	author, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAuthor(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/web/follow")
}
