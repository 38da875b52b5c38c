package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkstone/inkwell/pkg/internal/database"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"github.com/inkstone/inkwell/pkg/internal/services"
)

func listGlobalPosts(c *fiber.Ctx) error {
	page, err := services.ListPostPage(database.C, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(page)
}

func listGroupPosts(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithGroup(database.C, group)
	page, err := services.ListPostPage(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"group": group,
		"count": page.Count,
		"page":  page.Page,
		"pages": page.Pages,
		"data":  page.Data,
	})
}

func getUserProfile(c *fiber.Ctx) error {
	author, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithAuthor(database.C, author.ID)
	page, err := services.ListPostPage(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// False for anonymous visitors and for authors looking at themselves.
	var following bool
	if user, authenticated := c.Locals("user").(models.Account); authenticated && user.ID != author.ID {
		following = services.IsFollowing(user.ID, author.ID)
	}

	return c.JSON(fiber.Map{
		"author":    author,
		"following": following,
		"count":     page.Count,
		"page":      page.Page,
		"pages":     page.Pages,
		"data":      page.Data,
	})
}

func listFollowedPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	tx := services.FilterPostWithFollowed(database.C, user.ID)
	page, err := services.ListPostPage(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(page)
}

func listGroups(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	groups, err := services.ListGroup(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}
