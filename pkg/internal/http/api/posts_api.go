package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/inkstone/inkwell/pkg/internal/http/exts"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"github.com/inkstone/inkwell/pkg/internal/services"
)

type postForm struct {
	Text       string `json:"text" form:"text" validate:"required"`
	Group      string `json:"group" form:"group"`
	Attachment string `json:"attachment" form:"attachment"`
}

func resolvePostGroup(slug string) (*uint, error) {
	if len(slug) == 0 {
		return nil, nil
	}

	group, err := services.GetGroup(slug)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unable to find group: %v", err))
	}

	return &group.ID, nil
}

func getPostDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post id must be a number")
	}

	item, err := services.GetPost(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comments, err := services.ListComment(item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"post":     item,
		"comments": comments,
	})
}

// showPostForm and showEditForm are the GET halves of the submission flows;
// the markup is the frontend's business, so they only describe the form.
func showPostForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"fields": []string{"text", "group", "attachment"},
	})
}

func showEditForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post id must be a number")
	}

	item, err := services.GetPost(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	user := c.Locals("user").(models.Account)
	if user.ID != item.AuthorID {
		return c.Redirect(fmt.Sprintf("/web/posts/%d", item.ID))
	}

	return c.JSON(fiber.Map{
		"fields": []string{"text", "group", "attachment"},
		"post":   item,
	})
}

func createPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	groupId, err := resolvePostGroup(data.Group)
	if err != nil {
		return err
	}

	if _, err := services.NewPost(user, data.Text, groupId, data.Attachment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/web/profile/%s", user.Name))
}

func editPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post id must be a number")
	}

	item, err := services.GetPost(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Someone else's post: no mutation, just send them to the detail view.
	if user.ID != item.AuthorID {
		return c.Redirect(fmt.Sprintf("/web/posts/%d", item.ID))
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	groupId, err := resolvePostGroup(data.Group)
	if err != nil {
		return err
	}

	if _, err := services.EditPost(item, data.Text, groupId, data.Attachment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/web/posts/%d", item.ID))
}
