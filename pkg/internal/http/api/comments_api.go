package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"github.com/inkstone/inkwell/pkg/internal/services"
	"github.com/rs/zerolog/log"
)

// createComment lands back on the post detail view whether the comment was
// accepted or not; an empty text is dropped without a visible error.
func createComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post id must be a number")
	}

	item, err := services.GetPost(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Text string `json:"text" form:"text"`
	}

	if err := c.BodyParser(&data); err == nil && len(strings.TrimSpace(data.Text)) > 0 {
		if _, err := services.NewComment(user, item, data.Text); err != nil {
			log.Error().Err(err).Uint("post", item.ID).Msg("An error occurred when creating comment...")
		}
	}

	return c.Redirect(fmt.Sprintf("/web/posts/%d", item.ID))
}
