package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inkstone/inkwell/pkg/internal/services"
)

// cachedPage serves the rendered response from the page cache when a fresh
// enough copy exists, keyed by path plus raw query so every page number has
// its own entry. Only the global listing route mounts it; the other listings
// stay uncached on purpose.
func cachedPage(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodGet {
		return c.Next()
	}

	path := c.Path()
	query := string(c.Request().URI().QueryString())

	if page, ok := services.GetCachedPage(path, query); ok {
		c.Set(fiber.HeaderContentType, page.ContentType)
		return c.Send(page.Body)
	}

	if err := c.Next(); err != nil {
		return err
	}

	if c.Response().StatusCode() == fiber.StatusOK {
		services.SetCachedPage(path, query, services.CachedPage{
			ContentType: string(c.Response().Header.ContentType()),
			Body:        append([]byte(nil), c.Response().Body()...),
		})
	}

	return nil
}
