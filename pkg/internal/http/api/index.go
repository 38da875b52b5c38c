package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapControllers(app *fiber.App, baseURL string) {
	api := app.Group(baseURL, authContext)
	{
		auth := api.Group("/auth")
		{
			auth.Post("/register", doRegister)
			auth.Post("/login", doLogin)
			auth.Post("/logout", doLogout)
		}

		api.Get("/users/me", loginRequired, getUserinfo)
		api.Get("/groups", listGroups)
	}
}

// MapWebFlows wires the page-facing routes. They keep the redirect contract
// of the rendered site: login-gated paths bounce anonymous visitors to the
// login gate with a "next" parameter, mutations answer with a redirect to
// the view that shows their result.
func MapWebFlows(app *fiber.App, baseURL string) {
	web := app.Group(baseURL, authContext)
	{
		web.Get("/", cachedPage, listGlobalPosts)
		web.Get("/login", showLoginGate)

		web.Get("/group/:slug", listGroupPosts)
		web.Get("/profile/:username", getUserProfile)

		web.Get("/posts/:postId", getPostDetail)
		web.Get("/create", loginRequiredWeb, showPostForm)
		web.Post("/create", loginRequiredWeb, createPost)
		web.Get("/posts/:postId/edit", loginRequiredWeb, showEditForm)
		web.Post("/posts/:postId/edit", loginRequiredWeb, editPost)
		web.Post("/posts/:postId/comment", loginRequiredWeb, createComment)

		web.Get("/follow", loginRequiredWeb, listFollowedPosts)
		web.Get("/profile/:username/follow", loginRequiredWeb, followAuthor)
		web.Get("/profile/:username/unfollow", loginRequiredWeb, unfollowAuthor)
	}
}
