package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/inkstone/inkwell/pkg/internal/cache"
	"github.com/inkstone/inkwell/pkg/internal/database"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"github.com/inkstone/inkwell/pkg/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.C = db
	require.NoError(t, database.RunMigration(db))
	require.NoError(t, cache.NewStore())

	app := fiber.New()
	MapControllers(app, "/api")
	MapWebFlows(app, "/web")

	return app
}

func signUp(t *testing.T, name string) (models.Account, string) {
	t.Helper()

	account, err := services.NewAccount(name, name, name+"@example.com", "secret-pass")
	require.NoError(t, err)

	session, err := services.NewSession(account)
	require.NoError(t, err)

	return account, session.Token
}

func testGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if len(token) > 0 {
		req.AddCookie(&http.Cookie{Name: authCookieKey, Value: token})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func testForm(t *testing.T, app *fiber.App, path, token string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if len(token) > 0 {
		req.AddCookie(&http.Cookie{Name: authCookieKey, Value: token})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return body
}
