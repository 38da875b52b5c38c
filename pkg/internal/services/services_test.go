package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/inkstone/inkwell/pkg/internal/database"
	"github.com/inkstone/inkwell/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDatabase(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.C = db
	require.NoError(t, database.RunMigration(db))
}

func makeAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account, err := NewAccount(name, name, name+"@example.com", "secret-pass")
	require.NoError(t, err)

	return account
}

func makePosts(t *testing.T, author models.Account, count int) []models.Post {
	t.Helper()

	items := make([]models.Post, 0, count)
	for idx := 0; idx < count; idx++ {
		item, err := NewPost(author, fmt.Sprintf("post #%d by %s", idx, author.Name), nil, "")
		require.NoError(t, err)
		items = append(items, item)
	}

	return items
}
