package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGroupBySlug(t *testing.T) {
	setupDatabase(t)

	group, err := NewGroup("golang", "Go talk", "Everything gopher")
	require.NoError(t, err)

	got, err := GetGroup("golang")
	require.NoError(t, err)
	assert.Equal(t, group.ID, got.ID)

	_, err = GetGroup("missing")
	assert.Error(t, err)
}

func TestDeleteGroupKeepsPosts(t *testing.T) {
	setupDatabase(t)
	author := makeAccount(t, "poster")

	group, err := NewGroup("golang", "Go talk", "")
	require.NoError(t, err)

	item, err := NewPost(author, "grouped post", &group.ID, "")
	require.NoError(t, err)

	require.NoError(t, DeleteGroup(group))

	got, err := GetPost(item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)
	assert.Equal(t, "grouped post", got.Text)
}
