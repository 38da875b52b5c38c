package services

import (
	"github.com/inkstone/inkwell/pkg/internal/models"
	"gorm.io/gorm"
)

const PostsPerPage = 10

type PostPage struct {
	Count int64         `json:"count"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Data  []models.Post `json:"data"`
}

// ListPostPage slices the filtered posts into fixed windows of PostsPerPage.
// A page number out of range is clamped to the nearest valid one, so the
// caller always gets the last page back instead of an error; an empty set
// still counts as a single empty page.
func ListPostPage(tx *gorm.DB, page int) (PostPage, error) {
	var result PostPage

	countTx := tx.Session(&gorm.Session{})
	listTx := tx.Session(&gorm.Session{})

	count, err := CountPost(countTx)
	if err != nil {
		return result, err
	}

	pages := int((count + PostsPerPage - 1) / PostsPerPage)
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	items, err := ListPost(listTx, PostsPerPage, (page-1)*PostsPerPage)
	if err != nil {
		return result, err
	}

	result = PostPage{
		Count: count,
		Page:  page,
		Pages: pages,
		Data:  items,
	}

	return result, nil
}
