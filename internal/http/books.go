package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iBelieve/anki-bible-stats-server/internal/ankistats"
)

// BooksController serves per-book Anki memorization statistics.
type BooksController struct {
	ankiDBPath string
}

func NewBooksController(ankiDBPath string) *BooksController {
	return &BooksController{ankiDBPath: ankiDBPath}
}

// GetBooks returns memorization stats for every Bible book, grouped into
// Old and New Testament, in canonical order.
func (bc *BooksController) GetBooks(c *gin.Context) {
	stats, err := ankistats.GetBibleStats(bc.ankiDBPath)
	if err != nil {
		respondInternalError(c, err, "anki book stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
