package contents

import (
	"context"
	"time"

	"github.com/DIMO-Network/line-blog-webhook/internal/services/contentstore"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
)

// Lister reads stored articles.
type Lister interface {
	List(ctx context.Context) ([]contentstore.GeneratedContent, error)
}

// ContentView is a stored article as returned by the API.
type ContentView struct {
	// ID is the store identifier of the article.
	ID string `json:"id"`
	// FileName is the display file name, blog_{topic}_{unixMillis}.md.
	FileName string `json:"fileName"`
	// Topic is the message text the article was written about.
	Topic string `json:"topic"`
	// Content is the generated markdown.
	Content string `json:"content"`
	// CreatedAt is when the article was stored.
	CreatedAt time.Time `json:"createdAt"`
}

// ContentsController exposes generated articles to the blog site.
type ContentsController struct {
	store Lister
}

// NewContentsController creates a new ContentsController.
func NewContentsController(store Lister) *ContentsController {
	return &ContentsController{store: store}
}

// ListContents godoc
// @Summary      List generated articles
// @Description  Returns every article stored since the service started, in creation order.
// @Tags         Contents
// @Produce      json
// @Success      200  {array}   ContentView
// @Failure      500  {object}  map[string]string  "Internal server error"
// @Router       /v1/contents [get]
func (cc *ContentsController) ListContents(c *fiber.Ctx) error {
	records, err := cc.store.List(c.UserContext())
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to list contents",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	out := make([]ContentView, 0, len(records))
	for _, r := range records {
		out = append(out, ContentView{
			ID:        r.ID,
			FileName:  r.FileName,
			Topic:     r.Topic,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
		})
	}
	return c.JSON(out)
}
