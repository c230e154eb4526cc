// Package posts binds the post list page's UI events to the admin API.
package posts

import (
	"context"
	"fmt"
	"time"

	"adminpanel/internal/dialog"
	"adminpanel/internal/models"
	"adminpanel/internal/upstream"
	"adminpanel/internal/view"
)

// Detail view regions.
const (
	RegionTitle       = "title"
	RegionDescription = "description"
	RegionStatus      = "status"
	RegionCreatedDate = "created_date"
	RegionCreatedUser = "created_user"
	RegionUpdatedDate = "updated_date"
	RegionUpdatedUser = "updated_user"
)

// Delete dialog regions.
const (
	RegionDeleteID          = "post-delete-id"
	RegionDeleteTitle       = "post-delete-title"
	RegionDeleteDescription = "post-delete-description"
	RegionDeleteStatus      = "post-delete-status"

	DeleteModal = "deletePostModal"
)

const (
	CSVContentType = "text/csv;charset=utf-8"

	MsgNothingPending = "No record selected for deletion"
	MsgDialogState    = "Could not keep track of the record to delete, please try again"
)

type API interface {
	PostDetail(ctx context.Context, postID string) (*models.PostRecord, error)
	PostListCSV(ctx context.Context) ([]byte, error)
	DeletePost(ctx context.Context, postID string) error
}

type Controller struct {
	api API
	now func() time.Time
}

type Option func(*Controller)

// WithClock overrides the clock used for export file names.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func NewController(api API, opts ...Option) *Controller {
	c := &Controller{api: api, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GoToDetail fills the detail view. Every region is written, missing
// fields included.
func (c *Controller) GoToDetail(ctx context.Context, page view.Page, postID string) error {
	post, err := c.api.PostDetail(ctx, postID)
	if err != nil {
		page.Alert(upstream.Message(err))
		return err
	}

	page.SetHTML(RegionTitle, post.Fields.Title)
	page.SetHTML(RegionDescription, post.Fields.Description)
	page.SetHTML(RegionStatus, post.StatusLabel())
	page.SetHTML(RegionCreatedDate, post.Fields.CreatedAt)
	page.SetHTML(RegionCreatedUser, post.CreatedUserName)
	page.SetHTML(RegionUpdatedDate, post.Fields.UpdatedAt)
	page.SetHTML(RegionUpdatedUser, post.UpdatedUserName)
	return nil
}

// DownloadCSV hands the server's export of all posts to the page as a file.
// postList is what the page passes along; the export never depends on it.
func (c *Controller) DownloadCSV(ctx context.Context, page view.Page, postList []string) error {
	body, err := c.api.PostListCSV(ctx)
	if err != nil {
		page.Alert(upstream.Message(err))
		return err
	}

	page.Download(ExportFilename(c.now()), CSVContentType, body)
	return nil
}

// ShowDeleteDialog fills the confirmation dialog and remembers postID as the
// record to delete. A failed lookup leaves the remembered id alone.
func (c *Controller) ShowDeleteDialog(ctx context.Context, page view.Page, cell dialog.Cell, postID string) error {
	post, err := c.api.PostDetail(ctx, postID)
	if err != nil {
		page.Alert(upstream.Message(err))
		return err
	}

	if err := cell.Store(postID); err != nil {
		page.Alert(MsgDialogState)
		return fmt.Errorf("failed to store pending delete: %w", err)
	}

	page.SetHTML(RegionDeleteID, postID)
	page.SetHTML(RegionDeleteTitle, post.Fields.Title)
	page.SetHTML(RegionDeleteDescription, post.Fields.Description)
	page.SetHTML(RegionDeleteStatus, post.DialogStatusLabel())
	return nil
}

// Delete removes the post the dialog was last populated with. On failure the
// dialog stays open and keeps its id.
func (c *Controller) Delete(ctx context.Context, page view.Page, cell dialog.Cell) error {
	postID, ok := cell.Load()
	if !ok {
		page.Alert(MsgNothingPending)
		return dialog.ErrNothingPending
	}

	if err := c.api.DeletePost(ctx, postID); err != nil {
		page.Alert(upstream.Message(err))
		return err
	}

	clearErr := cell.Clear()
	page.HideModal(DeleteModal)
	page.Reload()
	if clearErr != nil {
		page.Alert(MsgDialogState)
		return fmt.Errorf("failed to clear pending delete: %w", clearErr)
	}
	return nil
}

// ExportFilename builds post_list<date>_.csv from t. Date components are
// concatenated without zero padding, so 2024-03-05 14:07:09 gives
// post_list202435140709_.csv.
func ExportFilename(t time.Time) string {
	date := fmt.Sprintf("%d%d%d%d%d%d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	return "post_list" + date + "_" + ".csv"
}
