// Package users binds the user list page's UI events to the admin API.
package users

import (
	"context"
	"fmt"

	"adminpanel/internal/dialog"
	"adminpanel/internal/models"
	"adminpanel/internal/upstream"
	"adminpanel/internal/view"
)

// Detail view regions.
const (
	RegionProfile     = "user-detail-profile"
	RegionName        = "user-detail-name"
	RegionType        = "type"
	RegionEmail       = "user-detail-email"
	RegionPhone       = "phone"
	RegionCreatedDate = "created_date"
	RegionCreatedUser = "created_user"
	RegionUpdatedDate = "updated_date"
	RegionUpdatedUser = "updated_user"
)

// Delete dialog regions.
const (
	RegionDeleteID      = "user-delete-id"
	RegionDeleteName    = "user-delete-name"
	RegionDeleteType    = "user-delete-type"
	RegionDeleteEmail   = "user-delete-email"
	RegionDeletePhone   = "user-delete-phone"
	RegionDeleteDob     = "user-delete-dob"
	RegionDeleteAddress = "user-delete-address"

	DeleteModal = "deleteUserModal"
)

const (
	DefaultMediaPath = "/media/"

	MsgNothingPending = "No record selected for deletion"
	MsgDialogState    = "Could not keep track of the record to delete, please try again"
)

type API interface {
	UserDetail(ctx context.Context, userID string) (*models.UserRecord, error)
	DeleteUser(ctx context.Context, userID string) error
}

type Controller struct {
	api       API
	mediaPath string
}

type Option func(*Controller)

// WithMediaPath sets the prefix avatars are served under.
func WithMediaPath(path string) Option {
	return func(c *Controller) { c.mediaPath = path }
}

func NewController(api API, opts ...Option) *Controller {
	c := &Controller{api: api, mediaPath: DefaultMediaPath}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GoToDetail fills the detail view. Apart from the type label, a region is
// only written when the record has a value for it; otherwise it keeps
// whatever it showed before.
func (c *Controller) GoToDetail(ctx context.Context, page view.Page, userID string) error {
	user, err := c.api.UserDetail(ctx, userID)
	if err != nil {
		page.Alert(upstream.Message(err))
		return err
	}

	if file := user.AvatarFile(); file != "" {
		page.SetAttr(RegionProfile, "src", c.mediaPath+file)
	}
	setIfPresent(page, RegionName, user.Fields.Name)
	page.SetHTML(RegionType, user.TypeLabel())
	setIfPresent(page, RegionEmail, user.Fields.Email)
	setIfPresent(page, RegionPhone, user.Fields.Phone)
	setIfPresent(page, RegionCreatedDate, user.Fields.CreatedAt)
	// The creator's name is serialized beside fields, like the updater's,
	// so the guard reads the top-level value.
	setIfPresent(page, RegionCreatedUser, user.CreatedUserName)
	setIfPresent(page, RegionUpdatedDate, user.Fields.UpdatedAt)
	setIfPresent(page, RegionUpdatedUser, user.UpdatedUserName)
	return nil
}

// ShowDeleteDialog fills the confirmation dialog and remembers userID as the
// record to delete.
func (c *Controller) ShowDeleteDialog(ctx context.Context, page view.Page, cell dialog.Cell, userID string) error {
	user, err := c.api.UserDetail(ctx, userID)
	if err != nil {
		page.Alert(upstream.Message(err))
		return err
	}

	if err := cell.Store(userID); err != nil {
		page.Alert(MsgDialogState)
		return fmt.Errorf("failed to store pending delete: %w", err)
	}

	page.SetHTML(RegionDeleteID, userID)
	page.SetHTML(RegionDeleteName, user.Fields.Name)
	page.SetHTML(RegionDeleteType, user.TypeLabel())
	page.SetHTML(RegionDeleteEmail, user.Fields.Email)
	page.SetHTML(RegionDeletePhone, user.Fields.Phone)
	page.SetHTML(RegionDeleteDob, user.Fields.Dob)
	page.SetHTML(RegionDeleteAddress, user.Fields.Address)
	return nil
}

func (c *Controller) Delete(ctx context.Context, page view.Page, cell dialog.Cell) error {
	userID, ok := cell.Load()
	if !ok {
		page.Alert(MsgNothingPending)
		return dialog.ErrNothingPending
	}

	if err := c.api.DeleteUser(ctx, userID); err != nil {
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

func setIfPresent(page view.Page, id, value string) {
	if value != "" {
		page.SetHTML(id, value)
	}
}
