package posts_test

import (
	"context"
	"errors"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adminpanel/internal/controllers/posts"
	"adminpanel/internal/dialog"
	"adminpanel/internal/models"
	"adminpanel/internal/upstream"
	"adminpanel/internal/view"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) PostDetail(ctx context.Context, postID string) (*models.PostRecord, error) {
	args := m.Called(ctx, postID)
	post, _ := args.Get(0).(*models.PostRecord)
	return post, args.Error(1)
}

func (m *mockAPI) PostListCSV(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}

func (m *mockAPI) DeletePost(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}

func record(t *testing.T, raw string) *models.PostRecord {
	t.Helper()
	var post models.PostRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &post))
	return &post
}

// brokenCell fails every write, like a session that cannot be saved.
type brokenCell struct {
	id string
}

func (c *brokenCell) Load() (string, bool) { return c.id, c.id != "" }
func (c *brokenCell) Store(string) error  { return errors.New("session write failed") }
func (c *brokenCell) Clear() error        { return errors.New("session write failed") }

func failure(msg string) error {
	return &upstream.RequestError{Op: upstream.OpPostDetail, StatusCode: 400, Message: msg}
}

func TestController_GoToDetail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		api := new(mockAPI)
		api.On("PostDetail", mock.Anything, "42").Return(record(t, `{
			"pk": 42,
			"fields": {"title": "Hello", "description": "World", "status": 1,
			           "created_at": "2024-03-05", "updated_at": "2024-03-06"},
			"created_user_name": "alice@example.com",
			"updated_user_name": "Bob"
		}`), nil)

		page := view.NewPatch()
		require.NoError(t, posts.NewController(api).GoToDetail(context.Background(), page, "42"))

		want := map[string]string{
			posts.RegionTitle:       "Hello",
			posts.RegionDescription: "World",
			posts.RegionStatus:      "Active",
			posts.RegionCreatedDate: "2024-03-05",
			posts.RegionCreatedUser: "alice@example.com",
			posts.RegionUpdatedDate: "2024-03-06",
			posts.RegionUpdatedUser: "Bob",
		}
		for id, v := range want {
			got, ok := page.HTML(id)
			assert.True(t, ok, id)
			assert.Equal(t, v, got, id)
		}
		assert.Empty(t, page.Alerts)
		api.AssertExpectations(t)
	})

	t.Run("StatusLabel", func(t *testing.T) {
		cases := map[string]string{
			`1`:     "Active",
			`1.0`:   "Active",
			`0`:     "Not Active",
			`null`:  "Not Active",
			`"1"`:   "Not Active",
			`true`:  "Not Active",
			`"abc"`: "Not Active",
		}
		for status, label := range cases {
			api := new(mockAPI)
			api.On("PostDetail", mock.Anything, "1").Return(record(t, `{"fields": {"status": `+status+`}}`), nil)

			page := view.NewPatch()
			require.NoError(t, posts.NewController(api).GoToDetail(context.Background(), page, "1"))

			got, _ := page.HTML(posts.RegionStatus)
			assert.Equal(t, label, got, "status %s", status)
		}
	})

	t.Run("MissingFieldsWriteEmpty", func(t *testing.T) {
		api := new(mockAPI)
		api.On("PostDetail", mock.Anything, "1").Return(record(t, `{"fields": {}}`), nil)

		page := view.NewPatch()
		require.NoError(t, posts.NewController(api).GoToDetail(context.Background(), page, "1"))

		got, ok := page.HTML(posts.RegionTitle)
		assert.True(t, ok)
		assert.Equal(t, "", got)
		assert.Len(t, page.Writes, 7)
	})

	t.Run("Failure", func(t *testing.T) {
		api := new(mockAPI)
		api.On("PostDetail", mock.Anything, "1").Return(nil, failure("Post does not exist"))

		page := view.NewPatch()
		err := posts.NewController(api).GoToDetail(context.Background(), page, "1")

		assert.Error(t, err)
		assert.Equal(t, []string{"Post does not exist"}, page.Alerts)
		assert.Empty(t, page.Writes)
	})
}

func TestController_DownloadCSV(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local) }

	t.Run("Success", func(t *testing.T) {
		api := new(mockAPI)
		api.On("PostListCSV", mock.Anything).Return([]byte("id,title\n1,Hello\n"), nil)

		page := view.NewPatch()
		ctrl := posts.NewController(api, posts.WithClock(clock))
		require.NoError(t, ctrl.DownloadCSV(context.Background(), page, []string{"3"}))

		require.NotNil(t, page.File)
		assert.Equal(t, "post_list202435140709_.csv", page.File.Name)
		assert.Equal(t, posts.CSVContentType, page.File.ContentType)
		assert.Equal(t, "id,title\n1,Hello\n", string(page.File.Body))
	})

	t.Run("Failure", func(t *testing.T) {
		api := new(mockAPI)
		api.On("PostListCSV", mock.Anything).Return(nil, failure("Export failed"))

		page := view.NewPatch()
		err := posts.NewController(api, posts.WithClock(clock)).DownloadCSV(context.Background(), page, nil)

		assert.Error(t, err)
		assert.Nil(t, page.File)
		assert.Equal(t, []string{"Export failed"}, page.Alerts)
	})
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "post_list202435140709_.csv",
		posts.ExportFilename(time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)))
	assert.Equal(t, "post_list20241231235959_.csv",
		posts.ExportFilename(time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, "post_list2025110000_.csv",
		posts.ExportFilename(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestController_DeleteWorkflow(t *testing.T) {
	t.Run("PopulateThenConfirm", func(t *testing.T) {
		api := new(mockAPI)
		api.On("PostDetail", mock.Anything, "42").Return(record(t, `{
			"fields": {"title": "Hello", "description": "World", "status": "1"}
		}`), nil)
		api.On("DeletePost", mock.Anything, "42").Return(nil).Once()

		ctrl := posts.NewController(api)
		cell := dialog.NewMemoryCell()

		dlg := view.NewPatch()
		require.NoError(t, ctrl.ShowDeleteDialog(context.Background(), dlg, cell, "42"))

		id, _ := dlg.HTML(posts.RegionDeleteID)
		assert.Equal(t, "42", id)
		title, _ := dlg.HTML(posts.RegionDeleteTitle)
		assert.Equal(t, "Hello", title)
		desc, _ := dlg.HTML(posts.RegionDeleteDescription)
		assert.Equal(t, "World", desc)
		status, _ := dlg.HTML(posts.RegionDeleteStatus)
		assert.Equal(t, "Active", status)
		assert.False(t, dlg.Reloaded)

		confirm := view.NewPatch()
		require.NoError(t, ctrl.Delete(context.Background(), confirm, cell))

		assert.Equal(t, []string{posts.DeleteModal}, confirm.HiddenModals)
		assert.True(t, confirm.Reloaded)
		assert.Empty(t, confirm.Alerts)
		api.AssertNumberOfCalls(t, "DeletePost", 1)
		api.AssertExpectations(t)

		_, pending := cell.Load()
		assert.False(t, pending)
	})

	t.Run("DialogStatusUsesStringOne", func(t *testing.T) {
		api := new(mockAPI)
		api.On("PostDetail", mock.Anything, "1").Return(record(t, `{"fields": {"status": 1}}`), nil)

		page := view.NewPatch()
		require.NoError(t, posts.NewController(api).ShowDeleteDialog(context.Background(), page, dialog.NewMemoryCell(), "1"))

		status, _ := page.HTML(posts.RegionDeleteStatus)
		assert.Equal(t, "Not Active", status)
	})

	t.Run("ConfirmUsesLatestPopulatedID", func(t *testing.T) {
		api := new(mockAPI)
		api.On("PostDetail", mock.Anything, "7").Return(record(t, `{"fields": {}}`), nil)
		api.On("PostDetail", mock.Anything, "42").Return(record(t, `{"fields": {}}`), nil)
		api.On("PostDetail", mock.Anything, "99").Return(nil, failure("Post does not exist"))
		api.On("DeletePost", mock.Anything, "42").Return(nil)

		ctrl := posts.NewController(api)
		cell := dialog.NewMemoryCell()
		ctx := context.Background()

		require.NoError(t, ctrl.ShowDeleteDialog(ctx, view.NewPatch(), cell, "7"))
		require.NoError(t, ctrl.ShowDeleteDialog(ctx, view.NewPatch(), cell, "42"))
		assert.Error(t, ctrl.ShowDeleteDialog(ctx, view.NewPatch(), cell, "99"))

		require.NoError(t, ctrl.Delete(ctx, view.NewPatch(), cell))
		api.AssertCalled(t, "DeletePost", mock.Anything, "42")
		api.AssertNotCalled(t, "DeletePost", mock.Anything, "7")
		api.AssertNotCalled(t, "DeletePost", mock.Anything, "99")
	})

	t.Run("FailedDeleteKeepsDialogOpen", func(t *testing.T) {
		api := new(mockAPI)
		api.On("DeletePost", mock.Anything, "42").Return(failure("Permission denied"))

		cell := dialog.NewMemoryCell()
		require.NoError(t, cell.Store("42"))

		page := view.NewPatch()
		err := posts.NewController(api).Delete(context.Background(), page, cell)

		assert.Error(t, err)
		assert.Equal(t, []string{"Permission denied"}, page.Alerts)
		assert.False(t, page.Reloaded)
		assert.Empty(t, page.HiddenModals)

		id, pending := cell.Load()
		assert.True(t, pending)
		assert.Equal(t, "42", id)
	})

	t.Run("NothingPending", func(t *testing.T) {
		api := new(mockAPI)

		page := view.NewPatch()
		err := posts.NewController(api).Delete(context.Background(), page, dialog.NewMemoryCell())

		assert.ErrorIs(t, err, dialog.ErrNothingPending)
		assert.Equal(t, []string{posts.MsgNothingPending}, page.Alerts)
		api.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
	})

	t.Run("CellWriteFailureAlerts", func(t *testing.T) {
		api := new(mockAPI)
		api.On("PostDetail", mock.Anything, "42").Return(record(t, `{"fields": {"title": "Hello"}}`), nil)
		api.On("DeletePost", mock.Anything, "42").Return(nil)
		ctrl := posts.NewController(api)

		dlg := view.NewPatch()
		assert.Error(t, ctrl.ShowDeleteDialog(context.Background(), dlg, &brokenCell{}, "42"))
		assert.Equal(t, []string{posts.MsgDialogState}, dlg.Alerts)
		assert.Empty(t, dlg.Writes)

		confirm := view.NewPatch()
		assert.Error(t, ctrl.Delete(context.Background(), confirm, &brokenCell{id: "42"}))
		assert.Equal(t, []string{posts.MsgDialogState}, confirm.Alerts)
		assert.True(t, confirm.Reloaded)
	})
}
