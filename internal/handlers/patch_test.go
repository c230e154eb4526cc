package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"adminpanel/internal/view"
)

func TestRenderDownload_Filename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"Token", "post_list202435140709_.csv", "attachment; filename=post_list202435140709_.csv"},
		{"Quoted", "post list (1).csv", `attachment; filename="post list (1).csv"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := view.NewPatch()
			page.Download(tt.filename, "text/csv;charset=utf-8", []byte("id\n1\n"))

			w := httptest.NewRecorder()
			renderDownload(w, httptest.NewRequest(http.MethodGet, "/panel/post/list/download", nil), nil, page)

			assert.Equal(t, tt.want, w.Header().Get("Content-Disposition"))
			assert.Equal(t, "id\n1\n", w.Body.String())
		})
	}
}
