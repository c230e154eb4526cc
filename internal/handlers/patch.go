package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"adminpanel/internal/view"

	"github.com/go-playground/validator/v10"
)

type attributeWrite struct {
	ID    string `json:"id"`
	Attr  string `json:"attr"`
	Value string `json:"value"`
}

// renderPatch answers an HTMX request with the regions the patch wrote as
// out-of-band swaps. Page effects travel in response headers: alerts,
// modal hides and attribute writes as HX-Trigger events, reloads as
// HX-Refresh. Always 200 so htmx performs the swap.
func renderPatch(w http.ResponseWriter, templates TemplateExecutor, page *view.Patch) {
	triggers := make(map[string]interface{})
	if len(page.Alerts) > 0 {
		triggers["showAlert"] = map[string]string{"message": strings.Join(page.Alerts, "\n")}
	}
	if len(page.HiddenModals) > 0 {
		triggers["hideModal"] = page.HiddenModals
	}

	var attrs []attributeWrite
	for _, wr := range page.Writes {
		if wr.Attr != "" {
			attrs = append(attrs, attributeWrite{ID: wr.ID, Attr: wr.Attr, Value: wr.Value})
		}
	}
	if len(attrs) > 0 {
		triggers["setAttributes"] = attrs
	}

	if len(triggers) > 0 {
		data, err := json.Marshal(triggers)
		if err != nil {
			log.Printf("Failed to encode triggers: %v", err)
		} else {
			w.Header().Set("HX-Trigger", string(data))
		}
	}
	if page.Reloaded {
		w.Header().Set("HX-Refresh", "true")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "patch", page); err != nil {
		log.Printf("Template error: %v", err)
	}
}

// renderDownload sends the patch's file as an attachment. Without a file the
// export failed: htmx callers get the alert fragment, plain links a 502
// with the message.
func renderDownload(w http.ResponseWriter, r *http.Request, templates TemplateExecutor, page *view.Patch) {
	if page.File == nil {
		if r.Header.Get("HX-Request") == "true" {
			renderPatch(w, templates, page)
			return
		}
		http.Error(w, strings.Join(page.Alerts, "\n"), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", page.File.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": page.File.Name}))
	if _, err := w.Write(page.File.Body); err != nil {
		log.Printf("Failed to write download %s: %v", page.File.Name, err)
	}
}

type idRequest struct {
	ID int64 `validate:"required,gt=0"`
}

var errInvalidID = errors.New("invalid id")

// parseID checks a record id from the query before it is sent upstream and
// returns it in canonical form.
func parseID(validate *validator.Validate, raw string) (string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return "", errInvalidID
	}
	if err := validate.Struct(idRequest{ID: id}); err != nil {
		return "", errInvalidID
	}
	return strconv.FormatInt(id, 10), nil
}

func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header for proxy setups
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
