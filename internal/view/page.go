// Package view describes the page a controller writes into: fixed, named
// display regions plus the few page-level effects the panel uses.
package view

// Page is the target of a UI event. Region ids match element ids of the
// admin templates.
type Page interface {
	// SetHTML replaces the content of region id.
	SetHTML(id, value string)
	// SetAttr sets one attribute of region id.
	SetAttr(id, attr, value string)
	// Alert shows a blocking message to the operator.
	Alert(message string)
	HideModal(id string)
	Reload()
	Download(filename, contentType string, body []byte)
}

// Write is one region update. An empty Attr means the region content.
type Write struct {
	ID    string
	Attr  string
	Value string
}

type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// Patch records what a single UI event did to the page, in order.
type Patch struct {
	Writes       []Write
	Alerts       []string
	HiddenModals []string
	Reloaded     bool
	File         *File
}

func NewPatch() *Patch {
	return &Patch{}
}

func (p *Patch) SetHTML(id, value string) {
	p.Writes = append(p.Writes, Write{ID: id, Value: value})
}

func (p *Patch) SetAttr(id, attr, value string) {
	p.Writes = append(p.Writes, Write{ID: id, Attr: attr, Value: value})
}

func (p *Patch) Alert(message string) {
	p.Alerts = append(p.Alerts, message)
}

func (p *Patch) HideModal(id string) {
	p.HiddenModals = append(p.HiddenModals, id)
}

func (p *Patch) Reload() {
	p.Reloaded = true
}

func (p *Patch) Download(filename, contentType string, body []byte) {
	p.File = &File{Name: filename, ContentType: contentType, Body: body}
}

// HTML returns the last content written to region id.
func (p *Patch) HTML(id string) (string, bool) {
	return p.lookup(id, "")
}

// Attr returns the last value written to attribute attr of region id.
func (p *Patch) Attr(id, attr string) (string, bool) {
	return p.lookup(id, attr)
}

func (p *Patch) lookup(id, attr string) (string, bool) {
	for i := len(p.Writes) - 1; i >= 0; i-- {
		w := p.Writes[i]
		if w.ID == id && w.Attr == attr {
			return w.Value, true
		}
	}
	return "", false
}

func (p *Patch) Empty() bool {
	return len(p.Writes) == 0 && len(p.Alerts) == 0 && len(p.HiddenModals) == 0 && !p.Reloaded && p.File == nil
}
