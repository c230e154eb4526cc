// Package viewtest provides an in-memory page for exercising controllers
// across several patches.
package viewtest

import "adminpanel/internal/view"

// Document is an in-memory copy of the page regions. Applying a Patch only
// touches the regions it writes; everything else keeps its content.
type Document struct {
	html  map[string]string
	attrs map[string]map[string]string
}

func NewDocument() *Document {
	return &Document{
		html:  make(map[string]string),
		attrs: make(map[string]map[string]string),
	}
}

func (d *Document) Apply(p *view.Patch) {
	for _, w := range p.Writes {
		if w.Attr == "" {
			d.html[w.ID] = w.Value
			continue
		}
		if d.attrs[w.ID] == nil {
			d.attrs[w.ID] = make(map[string]string)
		}
		d.attrs[w.ID][w.Attr] = w.Value
	}
}

func (d *Document) HTML(id string) string {
	return d.html[id]
}

func (d *Document) Attr(id, attr string) string {
	return d.attrs[id][attr]
}
