package handlers

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
)

// TemplateExecutor is an interface for template execution
// This allows both *template.Template and custom template registries to be used
type TemplateExecutor interface {
	ExecuteTemplate(wr io.Writer, name string, data interface{}) error
}

// TemplateRegistry holds one template set per partial file.
type TemplateRegistry struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

func NewTemplateRegistry(funcMap template.FuncMap) *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]*template.Template),
		funcMap:   funcMap,
	}
}

func (tr *TemplateRegistry) Add(name string, tmpl *template.Template) {
	tr.templates[name] = tmpl
}

func (tr *TemplateRegistry) ExecuteTemplate(w io.Writer, name string, data interface{}) error {
	if tmpl, ok := tr.templates[name]; ok {
		return tmpl.ExecuteTemplate(w, name, data)
	}

	// Partials are usually requested by the name they define, not the file name
	for _, t := range tr.templates {
		if lookup := t.Lookup(name); lookup != nil {
			return lookup.Execute(w, data)
		}
	}

	return fmt.Errorf("template %s not found", name)
}

// LoadTemplates parses templates/partials/*.html from fsys. Each partial is
// parsed together with all others since they reference each other.
func LoadTemplates(fsys fs.FS) (*TemplateRegistry, error) {
	funcMap := template.FuncMap{
		"dict": dict,
	}

	registry := NewTemplateRegistry(funcMap)

	partialFiles, err := fs.Glob(fsys, path.Join("templates", "partials", "*.html"))
	if err != nil {
		return nil, err
	}
	if len(partialFiles) == 0 {
		return nil, fmt.Errorf("no templates found")
	}

	for _, partialFile := range partialFiles {
		partialName := path.Base(partialFile)

		tmpl := template.New(partialName).Funcs(funcMap)

		for _, pf := range partialFiles {
			content, err := fs.ReadFile(fsys, pf)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", pf, err)
			}
			if _, err := tmpl.Parse(string(content)); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", pf, err)
			}
		}

		registry.Add(partialName, tmpl)
	}

	return registry, nil
}

func dict(values ...interface{}) map[string]interface{} {
	if len(values)%2 != 0 {
		return nil
	}
	d := make(map[string]interface{}, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil
		}
		d[key] = values[i+1]
	}
	return d
}
