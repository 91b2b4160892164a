package view

import (
	"embed"
	"errors"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Имена шаблонов страниц.
const (
	StoreTemplate = "store.html"
	CartTemplate  = "cart.html"
)

// Templates — разобранные шаблоны страниц.
func Templates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{"dict": dict}).
		ParseFS(templatesFS, "templates/*.html")
}

// MustTemplates — как Templates, но с паникой (шаблоны встроены в бинарник).
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// dict — аргументы для вложенного шаблона: dict "k1" v1 "k2" v2.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	out := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("dict: keys must be strings")
		}
		out[key] = pairs[i+1]
	}
	return out, nil
}
