// internal/web/templates.go
package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/unclebandit/leadreach-webclient/internal/flash"
	"github.com/unclebandit/leadreach-webclient/internal/model"
	"github.com/unclebandit/leadreach-webclient/internal/service"
)

//go:embed templates/*.html
var files embed.FS

// Page is the envelope every view renders with.
type Page struct {
	Title   string
	User    *model.User
	Notices []flash.Notice
	Data    any
}

type Templates struct {
	pages map[string]*template.Template
}

var pageNames = []string{
	"login",
	"register",
	"dashboard",
	"campaigns",
	"campaign_new",
	"campaign_detail",
	"send_confirm",
	"settings",
}

func NewTemplates() *Templates {
	funcs := template.FuncMap{
		"label": service.DisplayLabel,
	}

	t := &Templates{pages: make(map[string]*template.Template)}
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(
			files,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			log.Fatalf("failed to parse template %s: %v", name, err)
		}
		t.pages[name] = tmpl
	}
	return t
}

func (t *Templates) Render(w http.ResponseWriter, name string, page Page) {
	tmpl, ok := t.pages[name]
	if !ok {
		log.Println("⚠️ unknown template:", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", page); err != nil {
		log.Println("⚠️ template render failed:", err)
	}
}
