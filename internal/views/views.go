// Package views renders the server-side HTML pages.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

//go:embed templates/*.html
var files embed.FS

// Page names.
const (
	PageIndex    = "index.html"
	PageLogin    = "login.html"
	PageRegister = "register.html"
	PageScan     = "scan.html"
	PageMealPlan = "meal_plan.html"
)

var tplCache = struct {
	sync.RWMutex
	m map[string]*template.Template
}{m: map[string]*template.Template{}}

// Funcs returns the helpers available to every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"year": func() int { return time.Now().Year() },
		// num prints a nullable nutrient value, "-" when absent
		"num": func(v *float64) string {
			if v == nil {
				return "-"
			}
			return strconv.FormatFloat(*v, 'f', -1, 64)
		},
		"qty": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
		"join": func(items []string) string {
			return strings.Join(items, ", ")
		},
	}
}

func lookup(name string) (*template.Template, error) {
	tplCache.RLock()
	t, ok := tplCache.m[name]
	tplCache.RUnlock()
	if ok {
		return t, nil
	}

	t, err := template.New("layout.html").Funcs(Funcs()).ParseFS(files, "templates/layout.html", "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	tplCache.Lock()
	tplCache.m[name] = t
	tplCache.Unlock()
	return t, nil
}

// Render executes page name inside the layout and writes it with status.
// Nothing is written when the template fails.
func Render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) error {
	t, err := lookup(name)
	if err != nil {
		return err
	}

	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["Path"]; !exists {
		data["Path"] = r.URL.Path
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}
