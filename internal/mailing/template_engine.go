// Package mailing renders the content of the emails the service sends, using
// the Liquid template language.
package mailing

import (
	"html"
	"strings"
	"sync"

	"github.com/osteele/liquid"

	"github.com/ignite/newsletter/internal/pkg/logger"
)

// TemplateService handles Liquid template rendering with caching.
// Safe for concurrent use.
type TemplateService struct {
	engine *liquid.Engine
	cache  sync.Map // map[string]*liquid.Template
}

// NewTemplateService creates a template service with the custom filters registered.
func NewTemplateService() *TemplateService {
	ts := &TemplateService{engine: liquid.NewEngine()}
	ts.registerCustomFilters()
	return ts
}

func (ts *TemplateService) registerCustomFilters() {
	// HTML escape (safety): {{ user_input | escape }}
	ts.engine.RegisterFilter("escape", func(s string) string {
		return html.EscapeString(s)
	})

	// First word of a name: {{ name | first_name }}
	ts.engine.RegisterFilter("first_name", func(s string) string {
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return s
		}
		return fields[0]
	})
}

// Parse compiles a template string and returns any syntax errors.
func (ts *TemplateService) Parse(templateStr string) error {
	if _, err := ts.engine.ParseString(templateStr); err != nil {
		return err
	}
	return nil
}

// Render processes a template with the given bindings. Templates are cached
// under cacheKey when it is non-empty.
func (ts *TemplateService) Render(cacheKey, templateStr string, bindings map[string]interface{}) (string, error) {
	if cacheKey != "" {
		if cached, ok := ts.cache.Load(cacheKey); ok {
			return renderTemplate(cached.(*liquid.Template), bindings)
		}
	}

	tpl, err := ts.engine.ParseString(templateStr)
	if err != nil {
		logger.Error("template parse failed", "template", cacheKey, "error", err)
		return "", err
	}
	if cacheKey != "" {
		ts.cache.Store(cacheKey, tpl)
	}

	return renderTemplate(tpl, bindings)
}

func renderTemplate(tpl *liquid.Template, bindings map[string]interface{}) (string, error) {
	out, err := tpl.RenderString(bindings)
	if err != nil {
		return "", err
	}
	return out, nil
}
