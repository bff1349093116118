// Package web 服务端渲染的公开页面。每个页面由布局、卡片模板和页面自身的 content 组成。
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gin-gonic/gin/render"

	"unionsite/pkg/markdown"
)

//go:embed templates/*.html
var templateFS embed.FS

// 可渲染的页面
var pageNames = []string{
	"home",
	"executives",
	"news",
	"news_detail",
	"events",
	"event_detail",
	"services",
	"complaint",
	"not_found",
}

// Site 页面公共信息
type Site struct {
	Name string
	URL  string
}

// Page 传给页面模板的数据
type Page struct {
	Site  Site
	Title string
	Nav   string
	Data  interface{}
}

// Renderer 页面渲染器，实现 gin 的 render.HTMLRender
type Renderer struct {
	site  Site
	pages map[string]*template.Template
}

// New 解析全部页面模板
func New(md *markdown.Renderer, site Site) (*Renderer, error) {
	funcs := template.FuncMap{
		"markdown": md.Render,
		"date":     formatDate,
		"datetime": formatDateTime,
		"dateptr":  formatDatePtr,
	}

	r := &Renderer{site: site, pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/cards.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Instance 实现 render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = r.pages["not_found"]
	}
	if p, ok := data.(Page); ok {
		p.Site = r.site
		data = p
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
