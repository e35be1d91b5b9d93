package sink

import (
	"bytes"
	"html/template"

	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/errors"
	"github.com/matzehuels/periodic/pkg/render/layout"
	"github.com/matzehuels/periodic/pkg/render/styles"
)

// DefaultTitle is the page title used when [Page.Title] is empty.
const DefaultTitle = "Interactive Periodic Table"

// Page describes the interactive HTML page.
type Page struct {
	Title  string
	Layout layout.Layout
	Style  styles.Style
	Theme  styles.Theme

	// Category is the initially selected filter. Empty shows every element.
	Category element.Category

	// Categories lists the filter buttons. Nil uses every known category.
	Categories []element.Category
}

type filterButton struct {
	Category string
	Color    template.CSS
	Active   bool
}

// cssTheme carries theme colors into style contexts. Overlay colors contain
// parentheses, which html/template rejects in plain strings.
type cssTheme struct {
	Background, Text, Card, Overlay, Button, ButtonActive template.CSS
}

func toCSS(t styles.Theme) cssTheme {
	return cssTheme{
		Background:   template.CSS(t.Background),
		Text:         template.CSS(t.Text),
		Card:         template.CSS(t.Card),
		Overlay:      template.CSS(t.Overlay),
		Button:       template.CSS(t.Button),
		ButtonActive: template.CSS(t.ButtonActive),
	}
}

type pageData struct {
	Title   string
	Theme   string
	Light   cssTheme
	Dark    cssTheme
	Active  string
	Buttons []filterButton
	SVG     template.HTML
}

// RenderHTML renders a self-contained page. Theme switching and category
// filtering run in the browser, so one page serves every combination.
func RenderHTML(p Page) ([]byte, error) {
	if p.Style == nil {
		p.Style = styles.Simple{}
	}
	if p.Theme.Name == "" {
		p.Theme = styles.DefaultTheme
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	cats := p.Categories
	if cats == nil {
		cats = element.Categories()
	}

	svg := RenderSVG(p.Layout, WithStyle(p.Style), WithTheme(p.Theme), WithPopups(), WithImages())

	data := pageData{
		Title:   p.Title,
		Theme:   p.Theme.Name,
		Light:   toCSS(styles.Light),
		Dark:    toCSS(styles.Dark),
		Active:  string(p.Category),
		Buttons: make([]filterButton, 0, len(cats)),
		SVG:     template.HTML(svg),
	}
	for _, c := range cats {
		data.Buttons = append(data.Buttons, filterButton{
			Category: string(c),
			Color:    template.CSS(element.ColorFor(c)),
			Active:   c == p.Category,
		})
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render html page")
	}
	return buf.Bytes(), nil
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body[data-theme="light"] { --bg: {{.Light.Background}}; --text: {{.Light.Text}}; --card: {{.Light.Card}}; --overlay: {{.Light.Overlay}}; --button: {{.Light.Button}}; --button-active: {{.Light.ButtonActive}}; }
  body[data-theme="dark"] { --bg: {{.Dark.Background}}; --text: {{.Dark.Text}}; --card: {{.Dark.Card}}; --overlay: {{.Dark.Overlay}}; --button: {{.Dark.Button}}; --button-active: {{.Dark.ButtonActive}}; }
  body { margin: 0; min-height: 100vh; background: var(--bg); color: var(--text); font-family: Helvetica, Arial, sans-serif; transition: background-color 0.3s ease; }
  main { display: flex; flex-direction: column; align-items: center; padding: 1rem; }
  h1 { font-size: 1.6rem; font-weight: 600; margin: 0.5rem 0 1rem; }
  .filters { display: flex; flex-wrap: wrap; gap: 0.5rem; justify-content: center; margin-bottom: 1rem; }
  .filter { padding: 0.5rem 1rem; border-radius: 20px; border: 1px solid var(--button); background: var(--button); color: var(--text); cursor: pointer; font-size: 0.9rem; white-space: nowrap; transition: all 0.3s cubic-bezier(0.4, 0, 0.2, 1); }
  .filter::before { content: ""; display: inline-block; width: 0.6rem; height: 0.6rem; border-radius: 50%; margin-right: 0.4rem; background: var(--swatch); }
  .filter:hover { transform: translateY(-1px); box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1); }
  .filter.active { background: var(--button-active); font-weight: 600; }
  .theme-toggle { position: fixed; top: 1.5rem; right: 1.5rem; padding: 0.6rem 1.2rem; border-radius: 30px; border: 1px solid var(--button-active); background: var(--button); color: var(--text); cursor: pointer; font-weight: 500; backdrop-filter: blur(8px); }
  .table svg { max-width: 100%; height: auto; overflow: visible; }
  .card text, .popup text { fill: var(--text); }
  .orbit-ring, .popup line { stroke: var(--text); }
  .electron { fill: var(--text); }
  .popup > rect:first-child { fill: var(--card); stroke: var(--text); filter: drop-shadow(0 4px 20px var(--overlay)); }
  .popup-row { fill: var(--bg); }
</style>
</head>
<body data-theme="{{.Theme}}" data-category="{{.Active}}">
<button class="theme-toggle" type="button" id="theme-toggle"></button>
<main>
<h1>{{.Title}}</h1>
<nav class="filters">
{{- range .Buttons}}
  <button class="filter{{if .Active}} active{{end}}" type="button" data-category="{{.Category}}" style="--swatch: {{.Color}}">{{.Category}}</button>
{{- end}}
</nav>
<div class="table">
{{.SVG}}
</div>
</main>
<script>
(function() {
  const body = document.body;
  const toggle = document.getElementById('theme-toggle');
  function label() {
    toggle.textContent = body.dataset.theme === 'dark' ? '☀️ Light Mode' : '🌙 Dark Mode';
  }
  toggle.addEventListener('click', () => {
    body.dataset.theme = body.dataset.theme === 'dark' ? 'light' : 'dark';
    label();
  });
  function applyFilter(category) {
    body.dataset.category = category;
    document.querySelectorAll('.filter').forEach(b => b.classList.toggle('active', b.dataset.category === category));
    document.querySelectorAll('.card').forEach(c => c.classList.toggle('hidden', category !== '' && c.dataset.category !== category));
  }
  document.querySelectorAll('.filter').forEach(b => b.addEventListener('click', () => {
    applyFilter(body.dataset.category === b.dataset.category ? '' : b.dataset.category);
  }));
  label();
  applyFilter(body.dataset.category || '');
})();
</script>
</body>
</html>
`))
