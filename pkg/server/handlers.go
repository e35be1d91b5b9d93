package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/errors"
	"github.com/matzehuels/periodic/pkg/pipeline"
	"github.com/matzehuels/periodic/pkg/table"
)

// renderOptions builds pipeline options from the query string on top of the
// server defaults.
func (s *Server) renderOptions(r *http.Request, format string) pipeline.Options {
	q := r.URL.Query()
	opts := pipeline.Options{
		Category: q.Get("category"),
		Style:    s.defaults.Style,
		Theme:    s.defaults.Theme,
		CellSize: s.defaults.CellSize,
		Formats:  []string{format},
		Popups:   true,
	}
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("theme"); v != "" {
		opts.Theme = v
	}
	return opts
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options, contentType string) {
	res, err := s.runner.Render(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeArtifact(w, contentType, res.Artifacts[opts.Formats[0]])
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.renderOptions(r, pipeline.FormatHTML), "text/html; charset=utf-8")
}

func (s *Server) handleTableSVG(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.renderOptions(r, pipeline.FormatSVG), "image/svg+xml")
}

func (s *Server) handleTablePNG(w http.ResponseWriter, r *http.Request) {
	opts := s.renderOptions(r, pipeline.FormatPNG)
	opts.Engine = pipeline.EngineGraphviz
	opts.Popups = false
	s.render(w, r, opts, "image/png")
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	opts := s.renderOptions(r, pipeline.FormatJSON)
	opts.Popups = false
	s.render(w, r, opts, "application/json; charset=utf-8")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"elements": s.runner.Catalog.Len(),
	})
}

func (s *Server) handleElements(w http.ResponseWriter, r *http.Request) {
	filter := table.NoFilter()
	if v := r.URL.Query().Get("category"); v != "" {
		c, err := element.ParseCategory(v)
		if err != nil {
			writeError(w, r, err)
			return
		}
		filter = table.ByCategory(c)
	}

	out := []element.Element{}
	for _, e := range s.runner.Catalog.All() {
		if filter.Match(e) {
			out = append(out, e)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// elementDetail is one record with everything a card shows.
type elementDetail struct {
	table.Placement
	Image string `json:"image"`
}

func (s *Server) handleElement(w http.ResponseWriter, r *http.Request) {
	e, err := s.runner.Catalog.Lookup(chi.URLParam(r, "symbol"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	kind := table.KindOf(e)
	writeJSON(w, http.StatusOK, elementDetail{
		Placement: table.Placement{
			Element:  e,
			Kind:     kind,
			Position: table.GridPosition(e, kind),
			Valence:  table.ValenceElectrons(e),
			Color:    e.Color(),
		},
		Image: e.ImagePath(),
	})
}

type categoryInfo struct {
	Name  element.Category `json:"name"`
	Slug  string           `json:"slug"`
	Color string           `json:"color"`
	Count int              `json:"count"`
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	counts := s.runner.Catalog.Count()
	out := make([]categoryInfo, 0, len(counts))
	for _, c := range element.Categories() {
		out = append(out, categoryInfo{Name: c, Slug: c.Slug(), Color: element.ColorFor(c), Count: counts[c]})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "file")
	if err := errors.ValidateImageFilename(name); err != nil {
		writeError(w, r, err)
		return
	}
	if s.imagesDir == "" {
		writeError(w, r, notFound("image %s not found", name))
		return
	}
	path := filepath.Join(s.imagesDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writeError(w, r, notFound("image %s not found", name))
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, path)
}
