package server

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/matzehuels/daireno/pkg/editor"
	"github.com/matzehuels/daireno/pkg/render/sink"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Setup   editor.Setup
	Diagram template.HTML
	Routes  map[string]string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, e, err := s.load(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	svg := sink.RenderSVG(e.Drawing(), sink.WithID("diagram"), sink.WithInteractive())
	data := pageData{
		Setup:   e.Setup(),
		Diagram: template.HTML(svg),
		Routes: map[string]string{
			"generate": RouteGenerate,
			"hit":      RouteHit,
			"commit":   RouteCommit,
			"diagram":  "/api/diagram.",
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("render page", "error", err)
	}
}
