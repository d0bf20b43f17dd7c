package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/wordladder/pkg/buildinfo"
	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/ladder"
	"github.com/matzehuels/wordladder/pkg/pipeline"
	"github.com/matzehuels/wordladder/pkg/render"
)

type healthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
	buildinfo.Info
}

type neighborsResponse struct {
	Word      string   `json:"word"`
	Neighbors []string `json:"neighbors"`
}

type distanceResponse struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Distance ladder.Distance `json:"distance"`
	Path     []string        `json:"path,omitempty"`
}

type pathsResponse struct {
	Start   string              `json:"start"`
	Depth   int                 `json:"depth"`
	Records []ladder.PathRecord `json:"records"`
}

type componentsResponse struct {
	Count      int                `json:"count"`
	Components []ladder.Component `json:"components"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Words:  s.ix.Dictionary().Len(),
		Info:   buildinfo.Current(),
	})
}

func (s *Server) neighbors(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if err := s.validateWord(word); err != nil {
		writeError(w, err)
		return
	}

	tr := s.ix.Transformer()
	var out []string
	if r.URL.Query().Get("all") == "true" {
		out = tr.Neighbors(word).Sorted()
	} else {
		out = tr.DictionaryNeighbors(s.ix.Dictionary(), word)
	}
	if out == nil {
		out = []string{}
	}
	writeJSON(w, http.StatusOK, neighborsResponse{Word: word, Neighbors: out})
}

func (s *Server) distance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	for _, word := range []string{from, to} {
		if err := s.validateWord(word); err != nil {
			writeError(w, err)
			return
		}
	}

	resp := distanceResponse{From: from, To: to}
	if q.Get("path") == "true" {
		resp.Path, resp.Distance = s.ix.ShortestPath(from, to)
	} else {
		resp.Distance = s.ix.Distance(from, to)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) paths(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start := q.Get("start")
	if err := s.validateWord(start); err != nil {
		writeError(w, err)
		return
	}

	depth := s.opts.MaxDepth
	if raw := q.Get("depth"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidDepth, "depth %q is not an integer", raw))
			return
		}
		depth = d
	}
	if err := errors.ValidateDepth(depth, s.opts.MaxDepth); err != nil {
		writeError(w, err)
		return
	}

	records := ladder.CollectPaths(s.ix.Dictionary(), s.ix.Transformer(), start, depth)
	if records == nil {
		records = []ladder.PathRecord{}
	}
	writeJSON(w, http.StatusOK, pathsResponse{Start: start, Depth: depth, Records: records})
}

func (s *Server) components(w http.ResponseWriter, r *http.Request) {
	comps, err := s.runner.Components(r.Context(), s.ix, pipeline.Options{})
	if err != nil {
		writeError(w, err)
		return
	}
	if comps == nil {
		comps = []ladder.Component{}
	}
	writeJSON(w, http.StatusOK, componentsResponse{Count: len(comps), Components: comps})
}

var graphContentTypes = map[string]string{
	render.FormatJSON: "application/json",
	render.FormatDOT:  "text/vnd.graphviz",
	render.FormatSVG:  "image/svg+xml",
}

func (s *Server) graph(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.FormatJSON
	}
	if err := errors.ValidateFormat(format, []string{render.FormatJSON, render.FormatDOT, render.FormatSVG}); err != nil {
		writeError(w, err)
		return
	}

	g, err := s.runner.Graph(r.Context(), s.ix, pipeline.Options{})
	if err != nil {
		writeError(w, err)
		return
	}
	if format == render.FormatJSON {
		writeJSON(w, http.StatusOK, g)
		return
	}

	artifacts, _, err := s.runner.RenderWithCacheInfo(r.Context(), pipeline.DictHash(s.ix.Dictionary()), g,
		s.ix.Transformer(), pipeline.Options{Formats: []string{format}})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", graphContentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(artifacts[format])
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ix.Stats())
}

// validateWord accepts dictionary words as they are and checks any other
// word against the transformer's alphabet.
func (s *Server) validateWord(word string) error {
	if s.ix.Dictionary().Contains(word) {
		return nil
	}
	return errors.ValidateWord(word, s.ix.Transformer().Alphabet())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError hides the text of internal errors.
func writeError(w http.ResponseWriter, err error) {
	status, code := errors.HTTPStatus(err)
	msg := "internal error"
	if status != http.StatusInternalServerError {
		msg = errors.UserMessage(err)
	}
	writeJSON(w, status, errorResponse{Error: string(code), Message: msg})
}
