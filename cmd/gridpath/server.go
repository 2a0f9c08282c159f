package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/board"
	"github.com/pdrpinto/gridpath/level"
)

// Server serves text dumps of levels and their search results.
type Server struct {
	router   *way.Router
	levels   *level.Set
	log      *log.Logger
	maxSteps int
}

type levelInfo struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mask   string `json:"mask"`
	Start  []int  `json:"start,omitempty"`
	Goal   []int  `json:"goal,omitempty"`
}

// NewServer validates every level in set up front so that handlers only see
// levels that build.
func NewServer(set *level.Set, logger *log.Logger, maxSteps int) (*Server, error) {
	for _, name := range set.Names() {
		l, _ := set.Get(name)
		if _, err := l.Board(); err != nil {
			return nil, err
		}
	}
	s := &Server{levels: set, log: logger, maxSteps: maxSteps}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", "/levels", s.handleLevels)
	s.router.HandleFunc("GET", "/levels/:name", s.handleLevel)
	s.router.HandleFunc("GET", "/levels/:name/path", s.handlePath)
	s.router.HandleFunc("GET", "/levels/:name/trace", s.handleTrace)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	infos := make([]levelInfo, 0, s.levels.Len())
	for _, name := range s.levels.Names() {
		l, _ := s.levels.Get(name)
		b, _ := l.Board()
		info := levelInfo{Name: name, Width: b.Width(), Height: b.Height(), Mask: b.Mask().Name()}
		if l.Route != nil {
			info.Start = []int{l.Route.Start.Col, l.Route.Start.Row}
			info.Goal = []int{l.Route.Goal.Col, l.Route.Goal.Row}
		}
		infos = append(infos, info)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(infos)
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	name := way.Param(r.Context(), "name")
	l, err := s.levels.Get(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	b, _ := l.Board()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := b.Render(w, nil); err != nil {
		s.log.WithError(err).Warn("handleLevel write failed")
	}
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	j, ok := s.resolve(w, r)
	if !ok {
		return
	}
	res, err := j.search(s.maxSteps, nil)
	if err != nil {
		s.searchFailed(w, j, err)
		return
	}
	entry := s.log.WithFields(log.Fields{"level": j.name, "from": j.start, "to": j.goal})
	if !res.Found {
		entry.Info("handlePath no path")
		http.Error(w, fmt.Sprintf("no path from %s to %s", j.start, j.goal), http.StatusNotFound)
		return
	}
	entry.WithField("hops", len(res.Path)-1).Info("handlePath found")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := j.board.Render(w, res.Path); err != nil {
		entry.WithError(err).Warn("handlePath write failed")
	}
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	j, ok := s.resolve(w, r)
	if !ok {
		return
	}
	var lines strings.Builder
	_, err := j.search(s.maxSteps, func(snap gridpath.StepSnapshot[board.Pos]) {
		lines.WriteString(formatStep(snap))
		lines.WriteByte('\n')
	})
	if err != nil {
		s.searchFailed(w, j, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, lines.String())
}

// resolve writes the error response itself and reports false on failure.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (*job, bool) {
	name := way.Param(r.Context(), "name")
	q := r.URL.Query()
	j, err := resolve(s.levels, name, "", q.Get("from"), q.Get("to"))
	switch {
	case err == nil:
		return j, true
	case errors.Is(err, level.ErrUnknownLevel):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
	s.log.WithError(err).WithField("level", name).Info("rejected request")
	return nil, false
}

func (s *Server) searchFailed(w http.ResponseWriter, j *job, err error) {
	s.log.WithError(err).WithField("level", j.name).Warn("search aborted")
	http.Error(w, err.Error(), http.StatusServiceUnavailable)
}
