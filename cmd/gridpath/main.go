package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/board"
	"github.com/pdrpinto/gridpath/level"
)

type config struct {
	levelsPath string
	level      string
	from, to   string
	mask       string
	maxSteps   int
	trace      bool
	list       bool
	serve      bool
	logLevel   string
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.levelsPath, "levels", "", "level file (default: built-in levels)")
	fs.StringVar(&cfg.level, "level", "level2", "level name")
	fs.StringVar(&cfg.from, "from", "", "start position col,row (default: level route)")
	fs.StringVar(&cfg.to, "to", "", "goal position col,row (default: level route)")
	fs.StringVar(&cfg.mask, "mask", "", "override movement mask: diagonal, cardinal or legacy")
	fs.IntVar(&cfg.maxSteps, "max-steps", 0, "stop after this many expansions (0: no limit)")
	fs.BoolVar(&cfg.trace, "trace", false, "log every search step at debug level")
	fs.BoolVar(&cfg.list, "list", false, "list levels and exit")
	fs.BoolVar(&cfg.serve, "serve", false, "serve text dumps over HTTP on $PORT")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func loadLevels(path string) (*level.Set, error) {
	if path == "" {
		return level.Builtin(), nil
	}
	return level.LoadFile(path)
}

// job is a resolved board plus route, ready to search.
type job struct {
	name  string
	board *board.Board
	start board.Pos
	goal  board.Pos
}

var errNoRoute = errors.New("level has no route; pass start and goal")

func resolve(set *level.Set, name, mask, from, to string) (*job, error) {
	l, err := set.Get(name)
	if err != nil {
		return nil, err
	}
	if mask != "" {
		override := *l
		override.Mask = mask
		l = &override
	}
	b, err := l.Board()
	if err != nil {
		return nil, err
	}

	j := &job{name: l.Name, board: b}
	if l.Route != nil {
		j.start, j.goal = l.Route.Start, l.Route.Goal
	} else if from == "" || to == "" {
		return nil, fmt.Errorf("%q: %w", name, errNoRoute)
	}
	if from != "" {
		if j.start, err = board.ParsePos(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if j.goal, err = board.ParsePos(to); err != nil {
			return nil, err
		}
	}
	for _, p := range []board.Pos{j.start, j.goal} {
		if !b.InBounds(p) {
			return nil, fmt.Errorf("%s on %dx%d level %q: %w", p, b.Width(), b.Height(), name, board.ErrOutOfBounds)
		}
	}
	return j, nil
}

// search runs the job on a stepper, handing every snapshot to visit.
func (j *job) search(limit int, visit func(gridpath.StepSnapshot[board.Pos])) (gridpath.Result[board.Pos], error) {
	if visit == nil {
		return gridpath.Search[board.Pos](j.board, j.start, gridpath.Goal(j.goal), gridpath.WithStepLimit(limit))
	}
	s := gridpath.NewStepper[board.Pos](j.board, j.start, gridpath.Goal(j.goal))
	var snap gridpath.StepSnapshot[board.Pos]
	for !s.Done() {
		if limit > 0 && snap.StepIndex >= limit && len(snap.Frontier) > 0 {
			return gridpath.Result[board.Pos]{ExpandedNodes: snap.StepIndex}, gridpath.ErrStepLimit
		}
		snap = s.Step()
		visit(snap)
	}
	return gridpath.Result[board.Pos]{Path: snap.Path, ExpandedNodes: snap.StepIndex, Found: snap.Found}, nil
}

func formatStep(snap gridpath.StepSnapshot[board.Pos]) string {
	return fmt.Sprintf("step=%d current=%s frontier=%d visited=%d done=%t found=%t",
		snap.StepIndex, snap.Current, len(snap.Frontier), snap.Visited, snap.Done, snap.Found)
}

func run(w io.Writer, set *level.Set, cfg config, logger *log.Logger) error {
	j, err := resolve(set, cfg.level, cfg.mask, cfg.from, cfg.to)
	if err != nil {
		return err
	}
	entry := logger.WithFields(log.Fields{"level": j.name, "from": j.start, "to": j.goal})
	entry.Info("searching")

	var visit func(gridpath.StepSnapshot[board.Pos])
	if cfg.trace {
		visit = func(snap gridpath.StepSnapshot[board.Pos]) { entry.Debug(formatStep(snap)) }
	}
	res, err := j.search(cfg.maxSteps, visit)
	if err != nil {
		return err
	}
	if !res.Found {
		if err := j.board.Render(w, nil); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "no path from %s to %s (expanded=%d)\n", j.start, j.goal, res.ExpandedNodes)
		return err
	}

	cost, err := j.board.PathCost(res.Path)
	if err != nil {
		return err
	}
	if err := j.board.Render(w, res.Path); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "hops=%d cost=%d expanded=%d\n", len(res.Path)-1, cost, res.ExpandedNodes)
	return err
}

func listLevels(w io.Writer, set *level.Set) error {
	for _, name := range set.Names() {
		l, _ := set.Get(name)
		b, err := l.Board()
		if err != nil {
			return err
		}
		route := "-"
		if l.Route != nil {
			route = fmt.Sprintf("%s->%s", l.Route.Start, l.Route.Goal)
		}
		if _, err := fmt.Fprintf(w, "%-10s %3dx%-3d %-9s %s\n", name, b.Width(), b.Height(), b.Mask().Name(), route); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	lvl, err := log.ParseLevel(cfg.logLevel)
	if err != nil {
		log.Fatalf("log level: %v", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	set, err := loadLevels(cfg.levelsPath)
	if err != nil {
		log.Fatalf("loading levels: %v", err)
	}
	log.Debugf("loaded %d levels: %s", set.Len(), strings.Join(set.Names(), ", "))

	switch {
	case cfg.list:
		err = listLevels(os.Stdout, set)
	case cfg.serve:
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
			log.Printf("Defaulting to port %s", port)
		}
		var srv *Server
		srv, err = NewServer(set, log.StandardLogger(), cfg.maxSteps)
		if err == nil {
			log.Printf("serving %d levels on :%s", set.Len(), port)
			err = http.ListenAndServe(":"+port, srv)
		}
	default:
		err = run(os.Stdout, set, cfg, log.StandardLogger())
	}
	if err != nil {
		log.Fatalln(err)
	}
}
