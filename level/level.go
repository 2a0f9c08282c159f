// Package level loads named level layouts from text files.
//
// A level file holds one or more declarations:
//
//	// comment
//	level "level2" {
//	    diagonal true
//	    mask legacy
//	    start 2,0
//	    goal 10,6
//	    row "............."
//	    row "............."
//	}
//
// Rows are Go-quoted ASCII strings whose bytes become the cell costs. diagonal,
// mask and the start/goal route are optional; mask overrides the mask chosen
// by diagonal.
package level

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/pdrpinto/gridpath/board"
)

var (
	ErrInvalidConfig = errors.New("invalid level config")
	ErrUnknownLevel  = errors.New("unknown level")
)

// Route is the default start and goal of a level.
type Route struct {
	Start board.Pos
	Goal  board.Pos
}

// Level is one parsed declaration.
type Level struct {
	Name     string
	Rows     []string
	Diagonal bool
	// Mask is empty unless the declaration names one.
	Mask  string
	Route *Route
}

// Board builds the grid described by l.
func (l *Level) Board() (*board.Board, error) {
	var opts []board.Option
	if l.Mask != "" {
		mask, err := board.MaskByName(l.Mask)
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", l.Name, err)
		}
		opts = append(opts, board.WithMask(mask))
	}
	b, err := board.New(l.Rows, l.Diagonal, opts...)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", l.Name, err)
	}
	if r := l.Route; r != nil && (!b.InBounds(r.Start) || !b.InBounds(r.Goal)) {
		return nil, fmt.Errorf("level %q: %w: route %s -> %s outside %dx%d",
			l.Name, ErrInvalidConfig, r.Start, r.Goal, b.Width(), b.Height())
	}
	return b, nil
}

// Set is an ordered collection of uniquely named levels.
type Set struct {
	names  []string
	levels map[string]*Level
}

// Names returns level names in declaration order.
func (s *Set) Names() []string { return append([]string(nil), s.names...) }

func (s *Set) Get(name string) (*Level, error) {
	l, ok := s.levels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return l, nil
}

func (s *Set) Len() int { return len(s.names) }

// LoadFile parses the level file at path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

func ParseString(filename, src string) (*Set, error) {
	return Parse(filename, strings.NewReader(src))
}

// Parse reads level declarations from r. filename is used in error messages.
func Parse(filename string, r io.Reader) (*Set, error) {
	ast, err := parser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	set := &Set{levels: make(map[string]*Level, len(ast.Levels))}
	for _, decl := range ast.Levels {
		l, err := decl.build()
		if err != nil {
			return nil, err
		}
		if _, dup := set.levels[l.Name]; dup {
			return nil, invalidf(decl.Pos, "duplicate level %q", l.Name)
		}
		set.levels[l.Name] = l
		set.names = append(set.names, l.Name)
	}
	return set, nil
}

func (d *levelDecl) build() (*Level, error) {
	if d.Name == "" {
		return nil, invalidf(d.Pos, "empty level name")
	}
	l := &Level{Name: d.Name}
	var diagonal, mask bool
	var start, goal *point
	for _, p := range d.Props {
		switch {
		case p.Diagonal != nil:
			if diagonal {
				return nil, invalidf(p.Pos, "level %q: diagonal set twice", d.Name)
			}
			diagonal = true
			l.Diagonal = *p.Diagonal == "true"
		case p.Mask != nil:
			if mask {
				return nil, invalidf(p.Pos, "level %q: mask set twice", d.Name)
			}
			if _, err := board.MaskByName(*p.Mask); err != nil {
				return nil, invalidf(p.Pos, "level %q: %v", d.Name, err)
			}
			mask = true
			l.Mask = *p.Mask
		case p.Start != nil:
			if start != nil {
				return nil, invalidf(p.Pos, "level %q: start set twice", d.Name)
			}
			start = p.Start
		case p.Goal != nil:
			if goal != nil {
				return nil, invalidf(p.Pos, "level %q: goal set twice", d.Name)
			}
			goal = p.Goal
		case p.Row != nil:
			for i := 0; i < len(*p.Row); i++ {
				if (*p.Row)[i] >= utf8.RuneSelf {
					return nil, invalidf(p.Pos, "level %q: row %d has non-ASCII byte at column %d", d.Name, len(l.Rows), i)
				}
			}
			l.Rows = append(l.Rows, *p.Row)
		}
	}
	if len(l.Rows) == 0 {
		return nil, invalidf(d.Pos, "level %q has no rows", d.Name)
	}
	if (start == nil) != (goal == nil) {
		return nil, invalidf(d.Pos, "level %q: start and goal must be set together", d.Name)
	}
	if start != nil {
		l.Route = &Route{
			Start: board.Pos{Col: start.Col, Row: start.Row},
			Goal:  board.Pos{Col: goal.Col, Row: goal.Row},
		}
	}
	return l, nil
}

func invalidf(pos lexer.Position, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", pos, ErrInvalidConfig, fmt.Sprintf(format, args...))
}
