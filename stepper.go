package gridpath

import (
	"github.com/pdrpinto/gridpath/internal"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Frontier  []NodeType
	Visited   int
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper runs the breadth-first search one node expansion at a time.
type Stepper[NodeType comparable] struct {
	graph Graph[NodeType]
	goal  GoalFunc[NodeType]

	frontier queue[NodeType]
	visited  map[NodeType]struct{}
	cameFrom map[NodeType]NodeType

	current   NodeType
	stepCount int
	done      bool
	found     bool
	path      []NodeType
}

// NewStepper creates a stepper with startNode as the only frontier node.
func NewStepper[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goal GoalFunc[NodeType],
) *Stepper[NodeType] {
	s := &Stepper[NodeType]{
		graph:    graph,
		goal:     goal,
		visited:  map[NodeType]struct{}{startNode: {}},
		cameFrom: make(map[NodeType]NodeType),
	}
	s.frontier.Push(startNode)
	return s
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done further calls return the final state.
func (s *Stepper[NodeType]) Step() StepSnapshot[NodeType] {
	s.advance()
	return StepSnapshot[NodeType]{
		Current:   s.current,
		Frontier:  s.frontier.Snapshot(),
		Visited:   len(s.visited),
		Done:      s.done,
		Found:     s.found,
		Path:      append([]NodeType(nil), s.path...),
		StepIndex: s.stepCount,
	}
}

// Done reports whether the search has finished.
func (s *Stepper[NodeType]) Done() bool { return s.done }

func (s *Stepper[NodeType]) advance() {
	if s.done {
		return
	}
	if s.frontier.Len() == 0 {
		s.done = true
		return
	}

	s.stepCount++
	current := s.frontier.Pop()
	s.current = current

	if s.goal(current) {
		s.done = true
		s.found = true
		s.path = internal.ReconstructPath(s.cameFrom, current)
		return
	}

	for _, next := range s.graph.Neighbors(current) {
		if _, seen := s.visited[next]; seen {
			continue
		}
		s.visited[next] = struct{}{}
		s.cameFrom[next] = current
		s.frontier.Push(next)
	}
}
