package gridpath

import "errors"

// ErrStepLimit is returned by Search when WithStepLimit is exhausted before
// the frontier empties.
var ErrStepLimit = errors.New("step limit reached")

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	// Neighbors returns the nodes reachable from node in one step, in the
	// order they should be explored.
	Neighbors(node NodeType) []NodeType
}

// SuccessorFunc adapts a plain expansion function to Graph.
type SuccessorFunc[NodeType comparable] func(node NodeType) []NodeType

func (f SuccessorFunc[NodeType]) Neighbors(node NodeType) []NodeType { return f(node) }

// GoalFunc reports whether node ends the search.
type GoalFunc[NodeType comparable] func(node NodeType) bool

// Goal returns a GoalFunc matching exactly target.
func Goal[NodeType comparable](target NodeType) GoalFunc[NodeType] {
	return func(node NodeType) bool { return node == target }
}

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	Path          []NodeType
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	StepLimit int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithStepLimit caps the number of node expansions. Zero means no limit.
func WithStepLimit(steps int) Option {
	return func(options *Options) { options.StepLimit = steps }
}

// Search runs breadth-first search from startNode until goal accepts a node
// or every reachable node has been expanded. An unreachable goal is not an
// error: the Result simply has Found == false.
func Search[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goal GoalFunc[NodeType],
	options ...Option,
) (Result[NodeType], error) {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}

	s := NewStepper(graph, startNode, goal)
	for !s.done {
		if searchOptions.StepLimit > 0 && s.stepCount >= searchOptions.StepLimit && s.frontier.Len() > 0 {
			return Result[NodeType]{ExpandedNodes: s.stepCount}, ErrStepLimit
		}
		s.advance()
	}
	return Result[NodeType]{
		Path:          s.path,
		ExpandedNodes: s.stepCount,
		Found:         s.found,
	}, nil
}

// BFS returns the first path from start to a node accepted by goal, start
// and goal inclusive, or nil and false when no such node is reachable.
func BFS[NodeType comparable](
	start NodeType,
	successors func(NodeType) []NodeType,
	goal func(NodeType) bool,
) ([]NodeType, bool) {
	res, _ := Search[NodeType](SuccessorFunc[NodeType](successors), start, goal)
	return res.Path, res.Found
}
