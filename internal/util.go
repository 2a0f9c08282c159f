package internal

import "slices"

// ReconstructPath walks cameFrom back from current until it reaches a node
// with no predecessor and returns the nodes in forward order.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
) []NodeType {
	path := []NodeType{current}
	for {
		previous, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previous)
		current = previous
	}
	slices.Reverse(path)
	return path
}
