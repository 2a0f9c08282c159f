package gridpath

// queue is the FIFO frontier of a breadth-first search.
type queue[NodeType comparable] struct {
	items []NodeType
	head  int
}

func (q *queue[NodeType]) Len() int { return len(q.items) - q.head }

func (q *queue[NodeType]) Push(node NodeType) {
	q.items = append(q.items, node)
}

func (q *queue[NodeType]) Pop() NodeType {
	node := q.items[q.head]
	var zero NodeType
	q.items[q.head] = zero
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > len(q.items)/2 && q.head >= 32 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return node
}

// Snapshot copies the pending nodes in dequeue order.
func (q *queue[NodeType]) Snapshot() []NodeType {
	return append([]NodeType(nil), q.items[q.head:]...)
}
