package search

// frontierItem references an arena node. seq is the push order and breaks ties
// between equal f values so results do not depend on heap internals.
type frontierItem struct {
	f   int
	seq uint64
	idx int32
}

// frontier implements heap.Interface ordered by (f, seq).
type frontier []frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) {
	*q = append(*q, x.(frontierItem))
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
