package lake

import "container/heap"

type candidate struct {
	z  float64
	id int
}

// frontier min-heap of candidate nodes keyed by (elevation, id).
type frontier []candidate

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].z != f[j].z {
		return f[i].z < f[j].z
	}
	return f[i].id < f[j].id
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(candidate)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	c := old[n-1]
	*f = old[:n-1]
	return c
}

func (f *frontier) push(id int, z float64) { heap.Push(f, candidate{z, id}) }
func (f *frontier) pop() candidate         { return heap.Pop(f).(candidate) }
