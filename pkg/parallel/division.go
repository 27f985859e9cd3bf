package parallel

// Division identifies one partition of a parallel task: which share of the
// work an execution unit owns out of how many shares exist. Values are
// constructed by the Scheduler, copied into the task, and discarded when
// the task returns.
type Division struct {
	Index int // 0 <= Index < Count
	Count int // total number of divisions, >= 1
}

// Span returns the half-open range [begin, end) of an n-element domain
// owned by this division. The spans of all Count divisions are contiguous,
// disjoint, cover the whole domain, and differ in size by at most one
// element, so a task can safely write its own slice of a shared buffer.
func (d Division) Span(n int) (begin, end int) {
	base := n / d.Count
	extra := n % d.Count

	begin = d.Index*base + min(d.Index, extra)
	end = begin + base
	if d.Index < extra {
		end++
	}
	return begin, end
}
