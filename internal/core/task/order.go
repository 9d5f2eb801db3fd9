package task

import "slices"

// canonicalOrder returns incomplete tasks followed by complete tasks, each
// group stable-sorted ascending by SortKey.
func canonicalOrder(tasks []*Task) []*Task {
	var (
		open = make([]*Task, 0, len(tasks))
		done = make([]*Task, 0, len(tasks))
	)
	for _, t := range tasks {
		if t.Completed() {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}

	byKey := func(a, b *Task) int {
		return a.SortKey().Compare(b.SortKey())
	}
	slices.SortStableFunc(open, byKey)
	slices.SortStableFunc(done, byKey)

	return append(open, done...)
}
