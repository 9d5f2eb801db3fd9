package task

// PageState describes the list's pagination position. Both fields are
// zero-based; Last is the index of the final page, not a page count.
type PageState struct {
	Current int
	Last    int
}

// Count returns the number of pages, which is never less than one.
func (s PageState) Count() int {
	return s.Last + 1
}

// LastPage returns the zero-based index of the last page for n items. A list
// holding exactly size items has a single page. A size of zero or less means
// the list is unpaged.
func LastPage(n, size int) int {
	if size <= 0 {
		return 0
	}
	return max(0, n-1) / size
}

// pageBounds returns the half-open range of the display order visible on page.
func pageBounds(n, size, page int) (start, end int) {
	if size <= 0 {
		return 0, n
	}
	start = min(size*page, n)
	end = min(size*(page+1), n)
	return start, end
}
