package task

import "sort"

// Ordering selects how OrderedView arranges tasks.
type Ordering int

const (
	// OrderInsertion keeps tasks in the order they were added.
	OrderInsertion Ordering = iota
	// OrderDue places incomplete before complete tasks, each group sorted
	// by due date, falling back to creation time.
	OrderDue
)

func (o Ordering) String() string {
	switch o {
	case OrderDue:
		return "due"
	default:
		return "insertion"
	}
}

// Profile bundles the list behaviours that differ between the app's modes.
type Profile struct {
	Name     string
	DueDates bool     // due dates are accepted; ignored otherwise
	Ordering Ordering // display order
	PageSize int      // 0 disables pagination
}

// DefaultProfile is used when no profile is configured.
const DefaultProfile = "paged"

var profiles = map[string]Profile{
	"basic":  {Name: "basic", DueDates: false, Ordering: OrderInsertion},
	"dated":  {Name: "dated", DueDates: true, Ordering: OrderInsertion},
	"sorted": {Name: "sorted", DueDates: true, Ordering: OrderDue, PageSize: 6},
	"paged":  {Name: "paged", DueDates: true, Ordering: OrderDue, PageSize: 5},
}

// LookupProfile returns the built-in profile with the given name.
func LookupProfile(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// ProfileNames returns the sorted names of all built-in profiles.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithPageSize returns a copy of p using size when size is positive.
func (p Profile) WithPageSize(size int) Profile {
	if size > 0 {
		p.PageSize = size
	}
	return p
}
