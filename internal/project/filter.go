package project

// Filter is a category label used to narrow the visible projects.
type Filter string

// The closed set of filters offered by the page. All is the "no filter" sentinel.
const (
	All     Filter = "All"
	ML      Filter = "ML"
	NLP     Filter = "NLP"
	CV      Filter = "CV"
	DataViz Filter = "DataViz"
	Systems Filter = "Systems"
)

var filters = []Filter{All, ML, NLP, CV, DataViz, Systems}

// Filters returns every filter in display order.
func Filters() []Filter {
	out := make([]Filter, len(filters))
	copy(out, filters)
	return out
}

// ParseFilter maps a label onto the closed filter set.
func ParseFilter(s string) (Filter, bool) {
	for _, f := range filters {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Matches reports whether p belongs to the subset selected by f.
func (f Filter) Matches(p Project) bool {
	return f == All || p.HasTag(string(f))
}

func (f Filter) String() string { return string(f) }
