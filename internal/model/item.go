package model

import (
	"fmt"
	"strings"
)

// Item is the domain model for a todo entry.
// Items carry no ID; they are addressed by their position in the list.
type Item struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Filter selects which items are shown. The zero value shows everything.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

var filterNames = [...]string{"All", "Active", "Completed"}

// Filters returns every filter in display order.
func Filters() []Filter { return []Filter{All, Active, Completed} }

func (f Filter) String() string {
	if f < All || f > Completed {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// Match reports whether it is visible under f.
func (f Filter) Match(it Item) bool {
	switch f {
	case Active:
		return !it.Completed
	case Completed:
		return it.Completed
	default:
		return true
	}
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter { return (f + 1) % 3 }

// Prev cycles in the other direction.
func (f Filter) Prev() Filter { return (f + 2) % 3 }

// ParseFilter accepts a filter name in any case.
func ParseFilter(s string) (Filter, error) {
	for i, name := range filterNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Filter(i), nil
		}
	}
	return All, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}
