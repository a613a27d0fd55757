// Package store holds the in-memory state of the todo component and
// publishes a Change to its subscribers after every mutation.
//
// Todos is not safe for concurrent use. It is meant to be driven from a
// single event loop (the Bubble Tea update goroutine).
package store

import (
	"iter"
	"slices"

	"github.com/idilsaglam/tada/internal/model"
)

// Op names the mutation carried by a Change.
type Op int

const (
	OpDraft Op = iota
	OpSubmit
	OpToggle
	OpRemove
	OpMarkAll
	OpClearCompleted
	OpFilter
)

func (o Op) String() string {
	switch o {
	case OpDraft:
		return "draft"
	case OpSubmit:
		return "submit"
	case OpToggle:
		return "toggle"
	case OpRemove:
		return "remove"
	case OpMarkAll:
		return "mark-all"
	case OpClearCompleted:
		return "clear-completed"
	case OpFilter:
		return "filter"
	}
	return "unknown"
}

// Change is published once per effective mutation.
// Index is the affected position for submit, toggle and remove; -1 otherwise.
type Change struct {
	Op       Op
	Index    int
	Revision uint64
}

// Todos owns the item list, the draft text and the active filter.
type Todos struct {
	items  []model.Item
	draft  string
	filter model.Filter

	rev    uint64
	subs   []*subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(Change)
}

// New returns an empty container showing the given filter.
func New(filter model.Filter) *Todos {
	return &Todos{filter: filter}
}

// Subscribe registers fn for every future Change. Subscribers run
// synchronously in registration order. The returned func removes fn.
func (t *Todos) Subscribe(fn func(Change)) (unsubscribe func()) {
	t.nextID++
	s := &subscriber{id: t.nextID, fn: fn}
	t.subs = append(t.subs, s)
	return func() {
		t.subs = slices.DeleteFunc(t.subs, func(x *subscriber) bool { return x.id == s.id })
	}
}

func (t *Todos) publish(op Op, index int) {
	t.rev++
	c := Change{Op: op, Index: index, Revision: t.rev}
	// copy so a subscriber may unsubscribe while being notified
	for _, s := range slices.Clone(t.subs) {
		s.fn(c)
	}
}

// Revision counts published changes.
func (t *Todos) Revision() uint64 { return t.rev }

// Draft returns the uncommitted input text.
func (t *Todos) Draft() string { return t.draft }

// SetDraft replaces the draft.
func (t *Todos) SetDraft(text string) {
	if text == t.draft {
		return
	}
	t.draft = text
	t.publish(OpDraft, -1)
}

// SubmitDraft appends the draft as a new open item and clears the draft.
// An empty draft is ignored. The draft is not trimmed, so whitespace-only
// text is accepted as a title.
func (t *Todos) SubmitDraft() bool {
	if t.draft == "" {
		return false
	}
	t.items = append(t.items, model.Item{Title: t.draft})
	t.draft = ""
	t.publish(OpSubmit, len(t.items)-1)
	return true
}

func (t *Todos) valid(i int) bool { return i >= 0 && i < len(t.items) }

// Toggle flips the completion flag of the item at index i.
// Out-of-range indices are ignored.
func (t *Todos) Toggle(i int) bool {
	if !t.valid(i) {
		return false
	}
	t.items[i].Completed = !t.items[i].Completed
	t.publish(OpToggle, i)
	return true
}

// Remove deletes the item at index i; later items move down one position.
func (t *Todos) Remove(i int) bool {
	if !t.valid(i) {
		return false
	}
	t.items = slices.Delete(t.items, i, i+1)
	t.publish(OpRemove, i)
	return true
}

// MarkAllComplete completes every item.
func (t *Todos) MarkAllComplete() {
	changed := false
	for i := range t.items {
		if !t.items[i].Completed {
			t.items[i].Completed = true
			changed = true
		}
	}
	if changed {
		t.publish(OpMarkAll, -1)
	}
}

// ClearCompleted drops every completed item, keeping the others in order.
func (t *Todos) ClearCompleted() {
	n := len(t.items)
	t.items = slices.DeleteFunc(t.items, func(it model.Item) bool { return it.Completed })
	if len(t.items) != n {
		t.publish(OpClearCompleted, -1)
	}
}

// Filter returns the active filter.
func (t *Todos) Filter() model.Filter { return t.filter }

// SetFilter changes which items Visible yields. Stored items are untouched.
func (t *Todos) SetFilter(f model.Filter) {
	if f == t.filter {
		return
	}
	t.filter = f
	t.publish(OpFilter, -1)
}

// Visible yields (index, item) for every item passing the active filter,
// in list order. The index addresses the full list and is valid for
// Toggle and Remove until the next mutation.
func (t *Todos) Visible() iter.Seq2[int, model.Item] {
	return func(yield func(int, model.Item) bool) {
		for i, it := range t.items {
			if !t.filter.Match(it) {
				continue
			}
			if !yield(i, it) {
				return
			}
		}
	}
}

// RemainingCount is the number of items not yet completed.
func (t *Todos) RemainingCount() int {
	n := 0
	for _, it := range t.items {
		if !it.Completed {
			n++
		}
	}
	return n
}

// CompletedCount is the number of completed items.
func (t *Todos) CompletedCount() int { return len(t.items) - t.RemainingCount() }

// Len is the total number of items regardless of filter.
func (t *Todos) Len() int { return len(t.items) }

// Items returns a copy of the full list.
func (t *Todos) Items() []model.Item { return slices.Clone(t.items) }
