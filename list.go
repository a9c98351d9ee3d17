package strsplit

import (
	"fmt"
	"iter"
	"strings"
)

// List is an ordered sequence of text fragments, usually the result of a split.
//
// A list owns its fragments. Fragments are kept in an arena and reference their
// neighbours by arena position, which makes links from either direction
// consistent by construction. Appending is the only way to add a fragment.
//
// A list created by
//
//	List{}
//
// is a valid, empty list, but clients may use NewList.
//
// Lists are not safe for concurrent mutation.
//
//	Operation     |   List
//	--------------+-------------
//	Append        |   O(1)
//	At            |   O(n)
//	Reverse       |   O(n)
//	Iterate       |   O(n)
type List struct {
	nodes []node // arena of fragments, in order of appending
	head  ref
	tail  ref
	gen   uint32 // incremented with every Clear
}

// ref is a 1-based reference into the arena of a list; 0 is the null reference.
type ref int32

type node struct {
	text string
	next ref
	prev ref
}

// NewList creates a new and empty list.
func NewList() *List {
	return &List{}
}

func (l *List) node(r ref) *node {
	return &l.nodes[r-1]
}

// Len returns the number of fragments in l.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.nodes)
}

// IsEmpty reports whether l has no fragments.
func (l *List) IsEmpty() bool {
	return l.Len() == 0
}

// Append appends a copy of text as a new fragment after the last fragment of l.
func (l *List) Append(text string) (Fragment, error) {
	if l == nil {
		return Fragment{}, ErrIllegalArguments
	}
	l.nodes = append(l.nodes, node{
		text: strings.Clone(text),
		prev: l.tail,
	})
	r := ref(len(l.nodes))
	if l.tail == 0 {
		l.head = r
	} else {
		l.node(l.tail).next = r
	}
	l.tail = r
	return l.fragment(r), nil
}

// At returns the text of the fragment at position index. Negative indices count
// from the end of the list, i.e. -1 denotes the last fragment. If index does not
// denote a fragment, ErrNotFound is returned.
func (l *List) At(index int) (string, error) {
	f, err := l.FragmentAt(index)
	if err != nil {
		return "", err
	}
	return f.Text(), nil
}

// FragmentAt returns the fragment at position index, with the same indexing rules
// as At.
func (l *List) FragmentAt(index int) (Fragment, error) {
	n := l.Len()
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return Fragment{}, ErrNotFound
	}
	// walk from the nearer end
	if index <= n/2 {
		r := l.head
		for i := 0; i < index; i++ {
			r = l.node(r).next
		}
		return l.fragment(r), nil
	}
	r := l.tail
	for i := n - 1; i > index; i-- {
		r = l.node(r).prev
	}
	return l.fragment(r), nil
}

// Head returns the first fragment of l. For an empty list the fragment returned
// is void.
func (l *List) Head() Fragment {
	if l == nil {
		return Fragment{}
	}
	return l.fragment(l.head)
}

// Tail returns the last fragment of l. For an empty list the fragment returned
// is void.
func (l *List) Tail() Fragment {
	if l == nil {
		return Fragment{}
	}
	return l.fragment(l.tail)
}

// Reverse reverses the order of fragments in l.
func (l *List) Reverse() error {
	if l == nil {
		return ErrIllegalArguments
	}
	for i := range l.nodes {
		n := &l.nodes[i]
		n.next, n.prev = n.prev, n.next
	}
	l.head, l.tail = l.tail, l.head
	return nil
}

// Clear drops all fragments of l. Fragments handed out before are void
// afterwards. It is safe to clear an empty list.
func (l *List) Clear() {
	if l == nil {
		return
	}
	l.nodes = nil
	l.head, l.tail = 0, 0
	l.gen++
}

// Strings returns the texts of all fragments in order.
func (l *List) Strings() []string {
	s := make([]string, 0, l.Len())
	for _, text := range l.All() {
		s = append(s, text)
	}
	return s
}

// Join concatenates the fragments of l, placing sep between them.
func (l *List) Join(sep string) string {
	return strings.Join(l.Strings(), sep)
}

// All returns an iterator over index and text of all fragments, in order.
func (l *List) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if l == nil {
			return
		}
		i := 0
		for r := l.head; r != 0; r = l.node(r).next {
			if !yield(i, l.node(r).text) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over index and text of all fragments, starting
// with the last one.
func (l *List) Backward() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if l == nil {
			return
		}
		i := len(l.nodes) - 1
		for r := l.tail; r != 0; r = l.node(r).prev {
			if !yield(i, l.node(r).text) {
				return
			}
			i--
		}
	}
}

// Each visits all fragments in order.
//
// The callback receives each fragment's index and text. Iteration stops at the
// first callback error and returns that error to the caller.
func (l *List) Each(f func(int, string) error) error {
	for i, text := range l.All() {
		if err := f(i, text); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) String() string {
	return fmt.Sprintf("list{ |F|=%d %q }", l.Len(), l.Strings())
}

// checkInvariants verifies the link structure of l.
func (l *List) checkInvariants() error {
	n := l.Len()
	if n == 0 {
		if l != nil && (l.head != 0 || l.tail != 0) {
			return fmt.Errorf("empty list with head=%d tail=%d", l.head, l.tail)
		}
		return nil
	}
	seen := make(map[ref]bool, n)
	r, cnt := l.head, 0
	for ; r != 0; r = l.node(r).next {
		if seen[r] {
			return fmt.Errorf("fragment %d reached twice in forward walk", r)
		}
		seen[r] = true
		cnt++
		if l.node(r).next == 0 && r != l.tail {
			return fmt.Errorf("forward walk ends at %d, tail is %d", r, l.tail)
		}
	}
	if cnt != n {
		return fmt.Errorf("forward walk visits %d fragments, count is %d", cnt, n)
	}
	cnt = 0
	for r = l.tail; r != 0; r = l.node(r).prev {
		cnt++
		if cnt > n {
			return fmt.Errorf("backward walk does not terminate")
		}
		if l.node(r).prev == 0 && r != l.head {
			return fmt.Errorf("backward walk ends at %d, head is %d", r, l.head)
		}
	}
	if cnt != n {
		return fmt.Errorf("backward walk visits %d fragments, count is %d", cnt, n)
	}
	return nil
}
