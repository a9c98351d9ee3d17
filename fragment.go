package strsplit

// Fragment is a handle for a fragment of a list. It is only valid as long as
// the list has not been cleared; afterwards it is void.
//
// The zero value is a void fragment.
type Fragment struct {
	list *List
	r    ref
	gen  uint32
}

func (l *List) fragment(r ref) Fragment {
	if r == 0 {
		return Fragment{}
	}
	return Fragment{list: l, r: r, gen: l.gen}
}

// IsVoid reports whether f does not denote a fragment.
func (f Fragment) IsVoid() bool {
	return f.list == nil || f.r == 0 || f.gen != f.list.gen || int(f.r) > len(f.list.nodes)
}

// Text returns the text of f, or the empty string for a void fragment.
func (f Fragment) Text() string {
	if f.IsVoid() {
		return ""
	}
	return f.list.node(f.r).text
}

// Len returns the length of f's text in bytes.
func (f Fragment) Len() int {
	return len(f.Text())
}

// Next returns the fragment following f.
func (f Fragment) Next() Fragment {
	if f.IsVoid() {
		return Fragment{}
	}
	return f.list.fragment(f.list.node(f.r).next)
}

// Prev returns the fragment preceding f.
func (f Fragment) Prev() Fragment {
	if f.IsVoid() {
		return Fragment{}
	}
	return f.list.fragment(f.list.node(f.r).prev)
}

func (f Fragment) String() string {
	return f.Text()
}
