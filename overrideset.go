package ioc

// OverrideSet bundles override providers so related substitutions can
// be declared once and attached together through WithLocalOverrideSet.
type OverrideSet struct {
	name     string
	refs     []AnyRef
	includes []*OverrideSet
}

func NewOverrideSet(name string) *OverrideSet {
	return &OverrideSet{name: name}
}

func (s *OverrideSet) Name() string {
	return s.name
}

func (s *OverrideSet) Add(refs ...AnyRef) *OverrideSet {
	s.refs = append(s.refs, refs...)
	return s
}

func (s *OverrideSet) Include(sub *OverrideSet) *OverrideSet {
	s.includes = append(s.includes, sub)
	return s
}

// Refs flattens included sets first and this set's own refs last, so a
// set's own overrides shadow those of its includes for the same target.
func (s *OverrideSet) Refs() []AnyRef {
	var out []AnyRef
	for _, sub := range s.includes {
		out = append(out, sub.Refs()...)
	}
	return append(out, s.refs...)
}
