package reduce

import "strconv"

// NameSupply hands out fresh variable names. A supply belongs to a single
// evaluation; names it returned are never returned again.
type NameSupply struct {
	used map[string]struct{}
}

func NewNameSupply() *NameSupply {
	return &NameSupply{used: make(map[string]struct{})}
}

// Fresh derives a name from base: base' first, then base'1, base'2, ...
// skipping anything this supply already handed out.
func (s *NameSupply) Fresh(base string) string {
	name := base + "'"
	for i := 1; s.taken(name); i++ {
		name = base + "'" + strconv.Itoa(i)
	}
	s.used[name] = struct{}{}
	return name
}

func (s *NameSupply) taken(name string) bool {
	_, ok := s.used[name]
	return ok
}
