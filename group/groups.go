package group

// Groups maintains a partition of agent ids into disjoint Groups, plus a
// lookup from id to the Group currently containing it. Combine merges the
// groups containing two given ids and keeps the partition invariant
// ("at all times the groups form a partition").
type Groups struct {
	groups   []Group
	byMember map[int]int // agent id -> index into groups
}

// NewGroups builds a Groups from an initial partition. Panics if an id
// appears in more than one input group, since that would violate the
// partition invariant from construction.
func NewGroups(initial []Group) *Groups {
	gs := &Groups{
		groups:   append([]Group(nil), initial...),
		byMember: make(map[int]int),
	}
	for idx, g := range gs.groups {
		for _, id := range g.IDs() {
			if _, dup := gs.byMember[id]; dup {
				panic("group: agent id assigned to more than one group")
			}
			gs.byMember[id] = idx
		}
	}
	return gs
}

// All returns the current list of groups. The returned slice is owned by
// Groups; callers must not mutate it.
func (gs *Groups) All() []Group {
	return gs.groups
}

// Of returns the group currently containing agent id.
func (gs *Groups) Of(id int) Group {
	return gs.groups[gs.byMember[id]]
}

// Combine merges the groups containing a and b into a single group,
// removing the two originals and appending their union. Returns the new
// merged group. If a and b are already in the same group, Combine is a
// no-op and returns that group.
func (gs *Groups) Combine(a, b int) Group {
	ia, ib := gs.byMember[a], gs.byMember[b]
	if ia == ib {
		return gs.groups[ia]
	}
	if ia > ib {
		ia, ib = ib, ia
	}
	merged := gs.groups[ia].Combine(gs.groups[ib])

	// Remove ib first (higher index) so ia's index stays valid, then
	// overwrite ia's old slot with the merged group.
	gs.groups = append(gs.groups[:ib], gs.groups[ib+1:]...)
	gs.groups[ia] = merged

	// Indices of every group after the removed slot shifted down by one;
	// rebuild the lookup rather than track the shift by hand.
	gs.byMember = make(map[int]int, len(gs.byMember))
	for idx, g := range gs.groups {
		for _, id := range g.IDs() {
			gs.byMember[id] = idx
		}
	}
	return merged
}
