package grid

// Components groups passable cells into connected regions under 4-connectivity.
// Each component lists its CellIDs in ascending order; components are
// ordered by their smallest CellID.
// Time: O(R×C). Memory: O(R×C).
func (v *View) Components() [][]CellID {
	v.label()
	var comps [][]CellID
	for id := 1; id < len(v.labels); id++ {
		l := v.labels[id]
		if l < 0 {
			continue
		}
		if l == len(comps) {
			comps = append(comps, nil)
		}
		comps[l] = append(comps[l], CellID(id))
	}

	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// component, i.e. whether any route between them exists.
func (v *View) Connected(a, b CellID) bool {
	if !v.Valid(a) || !v.Valid(b) {
		return false
	}
	v.label()
	la, lb := v.labels[a], v.labels[b]

	return la >= 0 && la == lb
}

// label fills v.labels once per View. Labels are assigned in increasing order
// of the smallest CellID of each component.
func (v *View) label() {
	v.compOnce.Do(func() {
		labels := make([]int, len(v.obstacles))
		for i := range labels {
			labels[i] = -2 // unseen
		}
		labels[0] = -1
		next := 0
		var queue, nbuf []CellID
		for start := 1; start < len(labels); start++ {
			if v.obstacles[start] {
				labels[start] = -1
				continue
			}
			if labels[start] != -2 {
				continue
			}
			labels[start] = next
			queue = append(queue[:0], CellID(start))
			for qi := 0; qi < len(queue); qi++ {
				nbuf = v.Neighbors(queue[qi], nbuf[:0])
				for _, n := range nbuf {
					if labels[n] == -2 {
						labels[n] = next
						queue = append(queue, n)
					}
				}
			}
			next++
		}
		v.labels = labels
	})
}
