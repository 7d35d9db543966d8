package table

import "sort"

// BestFit filters the inventory down to tables that are not occupied and seat
// at least partySize guests, ordered by fit: fewest seats first, lowest id
// breaking ties. The caller attempts candidates in order, so the head of the
// returned slice is the assignment that wastes the least capacity.
func BestFit(inventory []Table, occupied map[ID]struct{}, partySize int) []Table {
	eligible := make([]Table, 0, len(inventory))
	for _, t := range inventory {
		if _, taken := occupied[t.id]; taken {
			continue
		}
		if !t.Fits(partySize) {
			continue
		}
		eligible = append(eligible, t)
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].seats != eligible[j].seats {
			return eligible[i].seats < eligible[j].seats
		}
		return eligible[i].id < eligible[j].id
	})

	return eligible
}
