package table

// DefaultInventory is the fixed dining room: two 2-tops, two 4-tops and two
// 6-tops. It is seeded into an empty store once at startup and never changes
// afterwards.
func DefaultInventory() []Table {
	specs := []struct {
		id    ID
		seats int
	}{
		{1, 2}, {2, 2},
		{3, 4}, {4, 4},
		{5, 6}, {6, 6},
	}

	inventory := make([]Table, 0, len(specs))
	for _, s := range specs {
		t, err := New(s.id, s.seats)
		if err != nil {
			panic(err) // static inventory, cannot fail
		}
		inventory = append(inventory, t)
	}
	return inventory
}
