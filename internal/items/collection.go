package items

// CountByCategory tallies items per category.
func CountByCategory(list []Item) map[Category]int {
	counts := make(map[Category]int)
	for _, item := range list {
		counts[item.Category]++
	}
	return counts
}

// CountMatching returns how many items satisfy match.
func CountMatching(list []Item, match func(Item) bool) int {
	n := 0
	for _, item := range list {
		if match(item) {
			n++
		}
	}
	return n
}

// FindByID returns the item with the given id.
// Returns the item and true if found, zero value and false otherwise.
func FindByID(list []Item, id string) (Item, bool) {
	for _, item := range list {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// HasCategory checks if any item in the collection is of category c.
func HasCategory(list []Item, c Category) bool {
	for _, item := range list {
		if item.Category == c {
			return true
		}
	}
	return false
}
