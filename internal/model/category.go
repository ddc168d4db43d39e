// Package model defines domain types for the 50/30/20 budget planner.
package model

// Category is one of the three top-level budget categories.
type Category string

const (
	CategoryNeeds   Category = "needs"
	CategoryWants   Category = "wants"
	CategorySavings Category = "savings"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNeeds, CategoryWants, CategorySavings:
		return true
	}
	return false
}

// Subcategory is a planned-spending key within a top-level category.
type Subcategory string

// Needs subcategories.
const (
	NeedRent      Subcategory = "rent"
	NeedUtilities Subcategory = "utilities"
	NeedGroceries Subcategory = "groceries"
	NeedTransport Subcategory = "transport"
	NeedHealth    Subcategory = "health"
	NeedPhone     Subcategory = "phone"
	NeedChildren  Subcategory = "children"
	NeedPets      Subcategory = "pets"
)

// Wants subcategories.
const (
	WantEntertainment Subcategory = "entertainment"
	WantDining        Subcategory = "dining"
	WantClothing      Subcategory = "clothing"
	WantHobbies       Subcategory = "hobbies"
	WantTravel        Subcategory = "travel"
	WantShopping      Subcategory = "shopping"
)

// NeedKeys returns the closed set of needs subcategories in display order.
// The children and pets keys are only surfaced when the family profile
// enables them, but they are always accepted.
func NeedKeys() []Subcategory {
	return []Subcategory{
		NeedRent, NeedUtilities, NeedGroceries, NeedTransport,
		NeedHealth, NeedPhone, NeedChildren, NeedPets,
	}
}

// WantKeys returns the closed set of wants subcategories in display order.
func WantKeys() []Subcategory {
	return []Subcategory{
		WantEntertainment, WantDining, WantClothing,
		WantHobbies, WantTravel, WantShopping,
	}
}

// KnownSubcategory reports whether key belongs to the closed key set of cat.
func KnownSubcategory(cat Category, key Subcategory) bool {
	var keys []Subcategory
	switch cat {
	case CategoryNeeds:
		keys = NeedKeys()
	case CategoryWants:
		keys = WantKeys()
	default:
		return false
	}
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// AllocationMap maps subcategory keys to planned monthly amounts.
// A missing key means zero.
type AllocationMap map[Subcategory]float64

// Total sums all planned amounts in the map.
func (m AllocationMap) Total() float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}
