package domain

import "time"

// Item represents a catalog entry in the armory. An item exists iff its row
// exists; minted quantity is tracked separately, so an item whose supply has
// been burned back to zero still exists.
type Item struct {
	ID        int       `json:"item_id"`
	Prices    []int64   `json:"prices"` // tier 1..5, un-scaled embers
	CreatedAt time.Time `json:"created_at"`
}

// Family identifies one of the three equipment families.
type Family int

const (
	FamilyWand Family = iota
	FamilyArmor
	FamilyWings
)

// String returns the family's display name.
func (f Family) String() string {
	switch f {
	case FamilyWand:
		return "wand"
	case FamilyArmor:
		return "armor"
	case FamilyWings:
		return "wings"
	}
	return "unknown"
}

// ItemTier derives an item's tier within its family: ((id-1) mod 5) + 1.
// The derivation is pure; the catalog stores no tier column. IDs beyond the
// seeded 15 follow the same convention by caller agreement.
func ItemTier(itemID int) int {
	return ((itemID - 1) % FamilySize) + 1
}

// ItemFamily derives an item's family: IDs 1-5 wand, 6-10 armor, 11-15 wings.
func ItemFamily(itemID int) Family {
	return Family(((itemID - 1) / FamilySize) % 3)
}

// RankSetItemIDs returns the three item IDs (one per family) that make up
// the full equipment set for the given rank.
func RankSetItemIDs(rank int) [3]int {
	return [3]int{
		rank,                // wand
		FamilySize + rank,   // armor
		2*FamilySize + rank, // wings
	}
}

// ValidTier reports whether tier is in the purchasable 1..5 range.
func ValidTier(tier int) bool {
	return tier >= TierMin && tier <= TierMax
}
