package domain

// Currency constants
const (
	// CurrencyDecimals is the ember token's decimal-scaling exponent.
	// All prices in the catalog are stored un-scaled; the progression
	// engine multiplies by CurrencyScale before any mint or comparison.
	CurrencyDecimals = 8

	// CurrencyScale is 10^CurrencyDecimals.
	CurrencyScale int64 = 100_000_000

	// StartingGrant is the un-scaled ember grant minted on registration.
	StartingGrant int64 = 100

	// UpgradeRewardPerRank is the un-scaled ember reward per new rank.
	// A rank-3 upgrade mints 3 * UpgradeRewardPerRank scaled embers.
	UpgradeRewardPerRank int64 = 50
)

// Gas constants, denominated in the native asset's smallest unit.
const (
	// RegistrationGasAmount is the stipend paid out of the engine reserve
	// when a new user is registered.
	RegistrationGasAmount int64 = 2_000_000

	// UpgradeGasAmount is the reward paid out of the engine reserve on a
	// successful rank upgrade.
	UpgradeGasAmount int64 = 1_000_000
)

// Armory layout constants
const (
	// TierMin and TierMax bound valid price tiers.
	TierMin = 1
	TierMax = 5

	// RankMax is the highest rank a user can reach.
	RankMax = 5

	// TierPriceCount is the number of prices every item carries.
	TierPriceCount = 5

	// FamilySize is the number of items per equipment family.
	FamilySize = 5

	// CatalogItemCount is the number of items seeded at deployment:
	// three families of five tiers each.
	CatalogItemCount = 15

	// SeedInventoryPerItem is the working inventory minted to the
	// deploying authority for each seeded item.
	SeedInventoryPerItem = 5

	// SeedBasePrice is the tier-1 price in the geometric seed schedule
	// (tier j costs SeedBasePrice * 2^(j-1)).
	SeedBasePrice int64 = 10
)

// Request limits
const (
	// MaxBatchItems caps the number of items in one batch purchase or mint.
	MaxBatchItems = 50

	// MaxAddressLength caps account address length.
	MaxAddressLength = 64
)
