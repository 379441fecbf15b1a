package catalog

import "time"

const (
	// priceCacheSize bounds the tier-cost LRU. The seeded catalog has 75
	// price points; headroom for admin-created items.
	priceCacheSize = 512

	// priceCacheTTL is how long a cached price survives. Prices are
	// immutable so the TTL only bounds memory for deleted test databases.
	priceCacheTTL = time.Hour
)

// Log messages
const (
	LogMsgCreateItemCalled = "CreateItem called"
	LogMsgMintCalled       = "Equipment mint called"
	LogMsgSetURICalled     = "SetMetadataURI called"
)
