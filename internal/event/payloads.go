package event

import "time"

// Typed event payloads for type safety

// UserRegisteredPayloadV1 is the typed payload for user registration events
type UserRegisteredPayloadV1 struct {
	Address   string `json:"address"`
	Timestamp int64  `json:"timestamp"`
}

// UserTierUpPayloadV1 is the typed payload for rank upgrade events
type UserTierUpPayloadV1 struct {
	Address string `json:"address"`
	NewRank int    `json:"new_rank"`
	Reward  int64  `json:"reward"` // scaled embers minted
}

// ItemPurchasedPayloadV1 is the typed payload for purchase events
type ItemPurchasedPayloadV1 struct {
	Address string `json:"address"`
	ItemID  int    `json:"item_id"`
	Tier    int    `json:"tier"`
	Cost    int64  `json:"cost"` // scaled embers pulled
}

// FundsReceivedPayloadV1 is the typed payload for gas deposit events
type FundsReceivedPayloadV1 struct {
	Sender string `json:"sender"`
	Amount int64  `json:"amount"`
}

// GasDistributedPayloadV1 is the typed payload for gas payout events
type GasDistributedPayloadV1 struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

// AddressOf extracts the subject address from a known payload, for event log
// indexing. Returns "" for unknown payload shapes.
func AddressOf(e Event) string {
	switch p := e.Payload.(type) {
	case UserRegisteredPayloadV1:
		return p.Address
	case UserTierUpPayloadV1:
		return p.Address
	case ItemPurchasedPayloadV1:
		return p.Address
	case FundsReceivedPayloadV1:
		return p.Sender
	case GasDistributedPayloadV1:
		return p.Address
	}
	return ""
}

// Type-safe event constructors

// NewUserRegisteredEvent creates a new user registration event
func NewUserRegisteredEvent(address string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeUserRegistered,
		Payload: UserRegisteredPayloadV1{
			Address:   address,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewUserTierUpEvent creates a new rank upgrade event
func NewUserTierUpEvent(address string, newRank int, reward int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeUserTierUp,
		Payload: UserTierUpPayloadV1{
			Address: address,
			NewRank: newRank,
			Reward:  reward,
		},
	}
}

// NewItemPurchasedEvent creates a new purchase event
func NewItemPurchasedEvent(address string, itemID, tier int, cost int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeItemPurchased,
		Payload: ItemPurchasedPayloadV1{
			Address: address,
			ItemID:  itemID,
			Tier:    tier,
			Cost:    cost,
		},
	}
}

// NewFundsReceivedEvent creates a new gas deposit event
func NewFundsReceivedEvent(sender string, amount int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeFundsReceived,
		Payload: FundsReceivedPayloadV1{
			Sender: sender,
			Amount: amount,
		},
	}
}

// NewGasDistributedEvent creates a new gas payout event
func NewGasDistributedEvent(address string, amount int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeGasDistributed,
		Payload: GasDistributedPayloadV1{
			Address: address,
			Amount:  amount,
		},
	}
}
