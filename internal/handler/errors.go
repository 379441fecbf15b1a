package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidItemID     = "Invalid item_id parameter"
	ErrMsgInvalidTierParam  = "Invalid tier parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidAmount     = "Invalid amount parameter"

	// Currency operation error messages
	ErrMsgMintFailed         = "Failed to mint embers"
	ErrMsgApproveFailed      = "Failed to set allowance"
	ErrMsgTransferFailed     = "Failed to transfer embers"
	ErrMsgTransferFromFailed = "Failed to pull embers"
	ErrMsgBalanceFailed      = "Failed to get balance"
	ErrMsgAllowanceFailed    = "Failed to get allowance"
	ErrMsgSupplyFailed       = "Failed to get total supply"

	// Catalog operation error messages
	ErrMsgCreateItemFailed   = "Failed to create item"
	ErrMsgMintItemFailed     = "Failed to mint equipment"
	ErrMsgTierCostFailed     = "Failed to get tier cost"
	ErrMsgBatchBalanceFailed = "Failed to get batch balances"
	ErrMsgTotalMintedFailed  = "Failed to get total minted"
	ErrMsgMetadataURIFailed  = "Failed to get metadata URI"
	ErrMsgSetURIFailed       = "Failed to set metadata URI"

	// Progression operation error messages
	ErrMsgRegisterUserFailed  = "Failed to register user"
	ErrMsgPurchaseFailed      = "Failed to purchase item"
	ErrMsgPurchaseBatchFailed = "Failed to purchase items"
	ErrMsgUpgradeFailed       = "Failed to upgrade tier"
	ErrMsgWithdrawFailed      = "Failed to withdraw gas"
	ErrMsgDepositFailed       = "Failed to deposit gas"
	ErrMsgGetRankFailed       = "Failed to get rank"
	ErrMsgPreviewCostFailed   = "Failed to preview cost"

	// Access control error messages
	ErrMsgGrantRoleFailed  = "Failed to grant role"
	ErrMsgRevokeRoleFailed = "Failed to revoke role"
	ErrMsgGetRolesFailed   = "Failed to get roles"

	// Event query error messages
	ErrMsgGetEventsFailed = "Failed to retrieve events"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgMintedSuccess       = "Embers minted successfully"
	MsgApprovedSuccess     = "Allowance set successfully"
	MsgTransferredSuccess  = "Embers transferred successfully"
	MsgItemCreatedSuccess  = "Item created successfully"
	MsgEquipmentMinted     = "Equipment minted successfully"
	MsgURIUpdatedSuccess   = "Metadata URI updated successfully"
	MsgUserRegistered      = "User registered successfully"
	MsgWithdrawSuccess     = "Gas withdrawn successfully"
	MsgDepositSuccess      = "Gas deposited successfully"
	MsgRoleGrantedSuccess  = "Role granted successfully"
	MsgRoleRevokedSuccess  = "Role revoked successfully"
)
