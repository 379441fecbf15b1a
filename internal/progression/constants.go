package progression

// Log messages
const (
	LogMsgRegisterCalled      = "RegisterUser called"
	LogMsgPurchaseCalled      = "PurchaseItem called"
	LogMsgPurchaseBatchCalled = "PurchaseItemsBatch called"
	LogMsgUpgradeCalled       = "UpgradeTier called"
	LogMsgWithdrawCalled      = "AdminWithdraw called"
	LogMsgDepositCalled       = "Deposit called"
)
