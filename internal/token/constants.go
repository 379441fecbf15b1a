package token

// Log messages
const (
	LogMsgMintCalled         = "Mint called"
	LogMsgApproveCalled      = "Approve called"
	LogMsgTransferCalled     = "Transfer called"
	LogMsgTransferFromCalled = "TransferFrom called"
)
