package handler

import (
	"net/http"

	"github.com/veylan/EmberArmory_Go/internal/token"
)

// MintRequest represents a request to mint embers
type MintRequest struct {
	Caller string `json:"caller" validate:"required,address"`
	To     string `json:"to" validate:"required,address"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

// ApproveRequest represents a request to set a spending allowance
type ApproveRequest struct {
	Owner   string `json:"owner" validate:"required,address"`
	Spender string `json:"spender" validate:"required,address"`
	Amount  int64  `json:"amount" validate:"gte=0"`
}

// TransferRequest represents a request to move embers between addresses
type TransferRequest struct {
	From   string `json:"from" validate:"required,address"`
	To     string `json:"to" validate:"required,address"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

// TransferFromRequest represents an allowance-backed pull
type TransferFromRequest struct {
	Spender string `json:"spender" validate:"required,address"`
	From    string `json:"from" validate:"required,address"`
	To      string `json:"to" validate:"required,address"`
	Amount  int64  `json:"amount" validate:"gt=0"`
}

// BalanceResponse carries a single scaled ember amount
type BalanceResponse struct {
	Address string `json:"address,omitempty"`
	Amount  int64  `json:"amount"`
}

// SupplyResponse carries the total minted ember supply
type SupplyResponse struct {
	TotalSupply int64 `json:"total_supply"`
}

// DecimalsResponse describes the fixed-point scaling of ember amounts
type DecimalsResponse struct {
	Decimals int   `json:"decimals"`
	Scale    int64 `json:"scale"`
}

// HandleMint creates new embers for an address
func HandleMint(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MintRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Mint embers"); err != nil {
			return
		}

		if err := svc.Mint(r.Context(), req.Caller, req.To, req.Amount); err != nil {
			respondServiceError(w, r, ErrMsgMintFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMintedSuccess})
	}
}

// HandleApprove sets the amount a spender may pull from an owner
func HandleApprove(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ApproveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Approve allowance"); err != nil {
			return
		}

		if err := svc.Approve(r.Context(), req.Owner, req.Spender, req.Amount); err != nil {
			respondServiceError(w, r, ErrMsgApproveFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgApprovedSuccess})
	}
}

// HandleTransfer moves embers between two addresses
func HandleTransfer(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transfer embers"); err != nil {
			return
		}

		if err := svc.Transfer(r.Context(), req.From, req.To, req.Amount); err != nil {
			respondServiceError(w, r, ErrMsgTransferFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTransferredSuccess})
	}
}

// HandleTransferFrom pulls embers out of an owner account against an allowance
func HandleTransferFrom(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferFromRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transfer from allowance"); err != nil {
			return
		}

		if err := svc.TransferFrom(r.Context(), req.Spender, req.From, req.To, req.Amount); err != nil {
			respondServiceError(w, r, ErrMsgTransferFromFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTransferredSuccess})
	}
}

// HandleBalanceOf returns the ember balance of an address
func HandleBalanceOf(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := GetQueryParam(r, w, "address")
		if !ok {
			return
		}

		amount, err := svc.BalanceOf(r.Context(), address)
		if err != nil {
			respondServiceError(w, r, ErrMsgBalanceFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{Address: address, Amount: amount})
	}
}

// HandleAllowance returns the remaining allowance granted by owner to spender
func HandleAllowance(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := GetQueryParam(r, w, "owner")
		if !ok {
			return
		}
		spender, ok := GetQueryParam(r, w, "spender")
		if !ok {
			return
		}

		amount, err := svc.Allowance(r.Context(), owner, spender)
		if err != nil {
			respondServiceError(w, r, ErrMsgAllowanceFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{Amount: amount})
	}
}

// HandleTotalSupply returns the total minted ember supply
func HandleTotalSupply(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supply, err := svc.TotalSupply(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgSupplyFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SupplyResponse{TotalSupply: supply})
	}
}

// HandleDecimals returns the fixed decimal scaling of the ember ledger
func HandleDecimals(svc token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DecimalsResponse{
			Decimals: svc.Decimals(),
			Scale:    svc.Scale(),
		})
	}
}
