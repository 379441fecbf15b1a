package handler

import (
	"net/http"

	"github.com/veylan/EmberArmory_Go/internal/progression"
)

// RegisterUserRequest represents a request to enroll an address
type RegisterUserRequest struct {
	Caller  string `json:"caller" validate:"required,address"`
	Address string `json:"address" validate:"required,address"`
}

// PurchaseRequest represents a single item purchase
type PurchaseRequest struct {
	Buyer  string `json:"buyer" validate:"required,address"`
	ItemID int    `json:"item_id" validate:"gt=0"`
}

// PurchaseBatchRequest represents a batched purchase
type PurchaseBatchRequest struct {
	Buyer   string `json:"buyer" validate:"required,address"`
	ItemIDs []int  `json:"item_ids" validate:"required,min=1"`
}

// UpgradeRequest represents a rank upgrade attempt
type UpgradeRequest struct {
	Address string `json:"address" validate:"required,address"`
}

// WithdrawRequest represents an admin gas withdrawal from the engine reserve
type WithdrawRequest struct {
	Caller string `json:"caller" validate:"required,address"`
	To     string `json:"to" validate:"required,address"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

// DepositRequest represents a gas top-up of the engine reserve
type DepositRequest struct {
	From   string `json:"from" validate:"required,address"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

// PurchaseResponse wraps a settled purchase
type PurchaseResponse struct {
	Message  string                     `json:"message"`
	Purchase progression.PurchaseResult `json:"purchase"`
}

// PurchaseBatchResponse wraps a settled batch of purchases
type PurchaseBatchResponse struct {
	Message   string                       `json:"message"`
	Purchases []progression.PurchaseResult `json:"purchases"`
}

// UpgradeResponse carries the rank reached by an upgrade
type UpgradeResponse struct {
	Message string `json:"message"`
	Rank    int    `json:"rank"`
}

// RankResponse carries an address's current rank
type RankResponse struct {
	Address string `json:"address"`
	Rank    int    `json:"rank"`
}

// PreviewCostResponse carries the scaled ember cost of an item
type PreviewCostResponse struct {
	ItemID int   `json:"item_id"`
	Cost   int64 `json:"cost"`
}

// HandleRegisterUser enrolls an address with the starting grant and gas stipend
func HandleRegisterUser(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		if err := svc.RegisterUser(r.Context(), req.Caller, req.Address); err != nil {
			respondServiceError(w, r, ErrMsgRegisterUserFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgUserRegistered})
	}
}

// HandlePurchase settles one tier-gated purchase
func HandlePurchase(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase item"); err != nil {
			return
		}

		result, err := svc.PurchaseItem(r.Context(), req.Buyer, req.ItemID)
		if err != nil {
			respondServiceError(w, r, ErrMsgPurchaseFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, PurchaseResponse{
			Message:  "Purchase settled",
			Purchase: *result,
		})
	}
}

// HandlePurchaseBatch settles several purchases atomically
func HandlePurchaseBatch(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseBatchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase batch"); err != nil {
			return
		}

		results, err := svc.PurchaseItemsBatch(r.Context(), req.Buyer, req.ItemIDs)
		if err != nil {
			respondServiceError(w, r, ErrMsgPurchaseBatchFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, PurchaseBatchResponse{
			Message:   "Purchases settled",
			Purchases: results,
		})
	}
}

// HandleUpgrade advances a full-set holder one rank
func HandleUpgrade(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upgrade tier"); err != nil {
			return
		}

		rank, err := svc.UpgradeTier(r.Context(), req.Address)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpgradeFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, UpgradeResponse{
			Message: "Rank upgraded",
			Rank:    rank,
		})
	}
}

// HandleAdminMintEquipment forwards an administrator batch mint to the catalog
func HandleAdminMintEquipment(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MintEquipmentBatchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin mint equipment"); err != nil {
			return
		}

		if err := svc.AdminMintEquipmentBatch(r.Context(), req.Caller, req.To, req.ItemIDs, req.Amounts); err != nil {
			respondServiceError(w, r, ErrMsgMintItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEquipmentMinted})
	}
}

// HandleAdminSetEquipmentURI forwards an administrator URI update to the catalog
func HandleAdminSetEquipmentURI(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetURIRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin set equipment URI"); err != nil {
			return
		}

		if err := svc.AdminSetEquipmentURI(r.Context(), req.Caller, req.URI); err != nil {
			respondServiceError(w, r, ErrMsgSetURIFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgURIUpdatedSuccess})
	}
}

// HandleWithdraw moves gas out of the engine reserve
func HandleWithdraw(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WithdrawRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Withdraw gas"); err != nil {
			return
		}

		if err := svc.AdminWithdraw(r.Context(), req.Caller, req.To, req.Amount); err != nil {
			respondServiceError(w, r, ErrMsgWithdrawFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWithdrawSuccess})
	}
}

// HandleDeposit tops up the engine gas reserve
func HandleDeposit(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DepositRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Deposit gas"); err != nil {
			return
		}

		if err := svc.Deposit(r.Context(), req.From, req.Amount); err != nil {
			respondServiceError(w, r, ErrMsgDepositFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDepositSuccess})
	}
}

// HandleGetRank returns the current rank of a registered address
func HandleGetRank(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := GetQueryParam(r, w, "address")
		if !ok {
			return
		}

		rank, err := svc.GetRank(r.Context(), address)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRankFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, RankResponse{Address: address, Rank: rank})
	}
}

// HandlePreviewCost returns the scaled ember cost of an item without settling
func HandlePreviewCost(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetIntQueryParam(r, w, "item_id")
		if !ok {
			return
		}

		cost, err := svc.PreviewCost(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, r, ErrMsgPreviewCostFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, PreviewCostResponse{ItemID: itemID, Cost: cost})
	}
}
