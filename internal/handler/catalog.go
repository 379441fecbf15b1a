package handler

import (
	"net/http"

	"github.com/veylan/EmberArmory_Go/internal/catalog"
)

// CreateItemRequest represents a request to add a catalog item
type CreateItemRequest struct {
	Caller string  `json:"caller" validate:"required,address"`
	ItemID int     `json:"item_id" validate:"gt=0"`
	Prices []int64 `json:"prices" validate:"required"`
}

// MintEquipmentRequest represents a request to mint copies of one item
type MintEquipmentRequest struct {
	Caller string `json:"caller" validate:"required,address"`
	To     string `json:"to" validate:"required,address"`
	ItemID int    `json:"item_id" validate:"gt=0"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

// MintEquipmentBatchRequest represents a request to mint several items at once
type MintEquipmentBatchRequest struct {
	Caller  string  `json:"caller" validate:"required,address"`
	To      string  `json:"to" validate:"required,address"`
	ItemIDs []int   `json:"item_ids" validate:"required,min=1"`
	Amounts []int64 `json:"amounts" validate:"required,min=1"`
}

// SetURIRequest represents a request to change the metadata base URI
type SetURIRequest struct {
	Caller string `json:"caller" validate:"required,address"`
	URI    string `json:"uri" validate:"required"`
}

// BatchBalanceRequest pairs owners with item IDs for a batched balance query
type BatchBalanceRequest struct {
	Owners  []string `json:"owners" validate:"required,min=1"`
	ItemIDs []int    `json:"item_ids" validate:"required,min=1"`
}

// TierCostResponse carries the stored un-scaled price of an item at a tier
type TierCostResponse struct {
	ItemID int   `json:"item_id"`
	Tier   int   `json:"tier"`
	Cost   int64 `json:"cost"`
}

// EquipmentBalanceResponse carries one equipment holding
type EquipmentBalanceResponse struct {
	Owner  string `json:"owner"`
	ItemID int    `json:"item_id"`
	Amount int64  `json:"amount"`
}

// BatchBalanceResponse carries pairwise balances for a batched query
type BatchBalanceResponse struct {
	Balances []int64 `json:"balances"`
}

// TotalMintedResponse carries the minted supply of one item
type TotalMintedResponse struct {
	ItemID int   `json:"item_id"`
	Total  int64 `json:"total"`
}

// MetadataURIResponse carries the catalog metadata base URI
type MetadataURIResponse struct {
	URI string `json:"uri"`
}

// HandleCreateItem registers a new catalog item with its tier price list
func HandleCreateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
			return
		}

		if err := svc.CreateItem(r.Context(), req.Caller, req.ItemID, req.Prices); err != nil {
			respondServiceError(w, r, ErrMsgCreateItemFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgItemCreatedSuccess})
	}
}

// HandleMintEquipment mints copies of a single catalog item
func HandleMintEquipment(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MintEquipmentRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Mint equipment"); err != nil {
			return
		}

		if err := svc.MintSingle(r.Context(), req.Caller, req.To, req.ItemID, req.Amount); err != nil {
			respondServiceError(w, r, ErrMsgMintItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEquipmentMinted})
	}
}

// HandleMintEquipmentBatch mints several catalog items in one call
func HandleMintEquipmentBatch(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MintEquipmentBatchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Mint equipment batch"); err != nil {
			return
		}

		if err := svc.MintBatch(r.Context(), req.Caller, req.To, req.ItemIDs, req.Amounts); err != nil {
			respondServiceError(w, r, ErrMsgMintItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEquipmentMinted})
	}
}

// HandleGetTierCost returns the stored price of an item at a tier
func HandleGetTierCost(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetIntQueryParam(r, w, "item_id")
		if !ok {
			return
		}
		tier, ok := GetIntQueryParam(r, w, "tier")
		if !ok {
			return
		}

		cost, err := svc.GetTierCost(r.Context(), itemID, tier)
		if err != nil {
			respondServiceError(w, r, ErrMsgTierCostFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, TierCostResponse{ItemID: itemID, Tier: tier, Cost: cost})
	}
}

// HandleEquipmentBalance returns the holding of one owner for one item
func HandleEquipmentBalance(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := GetQueryParam(r, w, "owner")
		if !ok {
			return
		}
		itemID, ok := GetIntQueryParam(r, w, "item_id")
		if !ok {
			return
		}

		amount, err := svc.BalanceOf(r.Context(), owner, itemID)
		if err != nil {
			respondServiceError(w, r, ErrMsgBalanceFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, EquipmentBalanceResponse{Owner: owner, ItemID: itemID, Amount: amount})
	}
}

// HandleEquipmentBalanceBatch returns pairwise holdings for owners and items
func HandleEquipmentBalanceBatch(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BatchBalanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Batch balance"); err != nil {
			return
		}

		balances, err := svc.BalanceOfBatch(r.Context(), req.Owners, req.ItemIDs)
		if err != nil {
			respondServiceError(w, r, ErrMsgBatchBalanceFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, BatchBalanceResponse{Balances: balances})
	}
}

// HandleTotalMinted returns the minted supply of one item
func HandleTotalMinted(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetIntQueryParam(r, w, "item_id")
		if !ok {
			return
		}

		total, err := svc.TotalMinted(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, r, ErrMsgTotalMintedFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, TotalMintedResponse{ItemID: itemID, Total: total})
	}
}

// HandleGetMetadataURI returns the catalog metadata base URI
func HandleGetMetadataURI(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uri, err := svc.GetMetadataURI(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgMetadataURIFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, MetadataURIResponse{URI: uri})
	}
}

// HandleSetMetadataURI updates the catalog metadata base URI
func HandleSetMetadataURI(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetURIRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set metadata URI"); err != nil {
			return
		}

		if err := svc.SetMetadataURI(r.Context(), req.Caller, req.URI); err != nil {
			respondServiceError(w, r, ErrMsgSetURIFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgURIUpdatedSuccess})
	}
}
