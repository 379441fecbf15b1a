package handler

import (
	"net/http"

	"github.com/veylan/EmberArmory_Go/internal/access"
	"github.com/veylan/EmberArmory_Go/internal/domain"
)

// RoleRequest represents a grant or revoke of a capability
type RoleRequest struct {
	Caller  string `json:"caller" validate:"required,address"`
	Address string `json:"address" validate:"required,address"`
	Role    string `json:"role" validate:"required"`
}

// RolesResponse lists the capabilities held by an address
type RolesResponse struct {
	Address string        `json:"address"`
	Roles   []domain.Role `json:"roles"`
}

// HandleGrantRole grants a capability to an address
func HandleGrantRole(svc access.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RoleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant role"); err != nil {
			return
		}

		if err := svc.GrantRole(r.Context(), req.Caller, req.Address, domain.Role(req.Role)); err != nil {
			respondServiceError(w, r, ErrMsgGrantRoleFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRoleGrantedSuccess})
	}
}

// HandleRevokeRole removes a capability from an address
func HandleRevokeRole(svc access.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RoleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Revoke role"); err != nil {
			return
		}

		if err := svc.RevokeRole(r.Context(), req.Caller, req.Address, domain.Role(req.Role)); err != nil {
			respondServiceError(w, r, ErrMsgRevokeRoleFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRoleRevokedSuccess})
	}
}

// HandleGetRoles lists the capabilities held by an address
func HandleGetRoles(svc access.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := GetQueryParam(r, w, "address")
		if !ok {
			return
		}

		roles, err := svc.GetRoles(r.Context(), address)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRolesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, RolesResponse{Address: address, Roles: roles})
	}
}
