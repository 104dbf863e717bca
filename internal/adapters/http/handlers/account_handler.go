// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"
)

// AccountHandler handles HTTP requests for ledger accounts.
type AccountHandler struct {
	svc ports.TransferService
}

// NewAccountHandler creates a new AccountHandler with the given service port.
func NewAccountHandler(svc ports.TransferService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// OpenAccount handles POST /api/v1/accounts.
func (h *AccountHandler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	account, err := h.svc.OpenAccount(r.Context(), req.Owner, req.Balance)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToAccountResponse(account))
}

// GetAccount handles GET /api/v1/accounts/{id}.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	account, err := h.svc.GetAccount(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToAccountResponse(account))
}
