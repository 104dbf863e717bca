package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"
)

// TransferHandler handles HTTP requests for transfers.
type TransferHandler struct {
	svc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler with the given service
// port.
func NewTransferHandler(svc ports.TransferService) *TransferHandler {
	return &TransferHandler{svc: svc}
}

// CreateTransfer handles POST /api/v1/transfers. A transfer that ran and
// failed is answered with a problem document naming the failed command and
// the recorded transfer ID.
func (h *TransferHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.Transfer(r.Context(), req.From, req.To, req.Amount)
	if err != nil {
		resp := dto.NewErrorResponse(r, err)
		if t != nil && resp.Failure != nil {
			resp.Failure.TransferID = t.ID
		}
		dto.WriteProblem(w, r, resp)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTransferResponse(t))
}

// GetTransfer handles GET /api/v1/transfers/{id}.
func (h *TransferHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTransfer(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTransferResponse(t))
}
