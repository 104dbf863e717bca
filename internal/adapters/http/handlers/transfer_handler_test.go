package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-command-invoker/internal/command"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
	"github.com/jsamuelsen11/go-command-invoker/mocks"
)

type stubCommand struct {
	command.Base
}

func named(name string) command.Command {
	return &stubCommand{Base: command.NewBase(name, command.NewInput(), nil, nil)}
}

func newTransferHandler(t *testing.T) (*handlers.TransferHandler, *mocks.MockTransferService) {
	t.Helper()
	svc := mocks.NewMockTransferService(t)
	return handlers.NewTransferHandler(svc), svc
}

func postTransfer(t *testing.T, h *handlers.TransferHandler, body dto.TransferRequest) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", jsonBody(t, body))
	req.Header.Set("Content-Type", "application/json")
	h.CreateTransfer(rec, req)
	return rec
}

// --- CreateTransfer ---

func TestCreateTransfer_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTransferHandler(t)

	done := validTransfer()
	svc.EXPECT().Transfer(mock.Anything, "acc-1", "acc-2", int64(25)).Return(&done, nil)

	rec := postTransfer(t, h, dto.TransferRequest{From: "acc-1", To: "acc-2", Amount: 25})

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TransferResponse](t, rec)
	if resp.Status != "completed" {
		t.Errorf("Status = %q, want %q", resp.Status, "completed")
	}
}

func TestCreateTransfer_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newTransferHandler(t)

	rec := postTransfer(t, h, dto.TransferRequest{From: "acc-1", To: "acc-1"})

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTransfer_RolledBack(t *testing.T) {
	t.Parallel()
	h, svc := newTransferHandler(t)

	rolled := validTransfer()
	rolled.Status = ledger.TransferRolledBack
	failure := command.NewInvokerFailure(
		command.NewCommandFailure(&ledger.InsufficientFundsError{AccountID: "acc-1", Balance: 5, Amount: 25}, named("Withdraw")),
		named("Transfer"),
	)
	svc.EXPECT().Transfer(mock.Anything, "acc-1", "acc-2", int64(25)).Return(&rolled, failure)

	rec := postTransfer(t, h, dto.TransferRequest{From: "acc-1", To: "acc-2", Amount: 25})

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Failure == nil {
		t.Fatal("Failure = nil, want detail")
	}
	want := dto.FailureDetail{
		Kind:       "invoker_failure",
		Command:    "Withdraw",
		Invoker:    "Transfer",
		RolledBack: true,
		TransferID: "t-1",
	}
	if *resp.Failure != want {
		t.Errorf("Failure = %+v, want %+v", *resp.Failure, want)
	}
}

func TestCreateTransfer_RollbackFailed(t *testing.T) {
	t.Parallel()
	h, svc := newTransferHandler(t)

	stuck := validTransfer()
	stuck.Status = ledger.TransferRollbackFailed
	failure := command.NewRollbackFailure(errors.New("disk full"), named("Deposit"), named("Transfer"))
	svc.EXPECT().Transfer(mock.Anything, "acc-1", "acc-2", int64(25)).Return(&stuck, failure)

	rec := postTransfer(t, h, dto.TransferRequest{From: "acc-1", To: "acc-2", Amount: 25})

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Failure == nil || resp.Failure.RolledBack {
		t.Errorf("Failure = %+v, want rolled_back=false", resp.Failure)
	}
}

func TestCreateTransfer_ErrorWithoutRecord(t *testing.T) {
	t.Parallel()
	h, svc := newTransferHandler(t)

	svc.EXPECT().Transfer(mock.Anything, "acc-1", "acc-2", int64(25)).Return(nil, domain.ErrUnavailable)

	rec := postTransfer(t, h, dto.TransferRequest{From: "acc-1", To: "acc-2", Amount: 25})

	requireStatus(t, rec, http.StatusBadGateway)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Failure != nil {
		t.Errorf("Failure = %+v, want nil", resp.Failure)
	}
}

// --- GetTransfer ---

func TestGetTransfer_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTransferHandler(t)

	tr := validTransfer()
	svc.EXPECT().GetTransfer(mock.Anything, "t-1").Return(&tr, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers/t-1", nil)
	req = withChiParams(req, map[string]string{"id": "t-1"})
	h.GetTransfer(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TransferResponse](t, rec)
	if resp.ID != "t-1" {
		t.Errorf("ID = %q, want %q", resp.ID, "t-1")
	}
}

func TestGetTransfer_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTransferHandler(t)

	svc.EXPECT().GetTransfer(mock.Anything, "nope").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers/nope", nil)
	req = withChiParams(req, map[string]string{"id": "nope"})
	h.GetTransfer(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
