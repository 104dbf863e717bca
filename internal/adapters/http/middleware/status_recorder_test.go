package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecord_TracksFirstStatusAndSize(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := record(rec)

	if sr.status != http.StatusOK || sr.sent {
		t.Fatalf("fresh recorder = {status %d, sent %v}, want {200, false}", sr.status, sr.sent)
	}

	sr.WriteHeader(http.StatusUnprocessableEntity)
	sr.WriteHeader(http.StatusInternalServerError)
	_, _ = sr.Write([]byte(`{"title":`))
	_, _ = sr.Write([]byte(`"Unprocessable"}`))

	if sr.status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", sr.status, http.StatusUnprocessableEntity)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("underlying status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if sr.size != int64(rec.Body.Len()) {
		t.Errorf("size = %d, want %d", sr.size, rec.Body.Len())
	}
}

func TestRecord_WriteMarksSent(t *testing.T) {
	t.Parallel()

	sr := record(httptest.NewRecorder())
	_, _ = sr.Write([]byte("ok"))

	if !sr.sent {
		t.Error("sent = false after Write, want true")
	}
	if sr.status != http.StatusOK {
		t.Errorf("status = %d, want %d", sr.status, http.StatusOK)
	}
}

func TestRecord_ReusesExistingRecorder(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	outer := record(rec)

	if inner := record(outer); inner != outer {
		t.Error("record() wrapped a recorder twice")
	}
	if outer.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
