package dto

import (
	"maps"
	"slices"
)

// Health status values.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// CheckResult is one dependency's readiness, such as the ledger store or the
// webhook receiver.
type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the body of the liveness and readiness endpoints.
// Checks is omitted for liveness.
type HealthResponse struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// ToReadinessResponse orders results by name and reports ready only when
// every check passed.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make([]CheckResult, 0, len(results))}
	for _, name := range slices.Sorted(maps.Keys(results)) {
		check := CheckResult{Name: name, Status: HealthOK}
		if err := results[name]; err != nil {
			check.Status = HealthNotReady
			check.Error = err.Error()
			resp.Status = HealthNotReady
		}
		resp.Checks = append(resp.Checks, check)
	}
	return resp, resp.Status == HealthReady
}
