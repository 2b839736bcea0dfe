// Package api - API layer tests
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"quotecalc/core/engine"
	"quotecalc/core/handoff"
	"quotecalc/core/rules"
	"quotecalc/core/types"
)

func testServer(t *testing.T, mailbox handoff.Mailbox) *Server {
	t.Helper()
	eng, err := engine.New(rules.Default())
	require.NoError(t, err)
	if mailbox == nil {
		mailbox = handoff.NewMemoryMailbox(handoff.DefaultTTL)
	}
	return NewServer(eng, mailbox, "test")
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestOptionsExposesClosedEnumerations(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/options", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, types.CurrencyUSD, resp.Currency)
	require.Len(t, resp.Categories, len(types.Categories()))
	require.Len(t, resp.Tiers, len(types.Tiers()))
	require.Len(t, resp.Scales, len(types.Scales()))
	require.Len(t, resp.Speeds, len(types.Speeds()))
	require.NotEmpty(t, resp.AddOns)

	for _, tier := range resp.Tiers {
		require.NotEmpty(t, tier.Features, "tier %s has no features", tier.Key)
		if tier.Key == string(types.TierEnterprise) {
			require.False(t, tier.Priced)
		}
	}
}

func TestEstimateReturnsQuote(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/estimate", EstimateRequest{
		Selection: types.Selection{
			Category:      types.CategoryLanding,
			Tier:          types.TierBusiness,
			Scale:         types.ScaleMedium,
			Speed:         types.SpeedStandard,
			LanguageCount: 1,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.RequestID)
	require.False(t, resp.Enterprise)
	require.NotNil(t, resp.Quote)
	require.True(t, resp.Quote.PricePoint.IsPositive())
	require.GreaterOrEqual(t, resp.Quote.EstimatedWeeks, 1)
	require.NotEmpty(t, resp.Quote.SummaryText)
}

func TestEstimateEnterpriseSentinel(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/estimate", EstimateRequest{
		Selection: types.Selection{
			Category:      types.CategoryCRM,
			Tier:          types.TierEnterprise,
			Scale:         types.ScaleLarge,
			Speed:         types.SpeedStandard,
			LanguageCount: 1,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Enterprise)
	require.Nil(t, resp.Quote)
}

func TestEstimateScreensUnknownValues(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/estimate", EstimateRequest{
		Selection: types.Selection{
			Category:      "spaceship",
			Tier:          types.TierBusiness,
			Scale:         types.ScaleMedium,
			Speed:         types.SpeedStandard,
			LanguageCount: 1,
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "VALIDATION_ERROR", resp.Code)
}

func TestHandoffRoundTrip(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/handoff", HandoffRequest{
		Message: "summary for the contact form",
		Locale:  "en",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/handoff/take", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload handoff.Payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "summary for the contact form", payload.Message)
	require.Equal(t, handoff.SourceCalculator, payload.Source)
	require.Equal(t, "en", payload.Locale)

	// Read-once: the second take finds nothing.
	rec = doJSON(t, s, http.MethodPost, "/handoff/take", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandoffRejectsEmptyMessage(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(t, s, http.MethodPost, "/handoff", HandoffRequest{Locale: "en"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// failingMailbox simulates an unavailable handoff store
type failingMailbox struct{}

func (failingMailbox) Put(context.Context, handoff.Payload) error {
	return errors.New("storage unavailable")
}

func (failingMailbox) Take(context.Context) (handoff.Payload, bool, error) {
	return handoff.Payload{}, false, errors.New("storage unavailable")
}

// TestHandoffWriteFailureIsTolerated pins the fire-and-forget contract:
// a storage failure never surfaces to the calculator.
func TestHandoffWriteFailureIsTolerated(t *testing.T) {
	s := testServer(t, failingMailbox{})

	rec := doJSON(t, s, http.MethodPost, "/handoff", HandoffRequest{
		Message: "summary",
		Locale:  "en",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp HandoffResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Accepted)

	rec = doJSON(t, s, http.MethodPost, "/handoff/take", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthAndVersion(t *testing.T) {
	s := testServer(t, nil)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
