package aierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// completeParams returns a well-formed params variant for every kind.
func completeParams() []Params {
	return []Params{
		FetchErrorParams{URL: "https://api.example.com/v1", Message: "timeout"},
		InvalidContentParams{Message: "image payload exceeds size limit"},
		NoAPIKeyParams{},
		NoModelParams{},
		NoProjectIDParams{},
		ParseFailedParams{URL: "https://api.example.com/v1", Message: "unexpected end of JSON input"},
		BadResponseParams{URL: "https://api.example.com/v1", Status: 500, StatusText: "Internal Server Error", Message: "boom"},
		ResponseErrorParams{Message: "candidate was blocked", Response: map[string]any{"candidates": []any{}}},
	}
}

func TestNewResolvesAllPlaceholders(t *testing.T) {
	for _, p := range completeParams() {
		t.Run(p.ErrorKind().String(), func(t *testing.T) {
			err := New(p)
			if err.Kind != p.ErrorKind() {
				t.Errorf("Kind = %q, want %q", err.Kind, p.ErrorKind())
			}
			if strings.Contains(err.Message, "{$") {
				t.Errorf("message contains unresolved placeholder: %q", err.Message)
			}
			if err.Message == "" {
				t.Error("message should not be empty")
			}
		})
	}
}

func TestNewParamlessKindsUseStaticTemplate(t *testing.T) {
	tests := []struct {
		params Params
		want   string
	}{
		{NoAPIKeyParams{}, "Must provide an API key. Example: getGenerativeModel({ apiKey: 'my-api-key' })"},
		{NoModelParams{}, "Must provide a model name. Example: getGenerativeModel({ model: 'my-model-name' })"},
		{NoProjectIDParams{}, "Must provide a project ID. Example: getGenerativeModel({ projectId: 'my-project-id' })"},
	}

	for _, tt := range tests {
		t.Run(tt.params.ErrorKind().String(), func(t *testing.T) {
			err := New(tt.params)
			if err.Message != tt.want {
				t.Errorf("Message = %q, want %q", err.Message, tt.want)
			}
			if err.Message != templates[tt.params.ErrorKind()] {
				t.Error("paramless message should be exactly the static template")
			}
			if !cmp.Equal(err.CustomData, CustomData{}) {
				t.Errorf("paramless kinds should carry no custom data, got %+v", err.CustomData)
			}
		})
	}
}

func TestNewFetchError(t *testing.T) {
	err := New(FetchErrorParams{URL: "https://api.example.com/v1", Message: "timeout"})

	want := "Error fetching from https://api.example.com/v1: timeout"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if err.CustomData.URL != "https://api.example.com/v1" {
		t.Errorf("CustomData.URL = %q", err.CustomData.URL)
	}
	// The free-text message is consumed by substitution only.
	if err.CustomData.Response != nil || err.CustomData.Status != 0 {
		t.Errorf("fetch-error should only carry url, got %+v", err.CustomData)
	}
}

func TestNewBadResponse(t *testing.T) {
	err := New(BadResponseParams{URL: "u", Status: 404, StatusText: "Not Found", Message: "missing"})

	want := "Bad response from u: [404 Not Found] missing"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if err.CustomData.Status != 404 {
		t.Errorf("CustomData.Status = %d, want 404", err.CustomData.Status)
	}
	if err.CustomData.StatusText != "Not Found" {
		t.Errorf("CustomData.StatusText = %q", err.CustomData.StatusText)
	}
	if err.CustomData.URL != "u" {
		t.Errorf("CustomData.URL = %q", err.CustomData.URL)
	}
}

func TestBadResponsePreservesErrorDetailOrder(t *testing.T) {
	details := []ErrorDetail{
		{Type: "type.googleapis.com/google.rpc.ErrorInfo", Reason: "API_KEY_INVALID", Domain: "googleapis.com"},
		{Reason: "SERVICE_DISABLED", Domain: "googleapis.com", Metadata: map[string]any{"service": "example"}},
		{Extra: map[string]any{"locale": "en-US"}},
	}

	err := New(BadResponseParams{URL: "u", Status: 400, StatusText: "Bad Request", Message: "m", ErrorDetails: details})

	if diff := cmp.Diff(details, err.CustomData.ErrorDetails); diff != "" {
		t.Errorf("ErrorDetails mismatch (-want +got):\n%s", diff)
	}
}

func TestResponseErrorKeepsResponseVerbatim(t *testing.T) {
	response := map[string]any{
		"candidates": []any{
			map[string]any{"finishReason": "SAFETY"},
		},
		"promptFeedback": map[string]any{"blockReason": "OTHER"},
	}

	err := New(ResponseErrorParams{Message: "candidate was blocked", Response: response})

	if err.Message != "Response error: candidate was blocked" {
		t.Errorf("Message = %q", err.Message)
	}
	if diff := cmp.Diff(response, err.CustomData.Response); diff != "" {
		t.Errorf("Response mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, FetchErrorParams{URL: "u", Message: cause.Error()})

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
	if New(NoModelParams{}).Unwrap() != nil {
		t.Error("New should not record a cause")
	}
}

func TestKindHelpers(t *testing.T) {
	err := New(NoAPIKeyParams{})
	wrapped := fmt.Errorf("creating client: %w", err)

	if got := KindOf(wrapped); got != KindNoAPIKey {
		t.Errorf("KindOf = %q, want %q", got, KindNoAPIKey)
	}
	if !IsKind(wrapped, KindNoAPIKey) {
		t.Error("IsKind should match through wrapping")
	}
	if IsKind(wrapped, KindNoModel) {
		t.Error("IsKind should not match a different kind")
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
}

func TestKindsAreClosedAndTemplated(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != len(templates) {
		t.Fatalf("Kinds() returned %d kinds, templates has %d", len(kinds), len(templates))
	}
	seen := make(map[Kind]bool)
	for _, k := range kinds {
		if !k.Valid() {
			t.Errorf("kind %q should be valid", k)
		}
		if seen[k] {
			t.Errorf("kind %q listed twice", k)
		}
		seen[k] = true
	}
	if Kind("no-such-kind").Valid() {
		t.Error("unknown kind should not be valid")
	}
}

func TestErrorJSONRoundTrip(t *testing.T) {
	orig := Wrap(errors.New("boom"), BadResponseParams{
		URL:        "https://api.example.com/v1",
		Status:     429,
		StatusText: "Too Many Requests",
		Message:    "quota exceeded",
		ErrorDetails: []ErrorDetail{
			{Reason: "RATE_LIMIT_EXCEEDED", Domain: "googleapis.com", Extra: map[string]any{"retryDelay": "30s"}},
		},
	})

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// The wire shape is part of the contract other SDK layers rely on.
	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("Unmarshal into map failed: %v", err)
	}
	if wire["kind"] != "bad-response" {
		t.Errorf("wire kind = %v", wire["kind"])
	}
	if _, ok := wire["customData"]; !ok {
		t.Error("wire format should include customData")
	}

	var back Error
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.Kind != orig.Kind || back.Message != orig.Message {
		t.Errorf("round trip changed kind/message: %+v", back)
	}
	if back.CustomData.Status != 429 {
		t.Errorf("round trip Status = %d", back.CustomData.Status)
	}
	if diff := cmp.Diff(orig.CustomData.ErrorDetails, back.CustomData.ErrorDetails); diff != "" {
		t.Errorf("ErrorDetails mismatch (-want +got):\n%s", diff)
	}
	if back.Unwrap() == nil || back.Unwrap().Error() != "boom" {
		t.Error("round trip should restore the cause text")
	}
}
