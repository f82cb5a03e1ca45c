package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segevfiner/go-aierrors/pkg/aierrors"
)

const testURL = "https://api.example.com/v1"

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, Classify(testURL, nil))
}

func TestClassifyPassthrough(t *testing.T) {
	orig := aierrors.New(aierrors.NoModelParams{})

	assert.Same(t, orig, Classify(testURL, orig))

	wrapped := fmt.Errorf("creating model: %w", orig)
	assert.Same(t, orig, Classify(testURL, wrapped))
}

func TestClassifyDecodeFailure(t *testing.T) {
	var v map[string]any
	decodeErr := json.Unmarshal([]byte(`{"candidates":`), &v)
	require.Error(t, decodeErr)

	err := Classify(testURL, decodeErr)

	require.NotNil(t, err)
	assert.Equal(t, aierrors.KindParseFailed, err.Kind)
	assert.Equal(t, testURL, err.CustomData.URL)
	assert.True(t, errors.Is(err, decodeErr))
}

func TestClassifyFallbackIsFetchError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	err := Classify(testURL, cause)

	require.NotNil(t, err)
	assert.Equal(t, aierrors.KindFetchError, err.Kind)
	assert.Equal(t, "Error fetching from https://api.example.com/v1: dial tcp: connection refused", err.Message)
	assert.Equal(t, testURL, err.CustomData.URL)
	assert.True(t, errors.Is(err, cause))
}
