package classify

import (
	"encoding/json"
	"errors"

	"github.com/segevfiner/go-aierrors/pkg/aierrors"
)

// Classify converts an error returned by a provider SDK into a standardized
// *aierrors.Error. url names the endpoint the failing call targeted and is
// carried into the produced error's message and CustomData.
//
// Errors that are already *aierrors.Error pass through unchanged. Recognized
// provider SDK errors map to their documented kinds. Everything else,
// including plain transport and context errors, becomes a fetch-error
// wrapping the original for errors.Is/errors.As chains.
//
// Classify returns nil for a nil error.
func Classify(url string, err error) *aierrors.Error {
	if err == nil {
		return nil
	}

	// Already standardized, pass through.
	var sdkErr *aierrors.Error
	if errors.As(err, &sdkErr) {
		return sdkErr
	}

	if e := fromGenAI(url, err); e != nil {
		return e
	}
	if e := fromOpenAI(url, err); e != nil {
		return e
	}
	if e := fromOpenRouter(url, err); e != nil {
		return e
	}
	if e := fromBedrock(url, err); e != nil {
		return e
	}
	if e := fromDecode(url, err); e != nil {
		return e
	}

	return aierrors.Wrap(err, aierrors.FetchErrorParams{URL: url, Message: err.Error()})
}

// fromDecode recognizes response-body decoding failures.
func fromDecode(url string, err error) *aierrors.Error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return aierrors.Wrap(err, aierrors.ParseFailedParams{URL: url, Message: err.Error()})
	}
	return nil
}
