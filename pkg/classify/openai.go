package classify

import (
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/segevfiner/go-aierrors/pkg/aierrors"
)

// fromOpenAI recognizes errors from the OpenAI SDK
// (sashabaranov/go-openai). API errors with an HTTP status become
// bad-response errors; API errors without one are application-level and
// become response-error with the upstream error object attached verbatim.
func fromOpenAI(url string, err error) *aierrors.Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		detail := aierrors.ErrorDetail{
			Domain: "openai",
			Reason: apiErr.Type,
		}
		// Code is untyped in the SDK; only a string form is useful here.
		if codeStr, ok := apiErr.Code.(string); ok && codeStr != "" {
			detail.Reason = codeStr
		}

		if apiErr.HTTPStatusCode > 0 {
			return aierrors.Wrap(err, aierrors.BadResponseParams{
				URL:          url,
				Status:       apiErr.HTTPStatusCode,
				StatusText:   http.StatusText(apiErr.HTTPStatusCode),
				Message:      apiErr.Message,
				ErrorDetails: []aierrors.ErrorDetail{detail},
			})
		}
		return aierrors.Wrap(err, aierrors.ResponseErrorParams{
			Message:  apiErr.Message,
			Response: apiErr,
		})
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode > 0 {
			return aierrors.Wrap(err, aierrors.BadResponseParams{
				URL:        url,
				Status:     reqErr.HTTPStatusCode,
				StatusText: http.StatusText(reqErr.HTTPStatusCode),
				Message:    reqErr.Error(),
			})
		}
		return aierrors.Wrap(err, aierrors.FetchErrorParams{URL: url, Message: reqErr.Error()})
	}

	return nil
}
