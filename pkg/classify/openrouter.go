package classify

import (
	"errors"
	"net/http"

	"github.com/revrost/go-openrouter"

	"github.com/segevfiner/go-aierrors/pkg/aierrors"
)

// fromOpenRouter recognizes errors from the OpenRouter SDK
// (revrost/go-openrouter). The SDK mirrors the OpenAI error surface, so the
// mapping follows the same shape as fromOpenAI.
func fromOpenRouter(url string, err error) *aierrors.Error {
	var apiErr *openrouter.APIError
	if errors.As(err, &apiErr) {
		detail := aierrors.ErrorDetail{Domain: "openrouter"}
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

	var reqErr *openrouter.RequestError
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
