package classify

import (
	"errors"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"

	"github.com/segevfiner/go-aierrors/pkg/aierrors"
)

// fromBedrock recognizes errors from the AWS Bedrock runtime SDK. Typed
// modeled exceptions are checked first, then the generic smithy transport
// error for its HTTP status. A smithy API error with no HTTP response
// available maps to fetch-error since no status can be reported.
func fromBedrock(url string, err error) *aierrors.Error {
	var throttle *types.ThrottlingException
	if errors.As(err, &throttle) {
		return aierrors.Wrap(err, aierrors.BadResponseParams{
			URL:          url,
			Status:       http.StatusTooManyRequests,
			StatusText:   http.StatusText(http.StatusTooManyRequests),
			Message:      throttle.ErrorMessage(),
			ErrorDetails: []aierrors.ErrorDetail{{Domain: "bedrock", Reason: throttle.ErrorCode()}},
		})
	}

	var denied *types.AccessDeniedException
	if errors.As(err, &denied) {
		return aierrors.Wrap(err, aierrors.BadResponseParams{
			URL:          url,
			Status:       http.StatusForbidden,
			StatusText:   http.StatusText(http.StatusForbidden),
			Message:      denied.ErrorMessage(),
			ErrorDetails: []aierrors.ErrorDetail{{Domain: "bedrock", Reason: denied.ErrorCode()}},
		})
	}

	var invalid *types.ValidationException
	if errors.As(err, &invalid) {
		return aierrors.Wrap(err, aierrors.InvalidContentParams{
			Message: invalid.ErrorMessage(),
		})
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		status := respErr.HTTPStatusCode()
		message := err.Error()
		var detail []aierrors.ErrorDetail
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.ErrorMessage()
			detail = []aierrors.ErrorDetail{{Domain: "bedrock", Reason: apiErr.ErrorCode()}}
		}
		return aierrors.Wrap(err, aierrors.BadResponseParams{
			URL:          url,
			Status:       status,
			StatusText:   http.StatusText(status),
			Message:      message,
			ErrorDetails: detail,
		})
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return aierrors.Wrap(err, aierrors.FetchErrorParams{
			URL:     url,
			Message: apiErr.ErrorMessage(),
		})
	}

	return nil
}
