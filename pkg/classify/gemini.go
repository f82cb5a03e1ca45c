package classify

import (
	"errors"

	"google.golang.org/genai"

	"github.com/segevfiner/go-aierrors/pkg/aierrors"
)

// fromGenAI recognizes errors from the Google Gemini SDK
// (google.golang.org/genai). API failures become bad-response errors
// carrying the upstream status and error detail records in server order.
func fromGenAI(url string, err error) *aierrors.Error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	var details []aierrors.ErrorDetail
	for _, d := range apiErr.Details {
		details = append(details, aierrors.DetailFromMap(d))
	}

	return aierrors.Wrap(err, aierrors.BadResponseParams{
		URL:          url,
		Status:       apiErr.Code,
		StatusText:   apiErr.Status,
		Message:      apiErr.Message,
		ErrorDetails: details,
	})
}
