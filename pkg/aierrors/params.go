// Per-kind construction parameter variants
package aierrors

import "strconv"

// Params is the sealed tagged union of construction parameters. Exactly one
// variant exists per Kind, carrying that kind's required field set, so the
// shape of a construction request is checked by the compiler rather than at
// runtime. Kinds that declare no parameters have zero-field variants.
type Params interface {
	// ErrorKind returns the kind this variant constructs.
	ErrorKind() Kind

	sealed()
}

// FetchErrorParams constructs a fetch-error: a network-level failure
// reaching url. Message carries the transport error text.
type FetchErrorParams struct {
	URL     string
	Message string
}

// InvalidContentParams constructs an invalid-content error for malformed
// caller-supplied content.
type InvalidContentParams struct {
	Message string
}

// NoAPIKeyParams constructs a no-api-key error.
type NoAPIKeyParams struct{}

// NoModelParams constructs a no-model error.
type NoModelParams struct{}

// NoProjectIDParams constructs a no-project-id error.
type NoProjectIDParams struct{}

// ParseFailedParams constructs a parse-failed error for a response body
// from url that could not be decoded.
type ParseFailedParams struct {
	URL     string
	Message string
}

// BadResponseParams constructs a bad-response error for a non-2xx HTTP
// response from url. ErrorDetails optionally carries the upstream error
// detail records in server order.
type BadResponseParams struct {
	URL          string
	Status       int
	StatusText   string
	Message      string
	ErrorDetails []ErrorDetail
}

// ResponseErrorParams constructs a response-error: an application-level
// error embedded in an otherwise successful response. Response holds the
// full decoded response object, stored verbatim for downstream inspection.
type ResponseErrorParams struct {
	Message  string
	Response any
}

func (FetchErrorParams) ErrorKind() Kind     { return KindFetchError }
func (InvalidContentParams) ErrorKind() Kind { return KindInvalidContent }
func (NoAPIKeyParams) ErrorKind() Kind       { return KindNoAPIKey }
func (NoModelParams) ErrorKind() Kind        { return KindNoModel }
func (NoProjectIDParams) ErrorKind() Kind    { return KindNoProjectID }
func (ParseFailedParams) ErrorKind() Kind    { return KindParseFailed }
func (BadResponseParams) ErrorKind() Kind    { return KindBadResponse }
func (ResponseErrorParams) ErrorKind() Kind  { return KindResponseError }

func (FetchErrorParams) sealed()     {}
func (InvalidContentParams) sealed() {}
func (NoAPIKeyParams) sealed()       {}
func (NoModelParams) sealed()        {}
func (NoProjectIDParams) sealed()    {}
func (ParseFailedParams) sealed()    {}
func (BadResponseParams) sealed()    {}
func (ResponseErrorParams) sealed()  {}

// bind produces the template substitution fields and the diagnostic
// CustomData for a variant. Message-only fields are consumed here for
// substitution and never echoed into CustomData.
func bind(p Params) (map[string]string, CustomData) {
	switch v := p.(type) {
	case FetchErrorParams:
		return map[string]string{
				"url":     v.URL,
				"message": v.Message,
			}, CustomData{
				URL: v.URL,
			}
	case InvalidContentParams:
		return map[string]string{"message": v.Message}, CustomData{}
	case NoAPIKeyParams, NoModelParams, NoProjectIDParams:
		return nil, CustomData{}
	case ParseFailedParams:
		return map[string]string{
				"url":     v.URL,
				"message": v.Message,
			}, CustomData{
				URL: v.URL,
			}
	case BadResponseParams:
		return map[string]string{
				"url":        v.URL,
				"status":     strconv.Itoa(v.Status),
				"statusText": v.StatusText,
				"message":    v.Message,
			}, CustomData{
				URL:          v.URL,
				Status:       v.Status,
				StatusText:   v.StatusText,
				ErrorDetails: v.ErrorDetails,
			}
	case ResponseErrorParams:
		return map[string]string{"message": v.Message}, CustomData{
			Response: v.Response,
		}
	default:
		// Unreachable: Params is sealed.
		return nil, CustomData{}
	}
}
