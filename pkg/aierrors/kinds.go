// Error kind enumeration and message templates
package aierrors

// Kind identifies a category of SDK failure. The set is closed: every error
// produced by this package carries exactly one of the constants below.
type Kind string

const (
	// KindFetchError indicates a network-level failure reaching the API.
	KindFetchError Kind = "fetch-error"
	// KindInvalidContent indicates malformed input content supplied by the caller.
	KindInvalidContent Kind = "invalid-content"
	// KindNoAPIKey indicates a missing API key in the client configuration.
	KindNoAPIKey Kind = "no-api-key"
	// KindNoModel indicates a missing model name in the client configuration.
	KindNoModel Kind = "no-model"
	// KindNoProjectID indicates a missing project ID in the client configuration.
	KindNoProjectID Kind = "no-project-id"
	// KindParseFailed indicates a response body that could not be decoded.
	KindParseFailed Kind = "parse-failed"
	// KindBadResponse indicates a non-2xx HTTP response from the API.
	KindBadResponse Kind = "bad-response"
	// KindResponseError indicates an application-level error embedded in an
	// otherwise successful API response.
	KindResponseError Kind = "response-error"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := templates[k]
	return ok
}

// Kinds returns all declared kinds. The returned slice is a copy.
func Kinds() []Kind {
	ks := make([]Kind, 0, len(templates))
	for _, k := range kindOrder {
		ks = append(ks, k)
	}
	return ks
}

// kindOrder fixes a stable iteration order for Kinds.
var kindOrder = []Kind{
	KindFetchError,
	KindInvalidContent,
	KindNoAPIKey,
	KindNoModel,
	KindNoProjectID,
	KindParseFailed,
	KindBadResponse,
	KindResponseError,
}

// templates maps each kind to its message template. Placeholders use the
// {$name} form and are bound from the kind's Params variant at construction
// time. Read-only after package init.
var templates = map[Kind]string{
	KindFetchError:     "Error fetching from {$url}: {$message}",
	KindInvalidContent: "Content error: {$message}",
	KindNoAPIKey:       "Must provide an API key. Example: getGenerativeModel({ apiKey: 'my-api-key' })",
	KindNoModel:        "Must provide a model name. Example: getGenerativeModel({ model: 'my-model-name' })",
	KindNoProjectID:    "Must provide a project ID. Example: getGenerativeModel({ projectId: 'my-project-id' })",
	KindParseFailed:    "Parsing failed: {$message}",
	KindBadResponse:    "Bad response from {$url}: [{$status} {$statusText}] {$message}",
	KindResponseError:  "Response error: {$message}",
}
