// Package classify normalizes errors surfaced by provider SDK clients into
// the standardized taxonomy of /pkg/aierrors.
//
// Provider SDKs each report failures with their own error types. Classify
// recognizes the types of the supported providers (Gemini, OpenAI,
// OpenRouter, AWS Bedrock) and maps them to the matching error kind,
// carrying HTTP status, status text, and upstream error details through
// into CustomData. Unrecognized errors fall back to a fetch-error so the
// rest of the SDK only ever raises *aierrors.Error.
//
// Provider recognizers live in separate files (gemini.go, openai.go,
// openrouter.go, bedrock.go) to keep each SDK's types in one place.
package classify
