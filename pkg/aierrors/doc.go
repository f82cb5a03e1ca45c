// Package aierrors provides the standardized error taxonomy for SDK clients
// talking to generative-AI HTTP APIs.
//
// The package is a pure error factory. Every failure the SDK can surface is
// identified by a closed set of kinds, and each kind owns a message template
// with named placeholders. Construction binds a kind-specific parameter
// record, renders the template, and returns an immutable *Error carrying
// both the human-readable message and a structured CustomData side-channel
// for programmatic handling.
//
// The main components include:
//
// - Kind: closed enumeration of failure categories
// - Params: sealed tagged union of per-kind construction parameters
// - New/Wrap: the single construction entry points
// - Error: the produced error value with Kind, message, and CustomData
// - ErrorDetail: open record describing one upstream-reported cause
//
// Construction is total and side-effect free: it never fails, never logs,
// and touches only its own locals plus an immutable template table, so
// concurrent callers need no coordination. Classification of errors raised
// by provider SDKs lives in the separate /pkg/classify package to keep the
// provider dependencies out of the core.
package aierrors
