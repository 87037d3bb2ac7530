// Package facts provides an HTTP client for the random fact endpoints.
//
// # Overview
//
// Two public JSON endpoints are used. The primary one returns a cat fact, the
// secondary one returns a piece of advice wrapped in a "slip" object:
//
//	GET https://catfact.ninja/fact       {"fact": "...", "length": 42}
//	GET https://api.adviceslip.com/advice {"slip": {"id": 1, "advice": "..."}}
//
// # Fallback
//
// RandomData tries the cat fact endpoint first. Any failure (transport error,
// HTTP status >= 400, malformed body) moves on to the advice endpoint, which is
// tried exactly once. When both fail the returned *FetchError describes the
// advice failure only:
//
//	Failed to fetch advice: execute request: ...
//	Failed to parse advice: decode response: ...
//
// The cat fact failure is written to the standard logger together with a
// per-call id so it can still be traced.
//
// There are no retries, no caching and no client-side timeout; cancellation
// comes from the caller's context.
package facts
