// Package client talks to the recipe API over HTTP+JSON.
//
// # Overview
//
// The package provides:
//  1. The Client interface: session lifecycle, recipe collection queries,
//     recipe create/update/delete, comments, favorites and user profiles.
//  2. HTTPClient, the net/http implementation. It keeps the session cookie in
//     a cookie jar, sends every request with an X-Request-ID, optionally
//     rate-limits outgoing requests and encodes image-bearing writes as
//     multipart/form-data.
//
// # Error Handling
//
// Failures are reported in three categories that callers match with
// errors.Is / errors.As:
//   - transport failures wrap ErrUnavailable;
//   - non-OK responses are *APIError, which unwraps to ErrUnauthorized,
//     ErrForbidden or ErrNotFound where the status maps to one;
//   - OK responses of the wrong shape wrap ErrMalformedResponse.
//
// HTTPClient is safe for concurrent use; all operations honor the context.
package client
