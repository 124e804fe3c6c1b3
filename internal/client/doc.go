// Package client fetches the problem catalog from the upstream API.
//
// The client owns everything about the wire: the response envelope shape,
// the session cookie, request correlation, and rate limiting. It hands
// the rest of the program a materialized []catalog.Problem and nothing
// else, so the listing engine never sees the envelope.
package client
