// Package api implements the Wekeza resource endpoints: accounts, payments,
// and webhook endpoint registration. Resources are stateless; every call asks
// the token source for a bearer token and performs a single transport request.
package api
