// Package webhooks verifies and dispatches inbound Wekeza webhook deliveries.
//
// Every delivery carries an HMAC-SHA256 hex signature of the raw request body.
// Payloads are decoded only after the signature has been checked, then
// normalized into an Event and routed to a Handler by event type.
package webhooks
