// Package core contains the shared contracts of the Wekeza SDK: configuration,
// the error taxonomy, the transport boundary, and logging helpers. Resource,
// auth, and webhook packages depend on core; core depends on none of them.
package core
