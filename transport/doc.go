// Package transport provides the default core.Transport, a thin REST adapter
// over net/http that maps failures onto the SDK error taxonomy.
package transport
