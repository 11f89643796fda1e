// Package auth manages OAuth2 bearer tokens for the Wekeza API.
package auth
