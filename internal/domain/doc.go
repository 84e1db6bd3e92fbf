// Package domain contains the core business entities of the blog service.
// It has no dependencies on storage or transport and is shared by every
// other layer.
package domain
