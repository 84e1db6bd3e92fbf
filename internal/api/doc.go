// Package api handles incoming HTTP requests for blog posts: request
// decoding and validation, translation between the PostView transfer shape
// and the domain.Post entity, and mapping of service errors to HTTP
// responses. It acts as an adapter between clients and the service layer.
package api
