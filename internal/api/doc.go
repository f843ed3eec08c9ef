// Package api handles incoming HTTP requests for the clinic booking
// platform: request decoding and validation, mapping service errors to
// status codes, and response formatting. Handlers hold no business rules;
// they translate HTTP into calls on the service layer.
package api
