package domain

import "errors"

var (
	ErrAPIKeyNotConfigured = errors.New("api key not configured")
	ErrUpstreamTransport   = errors.New("upstream transport failure")
	ErrUpstreamPayload     = errors.New("upstream payload could not be decoded")
	ErrEmptyResult         = errors.New("upstream returned no candidate text")
)
