// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a conform.Service as a REST service.
// The restclient package is a matching client.
//
// The REST surface exists to exercise an HTTP binding layer against a
// machine-readable contract: typed parameter coercion from query
// strings and path segments, conditional requests with entity tags,
// batch lookup, and structured error propagation.  The complete wire
// format is defined in the restdata package.
//
// Request Handling
//
// Each route pairs a request binder, a service method, and a response
// shaping rule.  The binder converts raw HTTP input (query strings,
// path segments, conditional-request headers, JSON bodies) into a
// typed request; malformed input never rejects a request at this
// layer, it just leaves the corresponding field unset.  The service
// returns a result union of exactly one value or error; the shaper
// picks the status code, headers, and body.  A result with neither
// arm populated panics, and the recovery path reports it as a 500
// with error code "panic".
//
// The pipeline holds no state between requests; the only shared
// object is the injected service.
//
// MIME Types
//
// This interface understands MIME types as follows:
//
//	application/vnd.diffeo.conformance.v1+json
//
// JSON representation of version 1 of this interface.
//
//	application/vnd.diffeo.conformance+json
//	application/json
//	text/json
//
// JSON representation of latest version of this interface.
//
// URL Scheme
//
// The following URLs are defined:
//
//	/
//	/widgets
//	/widgets/get
//	/widgets/{id}
//	/mirrorFields
//	/checkQuery
//	/checkPath/{string}/{boolean}/{double}/{int32}/{int64}/{decimal}/{enum}/{datetime}
package restserver
