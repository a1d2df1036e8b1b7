// Package http serves the contacts REST API.
//
// Routes cover registration, login and the email-token flows under /auth,
// the owner-scoped contact book under /contacts and the current user under
// /users. Tracing, access logging, metrics, gzip and bearer authentication
// run as chi middleware in front of the service layer.
package http
