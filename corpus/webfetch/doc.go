// Package webfetch retrieves constitutional text from web archives and
// converts it to corpus markdown. Fetching is SSRF-safe: HTTPS only,
// private and reserved address ranges blocked at validation time and
// again at dial time to defeat DNS rebinding.
package webfetch
