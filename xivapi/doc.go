// Package xivapi is a client for the XIVAPI REST service, covering character
// and Free Company search and lookup.
//
// Response models mirror the upstream JSON exactly. Field names come from the
// json struct tags, pointer fields are optional, and every other field must be
// present in the response or decoding fails with a *SchemaMismatchError.
package xivapi
