// Package host is the consumer side of the provider contract: it keeps the
// set of installed providers, refreshes them and presents their algorithms
// under qualified identifiers of the form "provider:algorithm".
//
// Identifier uniqueness is enforced here and nowhere else. Providers may hand
// out duplicates; the host keeps the first occurrence and logs the rest.
package host
