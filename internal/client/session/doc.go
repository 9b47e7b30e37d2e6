// Package session owns the client's authentication state: who is logged in
// and with which bearer token.
//
// There is exactly one Manager per running client. It is created at startup,
// restored from durable local storage with Initialize, and mutated only by
// Login and Logout. Every other component receives the Manager by injection
// and reads it through State or Token; components that must react to
// changes register with Subscribe.
//
// Persistence is best-effort: when local storage cannot be written the
// in-memory session stays authoritative for the lifetime of the process.
package session
