// Package localstore is the client's durable local storage: a string-keyed
// byte store in a local SQLite file that survives restarts, playing the
// part browser localStorage plays for a web client.
//
// Open creates (or reuses) the database file and applies the embedded goose
// migrations; Store provides GetItem/SetItem/RemoveItem over the
// local_storage table. A missing key reads as (nil, nil).
package localstore
