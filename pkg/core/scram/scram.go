// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram exports the expected interface for Salted Challenge
// Response Authentication Mechanism (SCRAM) hashing. For the
// corresponding implementation, check the adapter layer.
//
// Only hash string generation is required here: a password, salt, and
// iteration count are turned into the standard scram hash format, so
// it can be passed to a PostgreSQL CREATE/ALTER ROLE statement during
// the database initialization commands without sending the plaintext
// password in a DDL query (so its possible logging is not a threat).
// The client and server side SCRAM conversations are managed by the
// PostgreSQL server and its driver in the adapter layer.
package scram

// Hasher represents the expectations from a SCRAM hasher
// implementation which for a specific underlying hash function (e.g.,
// SHA1 or SHA256) computes the storedKey and serverKey values whenever
// its Hash method is called with the relevant pass, salt, and iters
// arguments. The username and authorization identifier do not affect
// the hash output and so are not asked by this interface.
type Hasher interface {
	// Hash computes a hash string following the standard scram hash
	// format, so it can be stored and used later for authentication.
	//
	// The pass argument must be non-empty. The salt must contain a
	// base64 encoding of the desired salt bytes; if an empty value is
	// passed, a random salt will be generated and used instead. The
	// iters must be at least equal to 4096 (RFC 7677 recommends 15000
	// or more).
	//
	// In absence of errors, a hashed string will be returned which
	// conforms to the following format.
	//
	//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
	//
	// This string (consisting only of ASCII printable letters) can
	// be safely passed to an ALTER or CREATE ROLE query in order to
	// update or create a database role with the desired password as
	// accepted by the PostgreSQL DBMS.
	Hash(pass, salt string, iters int) (string, error)
}
