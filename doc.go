// Package investmind provides the core logic for a single-user, terminal
// driven investment tracker. It is designed to be local-first and
// auditable: every account lives in a single human-readable JSON document,
// and every investment is an immutable record appended to the owning
// user's history.
//
// The core functionalities include:
//   - Accounts: creating users with a play-money starting balance and
//     authenticating them against a stored password digest.
//   - Investment Catalog: a per-user list of investment options (companies)
//     with a closed set of option types and per-option investment bounds.
//   - Investment Engine: validating and executing an investment action,
//     computing its projected return value once at creation time, and
//     debiting the user's balance atomically with the history append.
//   - Data Persistence: encoding and decoding the full user mapping to and
//     from a flat JSON file.
//
// This package serves as the foundational logic for the `ivm` command-line
// tool; all interactive prompting, retry loops, and rendering belong to
// that outer layer, which calls into this package through typed errors.
package investmind
