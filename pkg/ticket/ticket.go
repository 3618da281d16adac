// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ticket issues time-ordered identifiers for asynchronous requests.

A ticket is handed out when a request starts; the requester keeps the latest
one and discards any response whose ticket no longer matches.

It wraps google/uuid to generate Version 7 values:

  - Sortable: Naturally ordered by creation time (millisecond precision).
  - Comparable: Usable with == and as a map key.
  - Loggable: String form is the canonical UUID text.
*/
package ticket

import "github.com/google/uuid"

// Ticket identifies one request. The zero value is "no request".
type Ticket struct {
	id uuid.UUID
}

// # Generators

// New issues a fresh ticket.
func New() Ticket {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("ticket: failed to generate UUID: " + err.Error())
	}

	return Ticket{id: id}
}

// # Accessors

// String returns the canonical UUID text, or "" for the zero ticket.
func (t Ticket) String() string {
	if t.IsZero() {
		return ""
	}
	return t.id.String()
}

// IsZero reports whether t was never issued.
func (t Ticket) IsZero() bool {
	return t.id == uuid.Nil
}

