package models

import "github.com/google/uuid"

// ensureID assigns a fresh uuid when the caller left the primary key empty.
// gen_random_uuid() covers Postgres; sqlite has no equivalent default.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
