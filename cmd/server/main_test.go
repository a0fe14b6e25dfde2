package main

import (
	"database/sql"
	"testing"
)

// The server opens either storage backend itself, so both drivers must be
// registered in this binary, not just in dbtool.
func TestSQLDriversRegistered(t *testing.T) {
	registered := make(map[string]bool)
	for _, name := range sql.Drivers() {
		registered[name] = true
	}

	for _, want := range []string{"pgx", "sqlite"} {
		if !registered[want] {
			t.Errorf("driver %q not registered; have %v", want, sql.Drivers())
		}
	}
}
