package repository

import (
	"strings"
	"testing"
)

// Email is the identity key and compares byte-exact on both backends. The
// users DDL must pin a binary collation on the column; the default utf8mb4
// collation folds case, which would make Ann@x.com and ann@x.com collide in
// the UNIQUE index and match each other's login lookups.
func TestSchemaEmailCollationIsBinary(t *testing.T) {
	t.Parallel()

	var usersDDL string
	for _, stmt := range schema {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS users") {
			usersDDL = stmt
		}
	}
	if usersDDL == "" {
		t.Fatalf("users DDL not found in schema")
	}
	if !strings.Contains(usersDDL, "email VARCHAR(255) COLLATE utf8mb4_bin") {
		t.Fatalf("users.email must declare COLLATE utf8mb4_bin, got:\n%s", usersDDL)
	}
	if !strings.Contains(usersDDL, "UNIQUE KEY uq_users_email (email)") {
		t.Fatalf("users.email must carry the unique index, got:\n%s", usersDDL)
	}
}
