package repository

import _ "embed"

// Schema holds the DDL for the contact_submissions table. Applied by
// cmd/migrate; all statements are idempotent.
//
//go:embed schema.sql
var Schema string
