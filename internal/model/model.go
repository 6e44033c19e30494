// Package model holds the records persisted by the service and the
// request payloads that create or overwrite them.
package model

// ID is the database-assigned identity shared by every record.
type ID = int64
