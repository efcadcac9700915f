// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the code that uses them, and StoreError is the single error kind every
// implementation reports data-access failures with.
package store
