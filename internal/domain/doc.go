// Package domain contains the core business entities of the application.
// Entities here are plain values: they know how to validate themselves but
// nothing about how they are persisted.
package domain
