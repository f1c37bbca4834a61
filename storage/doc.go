// Package storage defines the persistence interfaces for the knowledge
// base and the MUS serialization of stored records.
//
// The concrete BadgerDB implementation lives in storage/badger.
package storage
