// Package store defines the persistence contracts for users, hospitals,
// doctors and reservations, the shared store errors, and the transaction
// helper services use to group several store calls into one unit of work.
//
// Every store supports soft deletion: rows carry a nullable deleted_at
// timestamp and rows with a timestamp are invisible to lookups and listings.
package store
