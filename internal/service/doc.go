// Package service contains the application use cases of the booking API:
// profile management, reservation status queries and cancellation, and
// account deletion.
//
// Services depend on the repository interfaces in internal/store, never on
// a concrete database implementation. Operations that span several
// repositories run inside store.RunInTransaction using WithTx-bound
// repositories.
//
// Expected conditions are returned as sentinel errors (store.ErrNotFound
// family, ErrNotOwned, domain validation errors) for callers to check with
// errors.Is. Unexpected failures are wrapped in *ServiceError, or in
// *store.StoreError for the transactional account deletion.
package service
