// Package domain contains the core business entities, value objects, and
// domain rules of the clinic booking backend: users and their roles,
// hospitals, doctors, and reservations with their status lifecycle.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
