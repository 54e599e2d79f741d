// Package kernel contains shared value objects used across the tracking
// domain model: database-generated identities and calendar dates.
//
// The package includes:
//   - ID: an integer identity generated by the persistence layer
//   - DeliveryDate: a calendar date without a time component
//
// Both types are immutable value objects in the Domain-Driven Design sense:
// they are compared by value, validated on construction or use, and safe for
// concurrent use.
package kernel
