// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CatalogStore: Loads the household catalog (person keys + raw records)
//
// # Optional Interfaces
//
//   - CatalogWatcher: Change notification for live catalog reload.
//     A CatalogStore that cannot watch simply doesn't implement it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
