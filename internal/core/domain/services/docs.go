// Package services holds the checkout domain services that work across the
// order aggregate and its collaborators' read models:
//
//   - PricingEngine computes order totals from lines.
//   - CartSnapshotBuilder resolves cart items against the catalog in one
//     batched lookup and freezes them into order lines.
package services
