// Package kernel holds the value objects shared by the checkout domain model.
//
//   - UUID: identifiers for orders, owners and events
//   - Money: non-negative decimal amounts in the single store currency
//   - AddressSnapshot: an immutable copy of a delivery address taken at checkout
//
// All of them are immutable; zero values are invalid and fail Validate.
package kernel
