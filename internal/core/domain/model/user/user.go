// Package user is the checkout's view of a customer and their address book.
package user

import (
	"checkout/internal/core/domain/model/kernel"
)

type Address struct {
	ID        string
	Title     string
	Street    string
	City      string
	District  string
	Zip       string
	IsDefault bool
}

type User struct {
	ID        kernel.UUID
	Addresses []Address
}

// ResolveAddress picks the address with addressID when given and present,
// otherwise the default address. ok is false when neither exists.
func (u *User) ResolveAddress(addressID string) (Address, bool) {
	if u == nil {
		return Address{}, false
	}
	if addressID != "" {
		for _, a := range u.Addresses {
			if a.ID == addressID {
				return a, true
			}
		}
	}
	for _, a := range u.Addresses {
		if a.IsDefault {
			return a, true
		}
	}
	return Address{}, false
}

// Snapshot copies the address onto an order.
func (a Address) Snapshot() (kernel.AddressSnapshot, error) {
	return kernel.NewAddressSnapshot(a.Title, a.Street, a.City, a.District, a.Zip)
}
