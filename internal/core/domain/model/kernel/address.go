package kernel

import (
	"errors"
	"strings"

	"checkout/internal/pkg/errs"
)

// AddressSnapshot is the delivery address copied onto an order at checkout.
// Later edits to the user's address book never reach it.
type AddressSnapshot struct {
	title    string
	street   string
	city     string
	district string
	zip      string

	isConstructed bool
}

// NewAddressSnapshot requires street and city; title, district and zip are optional.
func NewAddressSnapshot(title, street, city, district, zip string) (AddressSnapshot, error) {
	a := AddressSnapshot{
		title:         strings.TrimSpace(title),
		street:        strings.TrimSpace(street),
		city:          strings.TrimSpace(city),
		district:      strings.TrimSpace(district),
		zip:           strings.TrimSpace(zip),
		isConstructed: true,
	}

	var errList []error
	if a.street == "" {
		errList = append(errList, errs.NewValueIsRequiredError("street"))
	}
	if a.city == "" {
		errList = append(errList, errs.NewValueIsRequiredError("city"))
	}
	if err := errors.Join(errList...); err != nil {
		return AddressSnapshot{}, err
	}
	return a, nil
}

func (a AddressSnapshot) Title() string    { return a.title }
func (a AddressSnapshot) Street() string   { return a.street }
func (a AddressSnapshot) City() string     { return a.city }
func (a AddressSnapshot) District() string { return a.district }
func (a AddressSnapshot) Zip() string      { return a.zip }

func (a AddressSnapshot) Validate() error {
	if !a.isConstructed {
		return errs.NewValueIsRequiredError("address snapshot")
	}
	return nil
}

func (a AddressSnapshot) IsEqual(other AddressSnapshot) bool {
	return a == other
}
