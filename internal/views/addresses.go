package views

import (
	"context"

	"bookstorefront/internal/route"
	"bookstorefront/pkg/domain"
)

// AddressForm carries the add-address inputs. All fields are mandatory.
type AddressForm struct {
	FullName    string
	Phone       string
	AddressLine string
	City        string
	State       string
	PostalCode  string
	Country     string
}

// AddressesView lists the server's addresses decorated with the two locally
// cached references (default, last used). The references are presentation
// only and never sent to the server.
type AddressesView struct {
	view
	deps Deps

	addresses  []domain.Address
	defaultID  string
	lastUsedID string
}

func NewAddressesView(deps Deps) *AddressesView {
	return &AddressesView{deps: deps}
}

func (a *AddressesView) Load(ctx context.Context) {
	addresses, err := a.deps.API.ListAddresses(ctx)
	if err != nil {
		a.deps.failLoad(err)
		return
	}
	defaultID, _ := a.deps.Prefs.DefaultAddressID()
	lastUsedID, _ := a.deps.Prefs.LastUsedAddressID()
	a.patch(func() {
		a.addresses = addresses
		a.defaultID = defaultID
		a.lastUsedID = lastUsedID
	})
}

// Add validates the form locally, creates the address, and appends the
// server's echo (which carries the assigned id).
func (a *AddressesView) Add(ctx context.Context, form AddressForm) {
	if err := validateAddressForm(form); err != nil {
		a.deps.Notify.Error(err.Error())
		return
	}
	created, err := a.deps.API.AddAddress(ctx, domain.Address{
		FullName:    form.FullName,
		Phone:       form.Phone,
		AddressLine: form.AddressLine,
		City:        form.City,
		State:       form.State,
		PostalCode:  form.PostalCode,
		Country:     form.Country,
	})
	if err != nil {
		a.deps.Notify.Error(mutationMessage(err, "Failed to add address"))
		return
	}
	a.patch(func() { a.addresses = append(a.addresses, created) })
	a.deps.Notify.Success("Address added successfully")
}

// SetDefault records the default reference locally.
func (a *AddressesView) SetDefault(id string) {
	a.deps.Prefs.SetDefault(id)
	a.patch(func() { a.defaultID = id })
	a.deps.Notify.Success("Default address set")
}

func (a *AddressesView) ClearDefault() {
	a.deps.Prefs.ClearDefault()
	a.patch(func() { a.defaultID = "" })
	a.deps.Notify.Info("Default address removed")
}

// Use records the last-used reference and moves on to order confirmation.
func (a *AddressesView) Use(id string) {
	a.deps.Prefs.RecordLastUsed(id)
	a.patch(func() { a.lastUsedID = id })
	a.deps.Nav.Navigate(route.PathConfirmOrder + "?addressId=" + id)
}

// Remove deletes the address and, in the same operation, clears any cached
// reference to it so a dangling reference is never displayed.
func (a *AddressesView) Remove(ctx context.Context, id string) {
	if err := a.deps.API.DeleteAddress(ctx, id); err != nil {
		a.deps.Notify.Error(mutationMessage(err, "Failed to remove address"))
		return
	}
	a.deps.Prefs.ClearAddress(id)
	a.patch(func() {
		kept := a.addresses[:0]
		for _, addr := range a.addresses {
			if addr.AddressID != id {
				kept = append(kept, addr)
			}
		}
		a.addresses = kept
		if a.defaultID == id {
			a.defaultID = ""
		}
		if a.lastUsedID == id {
			a.lastUsedID = ""
		}
	})
	a.deps.Notify.Info("Address removed")
}

func (a *AddressesView) Addresses() []domain.Address {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addresses
}

func (a *AddressesView) DefaultID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.defaultID
}

func (a *AddressesView) LastUsedID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastUsedID
}
