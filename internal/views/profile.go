package views

import (
	"context"

	"bookstorefront/pkg/domain"
)

// ProfileView shows and edits the account's profile.
type ProfileView struct {
	view
	deps Deps

	profile domain.Profile
}

func NewProfileView(deps Deps) *ProfileView {
	return &ProfileView{deps: deps}
}

func (p *ProfileView) Load(ctx context.Context) {
	profile, err := p.deps.API.GetProfile(ctx)
	if err != nil {
		p.deps.failLoad(err)
		return
	}
	p.patch(func() { p.profile = profile })
}

// Update saves name and phone, then patches the local copy.
func (p *ProfileView) Update(ctx context.Context, name, phone string) {
	if err := validatePhone(phone); err != nil {
		p.deps.Notify.Error(err.Error())
		return
	}
	if err := p.deps.API.UpdateProfile(ctx, name, phone); err != nil {
		p.deps.Notify.Error(mutationMessage(err, "Failed to update profile"))
		return
	}
	p.patch(func() {
		p.profile.Name = name
		p.profile.Phone = phone
	})
	p.deps.Notify.Success("Profile updated successfully")
}

// ChangePassword checks the confirmation and minimum length before going to
// the server.
func (p *ProfileView) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmPassword string) {
	if newPassword != confirmPassword {
		p.deps.Notify.Warning("Passwords do not match")
		return
	}
	if err := validatePassword(newPassword); err != nil {
		p.deps.Notify.Warning(err.Error())
		return
	}
	if err := p.deps.API.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		p.deps.Notify.Error(mutationMessage(err, "Failed to change password"))
		return
	}
	p.deps.Notify.Success("Password changed successfully")
}

func (p *ProfileView) Profile() domain.Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profile
}
