package views

import (
	"context"

	"bookstorefront/internal/api"
	"bookstorefront/internal/route"
)

// LoginView is the sign-in form.
type LoginView struct {
	view
	deps Deps
}

func NewLoginView(deps Deps) *LoginView {
	return &LoginView{deps: deps}
}

// Submit exchanges credentials for a session and lands on the catalog. The
// token is persisted and the badge refreshed by the session layer.
func (l *LoginView) Submit(ctx context.Context, email, password string) {
	if email == "" || password == "" {
		l.deps.Notify.Warning("Please enter email and password")
		return
	}
	if err := l.deps.Session.Login(ctx, email, password); err != nil {
		if msg, ok := api.DomainMessage(err); ok && msg != "" {
			l.deps.Notify.Error(msg)
		} else {
			l.deps.Notify.Error("Something went wrong. Please try again.")
		}
		return
	}
	l.deps.Notify.Success("Login successful")
	l.deps.Nav.Navigate(route.DefaultLanding)
}

// SignupView is the registration form.
type SignupView struct {
	view
	deps Deps
}

func NewSignupView(deps Deps) *SignupView {
	return &SignupView{deps: deps}
}

// Submit validates locally, registers, and sends the user to login.
// Registration does not create a session.
func (s *SignupView) Submit(ctx context.Context, name, email, phone, password string) {
	if err := validateSignup(name, email, phone, password); err != nil {
		s.deps.Notify.Error(err.Error())
		return
	}
	if err := s.deps.API.SignUp(ctx, api.SignupRequest{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
	}); err != nil {
		s.deps.Notify.Error(mutationMessage(err, "Signup failed"))
		return
	}
	s.deps.Notify.Success("Signup successful. Please login.")
	s.deps.Nav.Navigate(route.PathLogin)
}

// ForgotPasswordView is a local-only stub: the storefront has no reset
// endpoint, so the form acknowledges without contacting the backend.
type ForgotPasswordView struct {
	view
	deps Deps
}

func NewForgotPasswordView(deps Deps) *ForgotPasswordView {
	return &ForgotPasswordView{deps: deps}
}

func (f *ForgotPasswordView) Submit(email string) {
	if email == "" {
		f.deps.Notify.Warning("Please enter your email address")
		return
	}
	f.deps.Notify.Info("If the account exists, a reset link has been sent")
}
