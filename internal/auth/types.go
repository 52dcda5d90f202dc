package auth

import "timeblock/internal/model"

// --- UseCase Inputs ---

// CallbackInput carries the OAuth redirect parameters and the state that was
// stored in the browser when the login started.
type CallbackInput struct {
	Code          string
	State         string
	ExpectedState string
}

// --- UseCase Outputs ---

type LoginOutput struct {
	URL   string
	State string
}

type CallbackOutput struct {
	User  model.User
	Token string
}

type MeOutput struct {
	User model.User
}
