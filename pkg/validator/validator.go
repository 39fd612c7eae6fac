package validator

import (
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateCreateUser(username, email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	requireText(errs, "username", username)
	requireText(errs, "email", email)
	requireText(errs, "password", password)

	return errs
}

// ValidateUpdateUser requires every field except password; active must be
// present and strictly boolean, which the *bool encodes.
func ValidateUpdateUser(id, username, email string, active *bool) ValidationErrors {
	errs := make(ValidationErrors)

	requireText(errs, "id", id)
	requireText(errs, "username", username)
	requireText(errs, "email", email)
	if active == nil {
		errs.Add("active", "Active must be a boolean")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	requireText(errs, "email", email)
	requireText(errs, "password", password)

	return errs
}

func ValidateCreateTask(user, title, description string) ValidationErrors {
	errs := make(ValidationErrors)

	requireText(errs, "user", user)
	requireText(errs, "title", title)
	requireText(errs, "description", description)

	return errs
}

func ValidateUpdateTask(id, user, title, description string, completed *bool) ValidationErrors {
	errs := make(ValidationErrors)

	requireText(errs, "id", id)
	requireText(errs, "user", user)
	requireText(errs, "title", title)
	requireText(errs, "description", description)
	if completed == nil {
		errs.Add("completed", "Completed must be a boolean")
	}

	return errs
}

func requireText(errs ValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, field+" is required")
	}
}
