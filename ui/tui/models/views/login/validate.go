// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package login

import (
	"net/mail"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 -]*$`)

// validIdentifier accepts a bare email address or a phone number of 7 to 15
// digits, optionally prefixed with + and grouped by spaces or dashes.
func validIdentifier(s string) bool {
	return validEmail(s) || validPhone(s)
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@")+1:], ".")
}

func validPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

// validate returns the message id of the first problem with c, or "".
func validate(c Credentials) string {
	identifier := strings.TrimSpace(c.Identifier)
	switch {
	case identifier == "":
		return "login.error.identifier.empty"
	case !validIdentifier(identifier):
		return "login.error.identifier.invalid"
	case c.Password == "":
		return "login.error.password.empty"
	}
	return ""
}
