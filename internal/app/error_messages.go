// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the sign-up demo.
//
// The Msg* constants are shown in the form status line, rendered by the
// problem box or reported by the checks the form registers itself.
package app

const (
	// MsgCannotSignUp is shown when the sign-up button is pressed while the
	// form still contains errors.
	MsgCannotSignUp = "Cannot sign up, fix the problems first"

	// MsgCannotSignUpTooltip heads the tooltip of the disabled sign-up button.
	MsgCannotSignUpTooltip = "Cannot sign up:\n"

	// MsgSignedUp is the body of the page shown after a successful sign up.
	MsgSignedUp = "You're now signed in."

	// MsgNothingToCopy is shown when the summary is empty on ctrl+y.
	MsgNothingToCopy = "Nothing to copy"

	// MsgCopied confirms that the summary reached the clipboard.
	MsgCopied = "Copied"

	// MsgLowercaseOnly is the error of the user name case check.
	MsgLowercaseOnly = "Please use only lowercase letters."

	// MsgPasswordsDoNotMatch is the error of the cross-field password check.
	MsgPasswordsDoNotMatch = "Passwords do not match"

	// MsgPasswordsMatch is the status line text while the passwords agree.
	MsgPasswordsMatch = "Passwords match"
)
