package application

import "errors"

// Domain error taxonomy. Every gate failure is one of these sentinels so
// callers can always tell "resource absent" from "empty success" and
// "not signed in" from "not allowed". Store connectivity failures
// propagate as-is and are deliberately not part of this set.
var (
	// ErrUnauthenticated means the bearer token matches no session at all.
	ErrUnauthenticated = errors.New("user has not signed in")
	// ErrSessionClosed means the token resolved but the session was signed
	// out (or, when expiry enforcement is on, its validity window elapsed).
	ErrSessionClosed = errors.New("user is signed out")
	// ErrNotSignedIn is the sign-out variant of the two above: the token
	// does not resolve to an open session.
	ErrNotSignedIn = errors.New("user is not signed in")
	// ErrForbidden means the caller is authenticated but lacks ownership
	// or the admin role for the targeted resource.
	ErrForbidden = errors.New("operation not permitted for this user")

	ErrQuestionNotFound = errors.New("question does not exist")
	ErrAnswerNotFound   = errors.New("answer does not exist")
	ErrUserNotFound     = errors.New("user does not exist")

	ErrDuplicateUserName = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")

	// Sign-in failures are surfaced as two distinct sub-kinds.
	ErrUnknownUserName = errors.New("username does not exist")
	ErrWrongPassword   = errors.New("password failed")
)
