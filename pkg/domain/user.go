package domain

// UserID uniquely identifies a user within the system. It is the subject
// claim of a verified credential and is treated as an opaque string for all
// ownership comparisons; the identity provider controls its format.
type UserID string
