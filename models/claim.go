package models

import "time"

// ClaimStatus is the lifecycle state of a claim.
//
// PENDING is the initial state. COLLECTED and REJECTED are terminal.
// VERIFIED is modeled for a future proof-of-contact step and is not produced
// by the current flow.
type ClaimStatus string

const (
	ClaimStatusPending   ClaimStatus = "PENDING"
	ClaimStatusVerified  ClaimStatus = "VERIFIED"
	ClaimStatusCollected ClaimStatus = "COLLECTED"
	ClaimStatusRejected  ClaimStatus = "REJECTED"
)

// Valid reports whether s is a known claim status.
func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusVerified, ClaimStatusCollected, ClaimStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s is a final state that admits no further
// transitions.
func (s ClaimStatus) Terminal() bool {
	return s == ClaimStatusCollected || s == ClaimStatusRejected
}

// Claim is a citizen's assertion of ownership over a specific card.
//
// A claim may only be opened against a card that is AVAILABLE at creation
// time. Collection finalizes both the claim and the card in one transaction.
type Claim struct {
	// ID is the opaque unique identifier of the claim.
	ID string `json:"id"`

	// CardID references the claimed card.
	CardID string `json:"cardId"`

	// Card is populated on staff reads that join the cards table.
	Card *Card `json:"card,omitempty"`

	// ContactEmail and ContactPhone are the claimant's contact channels.
	// At least one is always present.
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`

	// ReferenceCode is the short human-shareable code handed to the
	// claimant. Collision-tolerant; not globally unique.
	ReferenceCode string `json:"referenceCode"`

	// OTPCode is the one-time proof-of-contact code. It is delivered out
	// of band and never serialized in API responses.
	OTPCode string `json:"-"`

	// OTPExpiresAt bounds the validity of OTPCode. Expiry is evaluated
	// lazily on read; there is no background sweep.
	OTPExpiresAt time.Time `json:"otpExpiresAt"`

	// Status is the claim's lifecycle state.
	Status ClaimStatus `json:"status"`

	// Notes holds optional staff remarks recorded while handling the claim.
	Notes string `json:"notes,omitempty"`

	// HandledByID references the staff member who finalized the claim.
	// Always set when Status is COLLECTED.
	HandledByID string `json:"handledById,omitempty"`

	// HandledBy is populated on staff reads that join the users table.
	HandledBy *User `json:"handledBy,omitempty"`

	// CreatedAt is the claim creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Claim model.
func (c Claim) TableName() string {
	return "claims"
}

// OTPExpired reports whether the claim's one-time code has expired as of now.
func (c Claim) OTPExpired(now time.Time) bool {
	return now.After(c.OTPExpiresAt)
}

// ClaimRequest is the public payload opening a claim against a card.
type ClaimRequest struct {
	CardID       string `json:"cardId"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

// ClaimReceipt is returned to the claimant after a claim is opened.
//
// OTPSent reports that a one-time code was generated and handed to the
// delivery collaborator; it is not an acknowledgement of delivery.
type ClaimReceipt struct {
	ID            string `json:"id"`
	ReferenceCode string `json:"referenceCode"`
	OTPSent       bool   `json:"otpSent"`
}

// ClaimUpdate carries a staff decision on a claim.
type ClaimUpdate struct {
	Status ClaimStatus `json:"status"`
	Notes  *string     `json:"notes,omitempty"`
}
