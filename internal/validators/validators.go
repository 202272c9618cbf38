package validators

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/idfinder-gh/idfinder/models"
)

// emailPattern is deliberately loose: one @ with something on both sides and
// a dot in the domain. Full RFC 5322 parsing buys nothing here.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	minPhoneLength    = 7
	minIDNumberLength = 3
)

// ValidateLoginRequest checks the staff login payload.
func ValidateLoginRequest(req models.LoginRequest) error {
	e := newError()

	if strings.TrimSpace(req.Email) == "" {
		e.add("email", "email is required")
	}
	if req.Password == "" {
		e.add("password", "password is required")
	}

	return e.orNil()
}

// ValidateClaimRequest checks the public claim-opening payload. At least one
// contact channel must be supplied so the claim codes can be delivered.
func ValidateClaimRequest(req models.ClaimRequest) error {
	e := newError()

	if strings.TrimSpace(req.CardID) == "" {
		e.add("cardId", "cardId is required")
	}

	email := strings.TrimSpace(req.ContactEmail)
	phone := strings.TrimSpace(req.ContactPhone)

	if email == "" && phone == "" {
		e.add("contact", "at least one of contactEmail or contactPhone is required")
	}
	if email != "" && !emailPattern.MatchString(email) {
		e.add("contactEmail", "contactEmail must be a valid email address")
	}
	if phone != "" && len(phone) < minPhoneLength {
		e.add("contactPhone", "contactPhone must be at least 7 characters")
	}

	return e.orNil()
}

// ValidateCardCreate checks the staff card-registration payload.
func ValidateCardCreate(in models.CardCreate) error {
	e := newError()

	if !in.CardType.Valid() {
		e.add("cardType", "cardType must be one of GHANA_CARD, DRIVERS_LICENSE, VOTER_ID, NHIS_CARD, PASSPORT")
	}
	if strings.TrimSpace(in.FullID) == "" {
		e.add("fullId", "fullId is required")
	}
	if strings.TrimSpace(in.FirstName) == "" {
		e.add("firstName", "firstName is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		e.add("lastName", "lastName is required")
	}
	if in.DateOfBirth.IsZero() {
		e.add("dob", "dob is required")
	} else if in.DateOfBirth.After(time.Now()) {
		e.add("dob", "dob cannot be in the future")
	}
	if strings.TrimSpace(in.HoldingLocationID) == "" {
		e.add("holdingLocationId", "holdingLocationId is required")
	}

	return e.orNil()
}

// ValidateCardUpdate checks a partial staff card edit. Absent fields are
// fine; present fields must hold acceptable values.
func ValidateCardUpdate(update models.CardUpdate) error {
	e := newError()

	if update.Empty() {
		e.add("body", "at least one field must be provided")
		return e.orNil()
	}

	if update.Status != nil && !update.Status.Valid() {
		e.add("status", "status must be AVAILABLE or CLAIMED")
	}
	if update.FirstName != nil && strings.TrimSpace(*update.FirstName) == "" {
		e.add("firstName", "firstName cannot be empty")
	}
	if update.LastName != nil && strings.TrimSpace(*update.LastName) == "" {
		e.add("lastName", "lastName cannot be empty")
	}
	if update.DateOfBirth != nil && update.DateOfBirth.IsZero() {
		e.add("dob", "dob cannot be empty")
	}
	if update.HoldingLocationID != nil && strings.TrimSpace(*update.HoldingLocationID) == "" {
		e.add("holdingLocationId", "holdingLocationId cannot be empty")
	}

	return e.orNil()
}

// ValidateClaimUpdate checks a staff claim decision. Only the terminal
// decisions are accepted over the API; VERIFIED is reserved for the contact
// verification step.
func ValidateClaimUpdate(update models.ClaimUpdate) error {
	e := newError()

	switch update.Status {
	case models.ClaimStatusCollected, models.ClaimStatusRejected:
	case "":
		e.add("status", "status is required")
	default:
		e.add("status", "status must be COLLECTED or REJECTED")
	}

	return e.orNil()
}

// ValidateLocationCreate checks the admin location-registration payload.
func ValidateLocationCreate(in models.LocationCreate) error {
	e := newError()

	if strings.TrimSpace(in.Name) == "" {
		e.add("name", "name is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		e.add("address", "address is required")
	}
	if strings.TrimSpace(in.Region) == "" {
		e.add("region", "region is required")
	}

	return e.orNil()
}

// ValidateSearchByID checks the public by-id search input.
func ValidateSearchByID(q models.SearchByIDQuery) error {
	e := newError()

	idNumber := strings.TrimSpace(q.IDNumber)
	if idNumber == "" {
		e.add("idNumber", "idNumber is required")
	} else if utf8.RuneCountInString(idNumber) < minIDNumberLength {
		e.add("idNumber", "idNumber must be at least 3 characters")
	}
	if !q.CardType.Valid() {
		e.add("cardType", "cardType must be one of GHANA_CARD, DRIVERS_LICENSE, VOTER_ID, NHIS_CARD, PASSPORT")
	}

	return e.orNil()
}

// ValidateSearchByPerson checks the public by-person search input.
func ValidateSearchByPerson(q models.SearchByPersonQuery) error {
	e := newError()

	if strings.TrimSpace(q.FirstName) == "" {
		e.add("firstName", "firstName is required")
	}
	if strings.TrimSpace(q.LastName) == "" {
		e.add("lastName", "lastName is required")
	}
	if q.DOBYear < 1900 || q.DOBYear > time.Now().Year() {
		e.add("dobYear", "dobYear must be a plausible birth year")
	}
	if q.DOBMonth < 0 || q.DOBMonth > 12 {
		e.add("dobMonth", "dobMonth must be between 1 and 12")
	}

	return e.orNil()
}
