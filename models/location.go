package models

import "time"

// Location is a physical site that holds recovered cards until collection.
// Locations are reference data: created and listed by staff, never deleted.
type Location struct {
	// ID is the opaque unique identifier of the location.
	ID string `json:"id"`

	// Name is the human-readable site name, e.g. a police station.
	Name string `json:"name"`

	// Address is the street address of the site.
	Address string `json:"address"`

	// Region is the administrative region the site belongs to.
	Region string `json:"region"`

	// Phone is an optional contact number for the site.
	Phone string `json:"phone,omitempty"`

	// Hours describes opening hours in free form, e.g. "Mon-Fri 8AM-5PM".
	Hours string `json:"hours,omitempty"`

	// CreatedAt is the record creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Location model.
func (l Location) TableName() string {
	return "locations"
}

// LocationCreate carries the fields an administrator supplies when
// registering a new holding site.
type LocationCreate struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Region  string `json:"region"`
	Phone   string `json:"phone,omitempty"`
	Hours   string `json:"hours,omitempty"`
}
