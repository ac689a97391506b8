package model

// Venue represents a place that hosts shows.  A venue can own any
// number of shows; deleting the venue removes them as well.  This
// struct corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – venue name, unique by convention.
//  City / State       – free-text location used for grouped listings.
//  Address            – street address.
//  Phone              – contact phone number.
//  Genres             – ordered genre labels, stored as JSON text.
//  ImageLink          – URL of the venue image.
//  FacebookLink       – URL of the venue's Facebook page.
//  Website            – URL of the venue's website.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – free text shown when seeking talent.
type Venue struct {
	ID                 uint64 // venues.id
	Name               string // venues.name
	City               string // venues.city
	State              string // venues.state
	Address            string // venues.address
	Phone              string // venues.phone
	Genres             Genres // venues.genres
	ImageLink          string // venues.image_link
	FacebookLink       string // venues.facebook_link
	Website            string // venues.website
	SeekingTalent      bool   // venues.seeking_talent
	SeekingDescription string // venues.seeking_description
}

// VenueRef is the minimal projection of a venue used by listings,
// search and choice lists.  Only ID and Name are selected so the
// full row does not have to be loaded.
type VenueRef struct {
	ID   uint64 // venues.id
	Name string // venues.name
}
