package model

// Artist represents a performer that can be booked at venues.  An
// artist can own any number of shows; deleting the artist removes
// them as well.  This struct corresponds to a row in the `artists`
// table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – artist name, unique by convention.
//  City / State       – free-text location.
//  Phone              – contact phone number.
//  Genres             – ordered genre labels, stored as JSON text.
//  ImageLink          – URL of the artist image.
//  FacebookLink       – URL of the artist's Facebook page.
//  Website            – URL of the artist's website.
//  SeekingVenue       – whether the artist is looking for venues.
//  SeekingDescription – free text shown when seeking a venue.
type Artist struct {
	ID                 uint64 // artists.id
	Name               string // artists.name
	City               string // artists.city
	State              string // artists.state
	Phone              string // artists.phone
	Genres             Genres // artists.genres
	ImageLink          string // artists.image_link
	FacebookLink       string // artists.facebook_link
	Website            string // artists.website
	SeekingVenue       bool   // artists.seeking_venue
	SeekingDescription string // artists.seeking_description
}

// ArtistRef is the minimal projection of an artist used by listings,
// search and choice lists.
type ArtistRef struct {
	ID   uint64 // artists.id
	Name string // artists.name
}
