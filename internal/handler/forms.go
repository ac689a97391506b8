// This file defines the validated-input boundary: form payloads bound
// from requests and the Echo validator wrapper around
// go-playground/validator. Handlers only ever see payloads that passed
// validation; anything else is rejected with 400 before the handler
// body runs its persistence logic.
package handler

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// startTimeForm is the wire format for show start times, matching the
// DATETIME column format.
const startTimeForm = "2006-01-02 15:04:05"

// VenueForm carries the fields of a venue creation or edit submission.
// Only the name is required; every other field may be left empty and
// is written through as-is (absent fields become empty values on
// update, full replace not merge).
type VenueForm struct {
	Name               string   `form:"name" json:"name" validate:"required"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Address            string   `form:"address" json:"address"`
	Phone              string   `form:"phone" json:"phone"`
	Genres             []string `form:"genres" json:"genres"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	Website            string   `form:"website" json:"website"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// ArtistForm carries the fields of an artist creation or edit submission.
type ArtistForm struct {
	Name               string   `form:"name" json:"name" validate:"required"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Phone              string   `form:"phone" json:"phone"`
	Genres             []string `form:"genres" json:"genres"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	Website            string   `form:"website" json:"website"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// ShowForm carries the fields of a show creation submission. Referential
// integrity of the two ids is left to the foreign keys at commit time.
type ShowForm struct {
	ArtistID  uint64 `form:"artist_id" json:"artist_id" validate:"required"`
	VenueID   uint64 `form:"venue_id" json:"venue_id" validate:"required"`
	StartTime string `form:"start_time" json:"start_time" validate:"required"`
}

// ParsedStartTime converts the submitted start time into a time.Time.
func (f ShowForm) ParsedStartTime() (time.Time, error) {
	return time.Parse(startTimeForm, f.StartTime)
}

// FormValidator adapts go-playground/validator to Echo's Validator
// interface. Register it on the Echo instance at startup.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator constructs the validator used by all form handlers.
func NewFormValidator() *FormValidator {
	return &FormValidator{validate: validator.New()}
}

// Validate checks struct tags and maps violations to a 400 response.
func (v *FormValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
