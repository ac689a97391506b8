package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/model"
)

var testNow = time.Date(2026, time.June, 13, 20, 0, 0, 0, time.UTC)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewFormValidator()
	return e
}

func newVenueHandler(venues *fakeVenueStore, artists *fakeArtistStore, shows *fakeShowStore) *VenueHandler {
	h := NewVenueHandler(venues, artists, shows)
	h.Now = func() time.Time { return testNow }
	return h
}

func getRequest(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func formRequest(e *echo.Echo, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListVenues_GroupsByCityAndState(t *testing.T) {
	venues := &fakeVenueStore{venues: []*model.Venue{
		{ID: 1, Name: "The Musical Hop", City: "Portland", State: "OR"},
		{ID: 2, Name: "Park Square Live Music & Coffee", City: "Portland", State: "OR"},
		{ID: 3, Name: "The Dueling Pianos Bar", City: "Portland", State: "ME"},
	}}
	shows := &fakeShowStore{shows: []model.Show{
		{ID: 1, VenueID: 1, ArtistID: 1, StartTime: testNow.Add(24 * time.Hour)},
		{ID: 2, VenueID: 1, ArtistID: 1, StartTime: testNow.Add(-24 * time.Hour)},
	}}
	h := newVenueHandler(venues, &fakeArtistStore{}, shows)

	e := newTestEcho()
	c, rec := getRequest(e, "/venues")
	require.NoError(t, h.ListVenues(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Areas []VenueArea `json:"areas"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Areas, 2)

	or := body.Areas[0]
	assert.Equal(t, "Portland", or.City)
	assert.Equal(t, "OR", or.State)
	require.Len(t, or.Venues, 2)
	assert.Equal(t, 1, or.Venues[0].NumUpcomingShows) // only the future show counts
	assert.Equal(t, 0, or.Venues[1].NumUpcomingShows)

	me := body.Areas[1]
	assert.Equal(t, "ME", me.State)
	require.Len(t, me.Venues, 1)
	assert.Equal(t, "The Dueling Pianos Bar", me.Venues[0].Name)
}

func TestSearchVenues_CaseInsensitiveSubstring(t *testing.T) {
	venues := &fakeVenueStore{venues: []*model.Venue{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 2, Name: "Park Square Live Music & Coffee"},
	}}
	h := newVenueHandler(venues, &fakeArtistStore{}, &fakeShowStore{})

	e := newTestEcho()
	c, rec := formRequest(e, http.MethodPost, "/venues/search", url.Values{"search_term": {"hop"}})
	require.NoError(t, h.SearchVenues(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var result SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "The Musical Hop", result.Data[0].Name)
}

func TestSearchVenues_EmptyTermMatchesEverything(t *testing.T) {
	venues := &fakeVenueStore{venues: []*model.Venue{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 2, Name: "Park Square Live Music & Coffee"},
	}}
	h := newVenueHandler(venues, &fakeArtistStore{}, &fakeShowStore{})

	e := newTestEcho()
	c, rec := formRequest(e, http.MethodPost, "/venues/search", url.Values{"search_term": {""}})
	require.NoError(t, h.SearchVenues(c))

	var result SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Count)
}

func TestGetVenue_MissingIDRedirectsToBrowse(t *testing.T) {
	h := newVenueHandler(&fakeVenueStore{}, &fakeArtistStore{}, &fakeShowStore{})

	e := newTestEcho()
	c, rec := getRequest(e, "/venues/42")
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, h.GetVenue(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/venues", rec.Header().Get(echo.HeaderLocation))
}

func TestGetVenue_DetailClassifiesShows(t *testing.T) {
	venues := &fakeVenueStore{venues: []*model.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", SeekingTalent: true},
	}}
	artists := &fakeArtistStore{artists: []*model.Artist{
		{ID: 7, Name: "Guns N Petals", ImageLink: "https://example.com/guns.jpg"},
	}}
	shows := &fakeShowStore{shows: []model.Show{
		{ID: 1, VenueID: 1, ArtistID: 7, StartTime: testNow.Add(-time.Hour)},
		{ID: 2, VenueID: 1, ArtistID: 7, StartTime: testNow},                // exactly now: neither bucket
		{ID: 3, VenueID: 1, ArtistID: 7, StartTime: testNow.Add(time.Hour)},
	}}
	h := newVenueHandler(venues, artists, shows)

	e := newTestEcho()
	c, rec := getRequest(e, "/venues/1")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.GetVenue(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var detail VenueDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "The Musical Hop", detail.Name)
	assert.True(t, detail.SeekingTalent)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, "Guns N Petals", detail.UpcomingShows[0].ArtistName)
	assert.Equal(t, "https://example.com/guns.jpg", detail.UpcomingShows[0].ArtistImageLink)
}

func TestCreateVenue_Success(t *testing.T) {
	venues := &fakeVenueStore{}
	h := newVenueHandler(venues, &fakeArtistStore{}, &fakeShowStore{})

	e := newTestEcho()
	form := url.Values{
		"name":   {"The Musical Hop"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Jazz", "Reggae"},
	}
	c, rec := formRequest(e, http.MethodPost, "/venues/create", form)
	require.NoError(t, h.CreateVenue(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Venue The Musical Hop was successfully listed!")
	require.Len(t, venues.venues, 1)
	assert.Equal(t, model.Genres{"Jazz", "Reggae"}, venues.venues[0].Genres)
}

func TestCreateVenue_PersistenceFailureNamesVenue(t *testing.T) {
	venues := &fakeVenueStore{createErr: assert.AnError}
	h := newVenueHandler(venues, &fakeArtistStore{}, &fakeShowStore{})

	e := newTestEcho()
	c, rec := formRequest(e, http.MethodPost, "/venues/create", url.Values{"name": {"The Musical Hop"}})
	require.NoError(t, h.CreateVenue(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An error occurred. Venue The Musical Hop could not be listed.")
	assert.Empty(t, venues.venues)
}

func TestUpdateVenue_FullReplaceNotMerge(t *testing.T) {
	venues := &fakeVenueStore{venues: []*model.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Phone: "123-123-1234"},
	}, nextID: 1}
	h := newVenueHandler(venues, &fakeArtistStore{}, &fakeShowStore{})

	e := newTestEcho()
	// phone omitted from the form: full replace clears it
	c, rec := formRequest(e, http.MethodPost, "/venues/1/edit", url.Values{
		"name": {"The Musical Hop"},
		"city": {"Oakland"},
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateVenue(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Oakland", venues.venues[0].City)
	assert.Empty(t, venues.venues[0].State)
	assert.Empty(t, venues.venues[0].Phone)
}

func TestDeleteVenue_ReturnsConfirmationPayload(t *testing.T) {
	venues := &fakeVenueStore{venues: []*model.Venue{{ID: 5, Name: "The Dueling Pianos Bar"}}, nextID: 5}
	h := newVenueHandler(venues, &fakeArtistStore{}, &fakeShowStore{})

	e := newTestEcho()
	c, rec := formRequest(e, http.MethodDelete, "/venues/5", nil)
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.DeleteVenue(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		ID       uint64 `json:"id"`
		Name     string `json:"name"`
		Response bool   `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint64(5), body.ID)
	assert.Equal(t, "The Dueling Pianos Bar", body.Name)
	assert.True(t, body.Response)
	assert.Equal(t, []uint64{5}, venues.deleted)
}

func TestDeleteVenue_Missing404(t *testing.T) {
	h := newVenueHandler(&fakeVenueStore{}, &fakeArtistStore{}, &fakeShowStore{})

	e := newTestEcho()
	c, rec := formRequest(e, http.MethodDelete, "/venues/9", nil)
	c.SetParamNames("id")
	c.SetParamValues("9")
	require.NoError(t, h.DeleteVenue(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteVenue_FailureReportsResponseFalse(t *testing.T) {
	venues := &fakeVenueStore{venues: []*model.Venue{{ID: 5, Name: "The Dueling Pianos Bar"}}, nextID: 5, deleteErr: assert.AnError}
	h := newVenueHandler(venues, &fakeArtistStore{}, &fakeShowStore{})

	e := newTestEcho()
	c, rec := formRequest(e, http.MethodDelete, "/venues/5", nil)
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.DeleteVenue(c))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body struct {
		Response bool `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Response)
}
