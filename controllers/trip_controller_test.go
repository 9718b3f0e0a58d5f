package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/travelbuddy/backend/database"
	"github.com/travelbuddy/backend/models"
)

func TestCreateTripValidation(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "Alice", "alice@example.com")

	// Malformed date string
	rec := doRequest(t, router, http.MethodPost, "/api/trips", token, map[string]interface{}{
		"destination": "Goa",
		"startDate":   "June 1st",
		"endDate":     "2025-06-10",
		"budget":      15000,
		"description": "Beach week, looking for two buddies",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Description too short
	rec = doRequest(t, router, http.MethodPost, "/api/trips", token, map[string]interface{}{
		"destination": "Goa",
		"startDate":   "2025-06-01",
		"endDate":     "2025-06-10",
		"budget":      15000,
		"description": "short",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTripsFeedShowsOwner(t *testing.T) {
	router := setupTest(t)
	owner, _ := createUser(t, "Alice", "alice@example.com")
	createTrip(t, owner)

	rec := doRequest(t, router, http.MethodGet, "/api/trips", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	trips := body["trips"].([]interface{})
	require.Len(t, trips, 1)

	user := trips[0].(map[string]interface{})["user"].(map[string]interface{})
	require.Equal(t, "Alice", user["name"])
	require.Equal(t, "alice@example.com", user["email"])
	require.NotContains(t, user, "password")
}

func TestGetTripDetail(t *testing.T) {
	router := setupTest(t)
	owner, _ := createUser(t, "Alice", "alice@example.com")
	bob, _ := createUser(t, "Bob", "bob@example.com")
	trip := createTrip(t, owner)

	request := models.JoinRequest{UserID: bob.ID, TripID: trip.ID, Status: models.RequestStatusAccepted}
	require.NoError(t, database.DB.Create(&request).Error)

	rec := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/trips/%d", trip.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Goa", body["destination"])

	// Request summaries carry only the requester id and status
	requests := body["join_requests"].([]interface{})
	require.Len(t, requests, 1)
	summary := requests[0].(map[string]interface{})
	require.EqualValues(t, bob.ID, summary["user_id"])
	require.Equal(t, "accepted", summary["status"])
	require.NotContains(t, summary, "user")
}

func TestGetTripNotFound(t *testing.T) {
	router := setupTest(t)

	rec := doRequest(t, router, http.MethodGet, "/api/trips/99999", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/trips/abc", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTripWithNoRequestsReportsEmptyLists(t *testing.T) {
	router := setupTest(t)
	owner, ownerToken := createUser(t, "Alice", "alice@example.com")
	trip := createTrip(t, owner)

	rec := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/trips/%d", trip.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody(t, rec)["join_requests"])

	rec = doRequest(t, router, http.MethodGet, "/api/trips/user/me", ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	trips := decodeBody(t, rec)["trips"].([]interface{})
	require.Len(t, trips, 1)
	require.Empty(t, trips[0].(map[string]interface{})["join_requests"])
}

func TestDeleteTripCascadesRequests(t *testing.T) {
	router := setupTest(t)
	owner, ownerToken := createUser(t, "Alice", "alice@example.com")
	bob, _ := createUser(t, "Bob", "bob@example.com")
	trip := createTrip(t, owner)

	request := models.JoinRequest{UserID: bob.ID, TripID: trip.ID, Status: models.RequestStatusPending}
	require.NoError(t, database.DB.Create(&request).Error)

	rec := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/trips/%d", trip.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	database.DB.Model(&models.JoinRequest{}).Where("trip_id = ?", trip.ID).Count(&count)
	require.EqualValues(t, 0, count)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/trips/%d", trip.ID), "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTripOnlyOwner(t *testing.T) {
	router := setupTest(t)
	owner, _ := createUser(t, "Alice", "alice@example.com")
	_, bobToken := createUser(t, "Bob", "bob@example.com")
	trip := createTrip(t, owner)

	rec := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/trips/%d", trip.ID), bobToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	var count int64
	database.DB.Model(&models.Trip{}).Count(&count)
	require.EqualValues(t, 1, count)
}
