package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "Alice", "alice@example.com")

	rec := doRequest(t, router, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Alice", body["name"])
	require.Equal(t, "alice@example.com", body["email"])
	require.NotContains(t, body, "password")
}

func TestUpdateProfile(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "Alice", "alice@example.com")

	rec := doRequest(t, router, http.MethodPut, "/api/users/profile", token, map[string]interface{}{
		"bio":       "Mountains over beaches",
		"location":  "Lisbon",
		"interests": []string{"hiking", "food"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/users/profile", token, nil)
	body := decodeBody(t, rec)
	require.Equal(t, "Mountains over beaches", body["bio"])
	require.Equal(t, "Lisbon", body["location"])
	require.Len(t, body["interests"], 2)
}

func TestUpdateProfileValidation(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "Alice", "alice@example.com")

	rec := doRequest(t, router, http.MethodPut, "/api/users/profile", token, map[string]interface{}{
		"bio": strings.Repeat("x", 501),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfileKeepsLogin(t *testing.T) {
	router := setupTest(t)
	_, token := createUser(t, "Alice", "alice@example.com")

	rec := doRequest(t, router, http.MethodPut, "/api/users/profile", token,
		map[string]interface{}{"bio": "Still me"})
	require.Equal(t, http.StatusOK, rec.Code)

	// Saving the profile must not corrupt the stored password hash
	rec = doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}
