package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edudesk/internal/education"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Token: "tok-123"})
}

func TestGetMyEducation(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/students/me/education", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode([]education.Record{{ID: "e1"}, {ID: "e2"}})
	})

	records, err := client.GetMyEducation(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "e1", records[0].ID)
}

func TestGetMyEducation_EmptyList(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	records, err := client.GetMyEducation(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAddEducation_SendsTransformedPayload(t *testing.T) {
	var got education.Payload
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(education.Record{ID: "e9", EducationDetails: got.EducationDetails})
	})

	payload := education.NewPayload(education.FormData{Degree: "BTech", Institution: "MIT", Year: "2024"})
	record, err := client.AddEducation(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, "e9", record.ID)
	assert.Equal(t, "BTech", got.EducationDetails.Degree.CurrentValue)
	assert.Nil(t, got.EducationDetails.Degree.LastVerifiedValue)
	assert.Equal(t, "", got.EducationDetails.GPA.CurrentValue)
}

func TestUpdateEducation_PutsByID(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/students/me/education/e1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(education.Record{ID: "e1"})
	})

	record, err := client.UpdateEducation(context.Background(), "e1", education.Payload{})
	require.NoError(t, err)
	assert.Equal(t, "e1", record.ID)
}

func TestDeleteEducation(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/students/me/education/e1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteEducation(context.Background(), "e1"))
}

func TestErrorMapping(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"not your record"}`))
	})

	err := client.DeleteEducation(context.Background(), "e1")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "not your record", apiErr.Message)
}

func TestErrorMapping_NonJSONBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream fell over"))
	})

	_, err := client.GetMyEducation(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Message)
}

func TestSignIn(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.edu", creds["email"])

		_ = json.NewEncoder(w).Encode(SignInResult{
			AccessToken: "tok-xyz",
			Student:     Student{ID: "s1", Email: "a@b.edu", Role: "student"},
		})
	})

	result, err := client.SignIn(context.Background(), "a@b.edu", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", result.AccessToken)
	assert.Equal(t, "s1", result.Student.ID)
}

func TestHealth(t *testing.T) {
	up := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, up.Health(context.Background()))

	down := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	assert.False(t, down.Health(context.Background()))
}
