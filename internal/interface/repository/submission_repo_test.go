package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormSubmissionRepository_Submit(t *testing.T) {
	var received url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		received = r.PostForm
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	repo := NewFormSubmissionRepository(srv.URL, time.Second, nil, logger.NewNopLogger())
	err := repo.Submit(context.Background(), entity.FlightSubmission{
		PassengerName:  "SMITH/JOHN",
		FlightNumber:   "AA1234",
		From:           "JFK",
		To:             "LHR",
		CompanyPrivate: "company",
	})
	require.NoError(t, err)

	assert.Equal(t, "SMITH/JOHN", received.Get("passengerName"))
	assert.Equal(t, "AA1234", received.Get("flightNumber"))
	assert.Equal(t, "company", received.Get("companyPrivate"))
	_, hasComment := received["comment"]
	assert.False(t, hasComment)
}

func TestFormSubmissionRepository_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "script error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := NewFormSubmissionRepository(srv.URL, time.Second, nil, logger.NewNopLogger())
	err := repo.Submit(context.Background(), entity.FlightSubmission{PassengerName: "X"})
	assert.ErrorContains(t, err, "status 500")
	assert.ErrorContains(t, err, "script error")
}

func TestFormSubmissionRepository_NotConfigured(t *testing.T) {
	repo := NewFormSubmissionRepository("", time.Second, nil, logger.NewNopLogger())
	err := repo.Submit(context.Background(), entity.FlightSubmission{})
	assert.ErrorIs(t, err, repository.ErrSubmitEndpointNotConfigured)
}
