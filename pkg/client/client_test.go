package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adrianliechti/briefing/pkg/client"

	"github.com/stretchr/testify/require"
)

func TestSummariesNew(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/summarize", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		require.Equal(t, "report", body["documentName"])
		require.Equal(t, []any{"aGVsbG8="}, body["audioFiles"])

		w.Write([]byte(`{"pdfFileS3Uri":"https://example.com/s/report.pdf?sig","audioS3Uris":["https://example.com/s/report_audio_0.webm?sig"],"documentName":"report"}`))
	}))

	defer server.Close()

	c := client.New(server.URL)

	summary, err := c.Summaries.New(context.Background(), client.SummaryRequest{
		Name:     "report",
		Question: "What happened?",
		Text:     "Item A failed.",

		Audio: [][]byte{[]byte("hello")},
	})

	require.NoError(t, err)

	require.Equal(t, "report", summary.Name)
	require.Equal(t, "https://example.com/s/report.pdf?sig", *summary.DocumentURL)
	require.Equal(t, []string{"https://example.com/s/report_audio_0.webm?sig"}, summary.AudioURLs)
}

func TestSummariesRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"pdfFileS3Uri":null,"audioS3Uris":null,"documentName":"report"}`))
	}))

	defer server.Close()

	c := client.New(server.URL)

	_, err := c.Summaries.New(context.Background(), client.SummaryRequest{Name: "report"})
	require.ErrorIs(t, err, client.ErrRejected)
}

func TestSummariesFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Error generating document","error":"invoke model: context deadline exceeded"}`))
	}))

	defer server.Close()

	c := client.New(server.URL)

	_, err := c.Summaries.New(context.Background(), client.SummaryRequest{Name: "report", Text: "text"})

	var cerr *client.Error
	require.ErrorAs(t, err, &cerr)

	require.Equal(t, http.StatusInternalServerError, cerr.StatusCode)
	require.Equal(t, "Error generating document: invoke model: context deadline exceeded", cerr.Error())
}

func TestCredentialsGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/credentials", r.URL.Path)

		w.Write([]byte(`{"AccessKeyId":"ASIA123","SecretAccessKey":"secret","SessionToken":"token","Expiration":"2024-05-01T13:00:00Z","Region":"us-east-1"}`))
	}))

	defer server.Close()

	c := client.New(server.URL + "/")

	creds, err := c.Credentials.Get(context.Background())
	require.NoError(t, err)

	require.Equal(t, "ASIA123", creds.AccessKeyID)
	require.Equal(t, time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC), creds.Expiration)
	require.Equal(t, "us-east-1", creds.Region)
}
