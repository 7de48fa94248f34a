package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
)

// ErrRejected is returned when the server declined to summarize an empty
// document.
var ErrRejected = errors.New("document text is empty")

type SummaryService struct {
	Options []RequestOption
}

func NewSummaryService(opts ...RequestOption) SummaryService {
	return SummaryService{
		Options: opts,
	}
}

type SummaryRequest struct {
	Name     string
	Question string
	Text     string

	Audio [][]byte
}

type Summary struct {
	Name string `json:"documentName"`

	DocumentURL *string  `json:"pdfFileS3Uri"`
	AudioURLs   []string `json:"audioS3Uris"`
}

func (r *SummaryService) New(ctx context.Context, input SummaryRequest, opts ...RequestOption) (*Summary, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body := map[string]any{
		"documentName": input.Name,
		"questionText": input.Question,
		"documentText": input.Text,
		"audioFiles":   encodeAudio(input.Audio),
	}

	data, err := json.Marshal(body)

	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/summarize", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return nil, decodeError(resp)
	}

	var result struct {
		Summary

		Message *string `json:"message"`
		Detail  string  `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusBadRequest {
		if result.Message != nil {
			return nil, &Error{
				StatusCode: resp.StatusCode,

				Message: *result.Message,
				Detail:  result.Detail,
			}
		}

		return nil, ErrRejected
	}

	return &result.Summary, nil
}

func encodeAudio(clips [][]byte) []string {
	files := make([]string, 0, len(clips))

	for _, clip := range clips {
		files = append(files, base64.StdEncoding.EncodeToString(clip))
	}

	return files
}
