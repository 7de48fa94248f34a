package pipeline

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/adrianliechti/briefing/pkg/fault"

	"github.com/google/jsonschema-go/jsonschema"
)

type Request struct {
	DocumentName string `json:"documentName"`
	QuestionText string `json:"questionText"`
	DocumentText string `json:"documentText"`

	AudioFiles []string `json:"audioFiles,omitempty"`
}

// AudioClip is a decoded audio payload and its position in the request.
type AudioClip struct {
	Index int
	Data  []byte
}

var (
	requestSchemaOnce sync.Once
	requestSchema     *jsonschema.Resolved
	requestSchemaErr  error
)

func resolveRequestSchema() (*jsonschema.Resolved, error) {
	requestSchemaOnce.Do(func() {
		schema, err := jsonschema.For[Request](nil)

		if err != nil {
			requestSchemaErr = fmt.Errorf("infer request schema: %w", err)
			return
		}

		// unknown fields are ignored
		schema.AdditionalProperties = nil

		requestSchema, requestSchemaErr = schema.Resolve(nil)
	})

	return requestSchema, requestSchemaErr
}

// ParseRequest decodes and validates an inbound payload. Every problem found
// is reported in the returned validation error.
func ParseRequest(data []byte) (*Request, error) {
	schema, err := resolveRequestSchema()

	if err != nil {
		return nil, err
	}

	var payload map[string]any

	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fault.Validation("parse request", "body must be a JSON object: "+err.Error())
	}

	if payload == nil {
		return nil, fault.Validation("parse request", "body must be a JSON object")
	}

	if v, ok := payload["audioFiles"]; ok && v == nil {
		delete(payload, "audioFiles")
	}

	if err := schema.Validate(payload); err != nil {
		return nil, fault.Validation("parse request", err.Error())
	}

	normalized, err := json.Marshal(payload)

	if err != nil {
		return nil, fault.Validation("parse request", err.Error())
	}

	var req Request

	dec := json.NewDecoder(bytes.NewReader(normalized))

	if err := dec.Decode(&req); err != nil {
		return nil, fault.Validation("parse request", err.Error())
	}

	if problems := req.validate(); len(problems) > 0 {
		return nil, fault.Validation("parse request", problems...)
	}

	return &req, nil
}

func (r *Request) validate() []string {
	var problems []string

	name := strings.TrimSpace(r.DocumentName)

	if name == "" {
		problems = append(problems, "documentName must not be empty")
	}

	if strings.ContainsAny(r.DocumentName, `/\`) {
		problems = append(problems, "documentName must not contain path separators")
	}

	if name == "." || name == ".." {
		problems = append(problems, "documentName must not be a relative path")
	}

	return problems
}

func decodeAudio(files []string) ([]AudioClip, error) {
	clips := make([]AudioClip, 0, len(files))

	for i, file := range files {
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(file))

		if err != nil {
			return nil, fault.Dependency("decode audio", fmt.Errorf("audioFiles[%d]: %w", i, err))
		}

		clips = append(clips, AudioClip{
			Index: i,
			Data:  data,
		})
	}

	return clips, nil
}
