package corpusingester

import (
	"encoding/json"
	"errors"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"
)

func init() {
	err := component.RegisterPayload(&component.PayloadRegistration{
		Domain:      "corpus",
		Category:    "ingest",
		Version:     "v1",
		Description: "Corpus document ingestion request",
		Factory:     func() any { return &IngestRequest{} },
	})
	if err != nil {
		panic("failed to register IngestRequest: " + err.Error())
	}
}

// IngestRequestType is the message type for corpus ingestion requests.
var IngestRequestType = message.Type{Domain: "corpus", Category: "ingest", Version: "v1"}

// IngestRequest asks the ingester to parse and publish one corpus document.
type IngestRequest struct {
	// Path is the document path, absolute or relative to the corpus directory.
	Path string `json:"path"`

	// Force re-ingests even when the content hash is unchanged.
	Force bool `json:"force,omitempty"`
}

// Schema returns the message type for Payload interface.
func (r *IngestRequest) Schema() message.Type { return IngestRequestType }

// Validate validates the payload for Payload interface.
func (r *IngestRequest) Validate() error {
	if r.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r *IngestRequest) MarshalJSON() ([]byte, error) {
	type Alias IngestRequest
	return json.Marshal((*Alias)(r))
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *IngestRequest) UnmarshalJSON(data []byte) error {
	type Alias IngestRequest
	return json.Unmarshal(data, (*Alias)(r))
}
