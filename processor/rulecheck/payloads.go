package rulecheck

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"

	"github.com/c360studio/conlaw/rules"
)

func init() {
	err := component.RegisterPayload(&component.PayloadRegistration{
		Domain:      "ruleset",
		Category:    "check",
		Version:     "v1",
		Description: "Ruleset check request payload",
		Factory:     func() any { return &CheckRequestPayload{} },
	})
	if err != nil {
		panic("failed to register CheckRequestPayload: " + err.Error())
	}

	err = component.RegisterPayload(&component.PayloadRegistration{
		Domain:      "ruleset",
		Category:    "result",
		Version:     "v1",
		Description: "Ruleset check result payload",
		Factory:     func() any { return &CheckResultPayload{} },
	})
	if err != nil {
		panic("failed to register CheckResultPayload: " + err.Error())
	}
}

// CheckRequestType is the message type for ruleset check requests.
var CheckRequestType = message.Type{Domain: "ruleset", Category: "check", Version: "v1"}

// CheckResultType is the message type for ruleset check results.
var CheckResultType = message.Type{Domain: "ruleset", Category: "result", Version: "v1"}

// CheckRequestPayload represents a request to evaluate a record
// against the ruleset.
type CheckRequestPayload struct {
	RequestID string       `json:"request_id"`
	Record    rules.Record `json:"record"`
}

// Schema returns the message type for Payload interface.
func (p *CheckRequestPayload) Schema() message.Type { return CheckRequestType }

// Validate validates the payload for Payload interface.
func (p *CheckRequestPayload) Validate() error {
	if p.RequestID == "" {
		return errors.New("request_id is required")
	}
	if len(p.Record) == 0 {
		return errors.New("record is required")
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *CheckRequestPayload) MarshalJSON() ([]byte, error) {
	type Alias CheckRequestPayload
	return json.Marshal((*Alias)(p))
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *CheckRequestPayload) UnmarshalJSON(data []byte) error {
	type Alias CheckRequestPayload
	return json.Unmarshal(data, (*Alias)(p))
}

// RuleFailure is the wire form of a single rule failure.
type RuleFailure struct {
	RuleID   string `json:"rule_id"`
	Citation string `json:"citation,omitempty"`
	Article  string `json:"article"`
	Category string `json:"category,omitempty"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// failureFromViolation flattens a rule failure for the wire.
func failureFromViolation(v rules.Violation) RuleFailure {
	return RuleFailure{
		RuleID:   v.Rule.ID,
		Citation: v.Rule.Citation,
		Article:  string(v.Article),
		Category: string(v.Rule.Category),
		Priority: string(v.Rule.Priority),
		Message:  v.Message,
	}
}

// CheckResultPayload represents the result of a ruleset check.
type CheckResultPayload struct {
	RequestID  string        `json:"request_id"`
	RulingID   string        `json:"ruling_id,omitempty"`
	Passed     bool          `json:"passed"`
	Violations []RuleFailure `json:"violations,omitempty"`
	Warnings   []RuleFailure `json:"warnings,omitempty"`
	CheckedAt  time.Time     `json:"checked_at"`
}

// Schema returns the message type for Payload interface.
func (p *CheckResultPayload) Schema() message.Type { return CheckResultType }

// Validate validates the payload for Payload interface.
func (p *CheckResultPayload) Validate() error {
	if p.RequestID == "" {
		return errors.New("request_id is required")
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *CheckResultPayload) MarshalJSON() ([]byte, error) {
	type Alias CheckResultPayload
	return json.Marshal((*Alias)(p))
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *CheckResultPayload) UnmarshalJSON(data []byte) error {
	type Alias CheckResultPayload
	return json.Unmarshal(data, (*Alias)(p))
}
