// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollxml

import (
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/votesys/models"
)

func TestValidateConformingDocument(t *testing.T) {
	schema := NewSchema()

	data, err := Encode(models.Poll{
		ID:       5,
		Owner:    "alice",
		Question: "Oy testi?",
		Options: []models.Option{
			{ID: 10, Text: "X", Votes: 0},
			{ID: 20, Text: "Y", Votes: 3},
		},
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if err := schema.Validate(data); err != nil {
		t.Errorf("Expected valid document, got: %v", err)
	}
}

func TestValidateViolations(t *testing.T) {
	schema := NewSchema()

	tests := []struct {
		name   string
		doc    string
		reason string
	}{
		{
			name:   "malformed xml",
			doc:    `<poll><broken></poll>`,
			reason: "well-formed",
		},
		{
			name:   "wrong root element",
			doc:    `<survey id="1"><question>Q?</question><options><option id="1"><text>A</text><votes>0</votes></option></options></survey>`,
			reason: "root element",
		},
		{
			name:   "missing poll id",
			doc:    `<poll><question>Q?</question><options><option id="1"><text>A</text><votes>0</votes></option></options></poll>`,
			reason: "missing the id",
		},
		{
			name:   "non-numeric poll id",
			doc:    `<poll id="abc"><question>Q?</question><options><option id="1"><text>A</text><votes>0</votes></option></options></poll>`,
			reason: "not numeric",
		},
		{
			name:   "unknown attribute",
			doc:    `<poll id="1" color="red"><question>Q?</question><options><option id="1"><text>A</text><votes>0</votes></option></options></poll>`,
			reason: "unexpected attribute",
		},
		{
			name:   "missing question",
			doc:    `<poll id="1"><options><option id="1"><text>A</text><votes>0</votes></option></options></poll>`,
			reason: "missing <question>",
		},
		{
			name:   "missing options wrapper",
			doc:    `<poll id="1"><question>Q?</question></poll>`,
			reason: "missing <options>",
		},
		{
			name:   "empty option list",
			doc:    `<poll id="1"><question>Q?</question><options></options></poll>`,
			reason: "at least one",
		},
		{
			name:   "duplicate option ids",
			doc:    `<poll id="1"><question>Q?</question><options><option id="7"><text>A</text><votes>0</votes></option><option id="7"><text>B</text><votes>0</votes></option></options></poll>`,
			reason: "duplicate option id",
		},
		{
			name:   "non-numeric option id",
			doc:    `<poll id="1"><question>Q?</question><options><option id="x"><text>A</text><votes>0</votes></option></options></poll>`,
			reason: "not numeric",
		},
		{
			name:   "negative votes",
			doc:    `<poll id="1"><question>Q?</question><options><option id="1"><text>A</text><votes>-1</votes></option></options></poll>`,
			reason: "non-negative",
		},
		{
			name:   "garbled votes",
			doc:    `<poll id="1"><question>Q?</question><options><option id="1"><text>A</text><votes>many</votes></option></options></poll>`,
			reason: "not an integer",
		},
		{
			name:   "missing votes element",
			doc:    `<poll id="1"><question>Q?</question><options><option id="1"><text>A</text></option></options></poll>`,
			reason: "missing <votes>",
		},
		{
			name:   "unexpected element in poll",
			doc:    `<poll id="1"><question>Q?</question><deadline>soon</deadline><options><option id="1"><text>A</text><votes>0</votes></option></options></poll>`,
			reason: "unexpected element",
		},
		{
			name:   "unexpected element in option",
			doc:    `<poll id="1"><question>Q?</question><options><option id="1"><text>A</text><votes>0</votes><color>red</color></option></options></poll>`,
			reason: "unexpected element",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate([]byte(tt.doc))
			if err == nil {
				t.Fatal("Expected a schema violation, got nil")
			}

			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Expected *SchemaError, got %T: %v", err, err)
			}
			if !strings.Contains(schemaErr.Reason, tt.reason) {
				t.Errorf("Expected reason containing %q, got %q", tt.reason, schemaErr.Reason)
			}
		})
	}
}
