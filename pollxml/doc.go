// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pollxml converts polls to and from their on-disk XML document
form and validates candidate documents against the fixed poll schema.

# Document Layout

	<?xml version="1.0" encoding="UTF-8"?>
	<poll id="5" owner="alice">
	  <question>Oy testi?</question>
	  <options>
	    <option id="10"><text>X</text><votes>1</votes></option>
	    <option id="20"><text>Y</text><votes>0</votes></option>
	  </options>
	</poll>

The owner attribute is optional; legacy documents without it decode to
a poll with an empty Owner.

# Encoding and Decoding

Encode is strict and deterministic. Decode is two-phased:

	data, err := pollxml.Encode(poll)
	poll, err := pollxml.Decode(data)

The primary path parses strictly into the typed record. When strict
parsing fails, a lenient fallback walks the raw element tree with
tolerant defaults so that structurally odd but readable documents from
older encoders still load. Decode(Encode(p)) is value-equal to p for
every valid poll.

# Validation

The Schema is compiled once at startup and reused:

	schema := pollxml.NewSchema()
	if err := schema.Validate(data); err != nil { ... }

Validation failures are reported as *SchemaError. Beyond the element
layout, the schema enforces a non-empty option list and uniqueness of
option ids within a poll. Callers decide severity: the store treats
validation as advisory on read and mandatory on write.
*/
package pollxml
