// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollxml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// SchemaError reports a structural violation in a poll document.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "schema violation: " + e.Reason
}

func violation(format string, args ...interface{}) *SchemaError {
	return &SchemaError{Reason: fmt.Sprintf(format, args...)}
}

// Schema holds the structural constraints a poll document must satisfy.
// It is built once at startup and shared by all validations.
//
// The constraints mirror the fixed poll structure: a <poll> root with a
// numeric id attribute and optional owner attribute, a single
// <question>, and an <options> wrapper holding at least one <option>,
// each with a unique numeric id attribute, a <text> element, and a
// non-negative integer <votes> element.
type Schema struct {
	rootName    string
	wrapperName string
	optionName  string
}

// NewSchema compiles the poll document schema.
func NewSchema() *Schema {
	return &Schema{
		rootName:    "poll",
		wrapperName: "options",
		optionName:  "option",
	}
}

// Validate checks a candidate document against the schema. It returns
// a *SchemaError describing the first violation found, or nil when the
// document conforms.
func (s *Schema) Validate(data []byte) error {
	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return violation("document is not well-formed XML: %v", err)
	}

	if root.XMLName.Local != s.rootName {
		return violation("root element must be <%s>, got <%s>", s.rootName, root.XMLName.Local)
	}
	if err := s.checkAttrs(&root, "id", "owner"); err != nil {
		return err
	}
	if err := requireIntAttr(&root, "id", 0); err != nil {
		return err
	}

	var sawQuestion, sawOptions bool
	for i := range root.Children {
		child := &root.Children[i]
		switch child.XMLName.Local {
		case "question":
			if sawQuestion {
				return violation("<%s> must contain exactly one <question>", s.rootName)
			}
			sawQuestion = true
		case s.wrapperName:
			if sawOptions {
				return violation("<%s> must contain exactly one <%s>", s.rootName, s.wrapperName)
			}
			sawOptions = true
			if err := s.checkOptions(child); err != nil {
				return err
			}
		default:
			return violation("unexpected element <%s> in <%s>", child.XMLName.Local, s.rootName)
		}
	}
	if !sawQuestion {
		return violation("<%s> is missing <question>", s.rootName)
	}
	if !sawOptions {
		return violation("<%s> is missing <%s>", s.rootName, s.wrapperName)
	}
	return nil
}

func (s *Schema) checkOptions(wrapper *node) error {
	if len(wrapper.Children) == 0 {
		return violation("<%s> must contain at least one <%s>", s.wrapperName, s.optionName)
	}

	seen := make(map[int]bool)
	for i := range wrapper.Children {
		opt := &wrapper.Children[i]
		if opt.XMLName.Local != s.optionName {
			return violation("unexpected element <%s> in <%s>", opt.XMLName.Local, s.wrapperName)
		}
		if err := s.checkAttrs(opt, "id"); err != nil {
			return err
		}
		id, ok := opt.attr("id")
		if !ok {
			return violation("<%s> is missing the id attribute", s.optionName)
		}
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return violation("<%s> id %q is not numeric", s.optionName, id)
		}
		if seen[n] {
			return violation("duplicate option id %d", n)
		}
		seen[n] = true

		if err := s.checkOption(opt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) checkOption(opt *node) error {
	var sawText, sawVotes bool
	for i := range opt.Children {
		child := &opt.Children[i]
		switch child.XMLName.Local {
		case "text":
			if sawText {
				return violation("<%s> must contain exactly one <text>", s.optionName)
			}
			sawText = true
		case "votes":
			if sawVotes {
				return violation("<%s> must contain exactly one <votes>", s.optionName)
			}
			sawVotes = true
			votes, err := strconv.Atoi(strings.TrimSpace(child.Text))
			if err != nil {
				return violation("<votes> value %q is not an integer", strings.TrimSpace(child.Text))
			}
			if votes < 0 {
				return violation("<votes> must be non-negative, got %d", votes)
			}
		default:
			return violation("unexpected element <%s> in <%s>", child.XMLName.Local, s.optionName)
		}
	}
	if !sawText {
		return violation("<%s> is missing <text>", s.optionName)
	}
	if !sawVotes {
		return violation("<%s> is missing <votes>", s.optionName)
	}
	return nil
}

// checkAttrs rejects attributes outside the allowed set.
func (s *Schema) checkAttrs(n *node, allowed ...string) error {
	for _, a := range n.Attrs {
		ok := false
		for _, name := range allowed {
			if a.Name.Local == name {
				ok = true
				break
			}
		}
		if !ok {
			return violation("unexpected attribute %q on <%s>", a.Name.Local, n.XMLName.Local)
		}
	}
	return nil
}

func requireIntAttr(n *node, name string, min int) error {
	v, ok := n.attr(name)
	if !ok {
		return violation("<%s> is missing the %s attribute", n.XMLName.Local, name)
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return violation("<%s> %s %q is not numeric", n.XMLName.Local, name, v)
	}
	if parsed < min {
		return violation("<%s> %s must be >= %d, got %d", n.XMLName.Local, name, min, parsed)
	}
	return nil
}
