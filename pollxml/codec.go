// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollxml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/votesys/models"
)

// Wire types mirroring the poll document layout:
//
//	<poll id=".." owner="..">
//	  <question>..</question>
//	  <options>
//	    <option id=".."><text>..</text><votes>..</votes></option>
//	  </options>
//	</poll>
type xmlPoll struct {
	XMLName  xml.Name    `xml:"poll"`
	ID       int         `xml:"id,attr"`
	Owner    string      `xml:"owner,attr,omitempty"`
	Question string      `xml:"question"`
	Options  []xmlOption `xml:"options>option"`
}

type xmlOption struct {
	ID    int    `xml:"id,attr"`
	Text  string `xml:"text"`
	Votes int    `xml:"votes"`
}

// Encode serializes a poll into its document form. The output is
// deterministic: options keep their stored order and the owner
// attribute is omitted when the poll has no recorded owner.
func Encode(poll models.Poll) ([]byte, error) {
	doc := xmlPoll{
		ID:       poll.ID,
		Owner:    poll.Owner,
		Question: poll.Question,
	}
	for _, opt := range poll.Options {
		doc.Options = append(doc.Options, xmlOption{ID: opt.ID, Text: opt.Text, Votes: opt.Votes})
	}

	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode poll %d: %w", poll.ID, err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Decode parses a poll document. It first tries the strict typed
// parse; if that fails (a vote count that is not an integer, an id
// attribute that is not numeric) it falls back to a lenient walk over
// the raw element tree so that documents written by older encoders
// remain readable. Only unparseable XML is an error.
func Decode(data []byte) (models.Poll, error) {
	poll, err := decodeStrict(data)
	if err == nil {
		return poll, nil
	}
	return decodeLenient(data)
}

func decodeStrict(data []byte) (models.Poll, error) {
	var doc xmlPoll
	if err := xml.Unmarshal(data, &doc); err != nil {
		return models.Poll{}, fmt.Errorf("strict decode failed: %w", err)
	}
	if len(doc.Options) == 0 {
		// A conforming document always wraps at least one option; a
		// strict parse that found none is looking at an older layout.
		return models.Poll{}, fmt.Errorf("strict decode found no options")
	}

	poll := models.Poll{
		ID:       doc.ID,
		Owner:    doc.Owner,
		Question: doc.Question,
	}
	for _, opt := range doc.Options {
		poll.Options = append(poll.Options, models.Option{ID: opt.ID, Text: opt.Text, Votes: opt.Votes})
	}
	return poll, nil
}

// node is a generic element used by the lenient path and the schema
// validator to walk arbitrary documents.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
	Text     string     `xml:",chardata"`
}

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *node) child(name string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

// decodeLenient extracts whatever poll shape it can find: missing text
// becomes the empty string, a missing or garbled vote count becomes 0.
// Options are accepted both inside an <options> wrapper and directly
// under the root.
func decodeLenient(data []byte) (models.Poll, error) {
	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return models.Poll{}, fmt.Errorf("lenient decode failed: %w", err)
	}

	var poll models.Poll
	if v, ok := root.attr("id"); ok {
		poll.ID, _ = strconv.Atoi(strings.TrimSpace(v))
	}
	if v, ok := root.attr("owner"); ok {
		poll.Owner = v
	}
	if q := root.child("question"); q != nil {
		poll.Question = strings.TrimSpace(q.Text)
	}

	optionParent := &root
	if wrapper := root.child("options"); wrapper != nil {
		optionParent = wrapper
	}
	for i := range optionParent.Children {
		child := &optionParent.Children[i]
		if child.XMLName.Local != "option" {
			continue
		}
		var opt models.Option
		if v, ok := child.attr("id"); ok {
			opt.ID, _ = strconv.Atoi(strings.TrimSpace(v))
		}
		if text := child.child("text"); text != nil {
			opt.Text = strings.TrimSpace(text.Text)
		}
		if votes := child.child("votes"); votes != nil {
			opt.Votes, _ = strconv.Atoi(strings.TrimSpace(votes.Text))
			if opt.Votes < 0 {
				opt.Votes = 0
			}
		}
		poll.Options = append(poll.Options, opt)
	}
	return poll, nil
}
