package models

// Kind identifies a content variant.
type Kind string

const (
	KindText         Kind = "text"
	KindTitle        Kind = "title"
	KindListItem     Kind = "list_item"
	KindNumberedItem Kind = "numbered_list"
	KindTable        Kind = "table"
	KindCodeBlock    Kind = "code_block"
	KindEmpty        Kind = "empty"
)

// Content is a single item in a sheet. The set of implementations is closed:
// Text, Title, ListItem, NumberedListItem, *Table, CodeBlock and Empty.
type Content interface {
	Kind() Kind
	Meta() Metadata
	content()
}

// Text is a plain paragraph line.
type Text struct {
	Value    string
	Metadata Metadata
}

// Title is a top-level heading.
type Title struct {
	Value    string
	Metadata Metadata
}

// ListItem is an unordered list entry.
type ListItem struct {
	Value    string
	Metadata Metadata
}

// NumberedListItem is an ordered list entry. The original number is not kept.
type NumberedListItem struct {
	Value    string
	Metadata Metadata
}

// CodeBlock is a fenced block of verbatim lines.
type CodeBlock struct {
	// Body is the interior lines joined by "\n".
	Body string
	// Language is the token following the opening fence, possibly empty.
	Language string
	Metadata Metadata
}

// Empty is a blank line.
type Empty struct {
	Metadata Metadata
}

func (Text) Kind() Kind             { return KindText }
func (Title) Kind() Kind            { return KindTitle }
func (ListItem) Kind() Kind         { return KindListItem }
func (NumberedListItem) Kind() Kind { return KindNumberedItem }
func (CodeBlock) Kind() Kind        { return KindCodeBlock }
func (Empty) Kind() Kind            { return KindEmpty }

func (c Text) Meta() Metadata             { return c.Metadata }
func (c Title) Meta() Metadata            { return c.Metadata }
func (c ListItem) Meta() Metadata         { return c.Metadata }
func (c NumberedListItem) Meta() Metadata { return c.Metadata }
func (c CodeBlock) Meta() Metadata        { return c.Metadata }
func (c Empty) Meta() Metadata            { return c.Metadata }

func (Text) content()             {}
func (Title) content()            {}
func (ListItem) content()         {}
func (NumberedListItem) content() {}
func (CodeBlock) content()        {}
func (Empty) content()            {}
