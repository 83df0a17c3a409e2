package ir

import "strings"

// Comment is one comment with its attachment kind, prefix style, and the
// absolute column its prefix started at in the source (standalone comments
// only; renderers reuse it).
type Comment struct {
	Kind   CommentKind
	Text   string
	Style  Style
	Indent int
}

func NewComment(kind CommentKind, text string) *Comment {
	return &Comment{Kind: kind, Text: text}
}

func (c *Comment) WithStyle(s Style) *Comment {
	c.Style = s
	return c
}

func (c *Comment) WithIndent(i int) *Comment {
	c.Indent = i
	return c
}

func (c *Comment) Clone() *Comment {
	d := *c
	return &d
}

// Multiline reports whether the text spans more than one line.
func (c *Comment) Multiline() bool {
	return strings.IndexByte(c.Text, '\n') != -1
}

// Lines splits the text into lines, tolerating CRLF endings.
func (c *Comment) Lines() []string {
	ls := strings.Split(c.Text, "\n")
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}
