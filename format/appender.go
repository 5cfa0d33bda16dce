package format

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrInvalidText = errors.New("formatted duration is not valid utf-8")

// Appender collects formatted tokens.
type Appender interface {
	AppendString(s string)
	// AppendDivider separates tokens. Nothing is written into an empty buffer.
	AppendDivider()
	String() (string, error)
}

// TextBuffer is a growable Appender.
type TextBuffer struct {
	sb strings.Builder
}

func NewTextBuffer() *TextBuffer {
	return &TextBuffer{}
}

func (b *TextBuffer) AppendString(s string) {
	b.sb.WriteString(s)
}

func (b *TextBuffer) AppendDivider() {
	if b.sb.Len() > 0 {
		b.sb.WriteByte(' ')
	}
}

func (b *TextBuffer) String() (string, error) {
	return b.sb.String(), nil
}

// Builder is an Appender backed by a byte slice that is allocated up front.
type Builder struct {
	buf []byte
}

// NewBuilder preallocates size bytes.
func NewBuilder(size int) *Builder {
	return &Builder{buf: make([]byte, 0, max(size, 0))}
}

func (b *Builder) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

func (b *Builder) AppendDivider() {
	if len(b.buf) > 0 {
		b.buf = append(b.buf, ' ')
	}
}

func (b *Builder) Len() int {
	return len(b.buf)
}

// String fails with ErrInvalidText in case the appended bytes are not utf-8.
func (b *Builder) String() (string, error) {
	if !utf8.Valid(b.buf) {
		return "", ErrInvalidText
	}
	return string(b.buf), nil
}
