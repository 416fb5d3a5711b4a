// Package layout parses, edits, and serializes the WoW client's
// layout-local.txt frame position file.
//
// The on-disk format is a version header line followed by repeated
// frame blocks:
//
//	LAYOUT-CACHE-VERSION-B
//	Frame: PlayerFrame
//	Anchor: TOPLEFT
//	FrameLevel: 1
//	H: 100
//	W: 200
//	X: -300
//	Y: -220
//
// Each block starts with a "Frame: <name>" line; the remaining
// "Key: Value" lines attach to that block until the next one begins.
// Values coerce to integer, float, or string (in that order) and the
// coerced kind determines output formatting. Frames keep their original
// lines so that untouched blocks re-emit without spurious diffs.
package layout

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/natefinch/atomic"
)

// FrameKey is the attribute key that opens a block and names its frame.
const FrameKey = "Frame"

// FileName is the only file name the tool operates on. The client
// rewrites this exact file on logout, so edits anywhere else are noise.
const FileName = "layout-local.txt"

const filePerms = 0o644

// Frame is one named record in a layout file.
type Frame struct {
	// Name is the frame's unique identifier (the Frame line's value).
	Name string

	// Attrs maps attribute keys to coerced values. Frame itself is not
	// an entry; it lives in Name.
	Attrs map[string]Value

	// raw holds the block's original lines so clean frames serialize
	// verbatim. Cleared semantics: ignored once dirty is set.
	raw   []string
	dirty bool
}

// Keys returns the frame's attribute keys in ascending order.
func (f *Frame) Keys() []string {
	keys := make([]string, 0, len(f.Attrs))
	for key := range f.Attrs {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// File is a parsed layout-local.txt: the version header plus frames in
// file order. It is rebuilt fresh on every invocation.
type File struct {
	Header string
	Frames []*Frame
}

// Parse converts raw file text into an ordered frame sequence.
//
// The first non-blank line is the version header. Blank lines and
// leading/trailing whitespace are insignificant. Returns a *ParseError
// for an empty file, a nameless Frame line, an attribute line outside
// any block, or a line without a ':' separator.
func Parse(data []byte) (*File, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	file := &File{}

	var current *Frame

	for num, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// First non-blank line is always the version header.
		if file.Header == "" {
			file.Header = trimmed

			continue
		}

		key, rest, ok := strings.Cut(trimmed, ":")
		if !ok {
			return nil, parseErr(num+1, ErrMalformedLine)
		}

		key = strings.TrimSpace(key)
		value := strings.TrimSpace(rest)

		if key == FrameKey {
			if value == "" {
				return nil, parseErr(num+1, ErrMissingFrameName)
			}

			current = &Frame{Name: value, Attrs: make(map[string]Value)}
			current.raw = append(current.raw, trimmed)
			file.Frames = append(file.Frames, current)

			continue
		}

		if current == nil {
			return nil, parseErr(num+1, ErrAttrOutsideFrame)
		}

		// Duplicate keys within a block: last occurrence wins.
		current.Attrs[key] = Coerce(value)
		current.raw = append(current.raw, trimmed)
	}

	if file.Header == "" {
		return nil, parseErr(0, ErrEmptyFile)
	}

	return file, nil
}

// Marshal renders the file in the on-disk format. Clean frames are
// emitted from their original lines verbatim; frames modified by Apply
// are re-rendered with Frame first and the remaining keys in ascending
// order, matching the client writer.
func (f *File) Marshal() string {
	var builder strings.Builder

	builder.WriteString(f.Header)
	builder.WriteString("\n")

	for _, frame := range f.Frames {
		if !frame.dirty {
			for _, line := range frame.raw {
				builder.WriteString(line)
				builder.WriteString("\n")
			}

			continue
		}

		builder.WriteString(FrameKey)
		builder.WriteString(": ")
		builder.WriteString(frame.Name)
		builder.WriteString("\n")

		for _, key := range frame.Keys() {
			builder.WriteString(key)
			builder.WriteString(": ")
			builder.WriteString(frame.Attrs[key].String())
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// Load reads and parses the layout file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}

	return Parse(data)
}

// Save marshals the file and replaces path atomically (temp file plus
// rename), so a failed write never leaves a partial file behind.
func Save(path string, file *File) error {
	content := file.Marshal()

	writeErr := atomic.WriteFile(path, strings.NewReader(content))
	if writeErr != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, writeErr)
	}

	// atomic.WriteFile doesn't set permissions for new files.
	chmodErr := os.Chmod(path, filePerms)
	if chmodErr != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, chmodErr)
	}

	return nil
}
