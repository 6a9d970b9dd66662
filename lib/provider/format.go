// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/scalefield/console/lib/codec"
	"github.com/scalefield/console/lib/console"
)

// ErrUnknownFormat is returned for file names and format names that
// map to no known encoding.
var ErrUnknownFormat = errors.New("unknown bundle format")

// Format is the serialization of a bundle.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatCBOR  Format = "cbor"
)

// Compression is the compression layer of a bundle file.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// Encoding describes every layer of a bundle file.
type Encoding struct {
	Format      Format
	Compression Compression
	Encrypted   bool
}

// String renders the encoding as a file suffix, e.g. ".cbor.zst.age".
func (encoding Encoding) String() string {
	var suffix strings.Builder
	suffix.WriteString("." + string(encoding.Format))
	switch encoding.Compression {
	case CompressionZstd:
		suffix.WriteString(".zst")
	case CompressionLZ4:
		suffix.WriteString(".lz4")
	}
	if encoding.Encrypted {
		suffix.WriteString(".age")
	}
	return suffix.String()
}

// FormatFromPath infers the encoding from a file name's extensions.
func FormatFromPath(path string) (Encoding, error) {
	var encoding Encoding
	name := strings.ToLower(filepath.Base(path))

	if trimmed, ok := strings.CutSuffix(name, ".age"); ok {
		encoding.Encrypted = true
		name = trimmed
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		encoding.Compression = CompressionZstd
		name = strings.TrimSuffix(name, ".zst")
	case strings.HasSuffix(name, ".lz4"):
		encoding.Compression = CompressionLZ4
		name = strings.TrimSuffix(name, ".lz4")
	}

	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(name), "."))
	if err != nil {
		return Encoding{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	encoding.Format = format
	return encoding, nil
}

// ParseFormat accepts a format name or its common aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "jsonc":
		return FormatJSONC, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
}

// Decode parses a bundle and validates its ids.
func Decode(data []byte, format Format) (*console.Bundle, error) {
	var bundle console.Bundle
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &bundle)
	case FormatJSONC:
		err = json.Unmarshal(jsonc.ToJSON(data), &bundle)
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		err = decoder.Decode(&bundle)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatCBOR:
		err = codec.Unmarshal(data, &bundle)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s bundle: %w", format, err)
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// Encode serializes a bundle. JSONC is written as indented JSON.
func Encode(bundle *console.Bundle, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, FormatJSONC:
		return json.MarshalIndent(bundle, "", "  ")
	case FormatYAML:
		var buffer bytes.Buffer
		encoder := yaml.NewEncoder(&buffer)
		encoder.SetIndent(2)
		if err := encoder.Encode(bundle); err != nil {
			return nil, err
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
		return buffer.Bytes(), nil
	case FormatCBOR:
		return codec.Marshal(bundle)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
