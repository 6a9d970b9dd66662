// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"fmt"
	"os"
	"path/filepath"

	"filippo.io/age"

	"github.com/scalefield/console/lib/console"
)

// LoadOptions configures LoadFile.
type LoadOptions struct {
	// Identities decrypt .age bundles.
	Identities []age.Identity
}

// WriteOptions configures WriteFile.
type WriteOptions struct {
	// Recipients encrypt .age bundles.
	Recipients []age.Recipient
}

// LoadFile reads a bundle file, peeling the layers its name declares:
// age decryption, then decompression, then decoding.
func LoadFile(path string, options LoadOptions) (*console.Bundle, error) {
	encoding, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}
	return decodeLayers(data, encoding, options)
}

func decodeLayers(data []byte, encoding Encoding, options LoadOptions) (*console.Bundle, error) {
	var err error
	if encoding.Encrypted {
		data, err = decrypt(data, options.Identities)
		if err != nil {
			return nil, err
		}
	}
	data, err = Decompress(data, encoding.Compression)
	if err != nil {
		return nil, err
	}
	return Decode(data, encoding.Format)
}

// WriteFile encodes a bundle in the encoding its path declares and
// replaces path atomically (write to a temporary file in the same
// directory, then rename).
func WriteFile(path string, bundle *console.Bundle, options WriteOptions) error {
	encoding, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := EncodeLayers(bundle, encoding, options)
	if err != nil {
		return err
	}

	temporary, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary bundle: %w", err)
	}
	defer os.Remove(temporary.Name())

	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		return fmt.Errorf("writing bundle: %w", err)
	}
	if err := temporary.Close(); err != nil {
		return fmt.Errorf("writing bundle: %w", err)
	}
	if err := os.Rename(temporary.Name(), path); err != nil {
		return fmt.Errorf("replacing bundle: %w", err)
	}
	return nil
}

// EncodeLayers encodes, compresses and encrypts a bundle in memory.
func EncodeLayers(bundle *console.Bundle, encoding Encoding, options WriteOptions) ([]byte, error) {
	data, err := Encode(bundle, encoding.Format)
	if err != nil {
		return nil, fmt.Errorf("encoding bundle: %w", err)
	}
	data, err = Compress(data, encoding.Compression)
	if err != nil {
		return nil, err
	}
	if encoding.Encrypted {
		data, err = encrypt(data, options.Recipients)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}
