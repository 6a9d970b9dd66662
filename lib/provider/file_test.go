// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"filippo.io/age"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/testutil"
)

func TestWriteLoadRoundTrip(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("GenerateX25519Identity: %v", err)
	}
	seed := console.Seed()
	directory := t.TempDir()

	for _, name := range []string{
		"bundle.json",
		"bundle.yaml",
		"bundle.cbor.zst",
		"bundle.json.lz4",
		"bundle.cbor.zst.age",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(directory, name)
			err := WriteFile(path, &seed, WriteOptions{Recipients: []age.Recipient{identity.Recipient()}})
			if err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			loaded, err := LoadFile(path, LoadOptions{Identities: []age.Identity{identity}})
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if len(loaded.Tables) != len(seed.Tables) {
				t.Errorf("tables = %d, want %d", len(loaded.Tables), len(seed.Tables))
			}
			if loaded.Deployments[0].ID != "847" {
				t.Errorf("first deployment = %q, want 847", loaded.Deployments[0].ID)
			}
		})
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("directory has %d entries, want 5 (temporary files left behind?)", len(entries))
	}
}

func TestLoadEncryptedWithoutIdentity(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("GenerateX25519Identity: %v", err)
	}
	seed := console.Seed()
	path := filepath.Join(t.TempDir(), "bundle.json.age")
	if err := WriteFile(path, &seed, WriteOptions{Recipients: []age.Recipient{identity.Recipient()}}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(path, LoadOptions{}); !errors.Is(err, ErrNoIdentity) {
		t.Fatalf("LoadFile error = %v, want ErrNoIdentity", err)
	}

	other, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("GenerateX25519Identity: %v", err)
	}
	if _, err := LoadFile(path, LoadOptions{Identities: []age.Identity{other}}); err == nil {
		t.Fatal("LoadFile decrypted with the wrong identity")
	}
}

func TestWriteEncryptedWithoutRecipients(t *testing.T) {
	seed := console.Seed()
	path := filepath.Join(t.TempDir(), "bundle.json.age")
	if err := WriteFile(path, &seed, WriteOptions{}); err == nil {
		t.Fatal("WriteFile encrypted with no recipients")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("failed write left %s behind", path)
	}
}

func TestReadIdentitiesAndRecipients(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("GenerateX25519Identity: %v", err)
	}
	path := testutil.WriteFile(t, "key.txt", []byte("# created for a test\n"+identity.String()+"\n"))

	identities, err := ReadIdentities(path)
	if err != nil {
		t.Fatalf("ReadIdentities: %v", err)
	}
	recipients, err := RecipientsFor(identities)
	if err != nil {
		t.Fatalf("RecipientsFor: %v", err)
	}
	if len(recipients) != 1 {
		t.Fatalf("recipients = %d, want 1", len(recipients))
	}

	parsed, err := ParseRecipients([]string{identity.Recipient().String()})
	if err != nil {
		t.Fatalf("ParseRecipients: %v", err)
	}
	if parsed[0].(*age.X25519Recipient).String() != identity.Recipient().String() {
		t.Error("parsed recipient does not match identity")
	}
	if _, err := ParseRecipients([]string{"age1notakey"}); err == nil {
		t.Error("ParseRecipients accepted a malformed key")
	}
}

func TestCompressRoundTrip(t *testing.T) {
	input := bytes.Repeat([]byte("deployment 847 succeeded\n"), 200)
	for _, compression := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		compressed, err := Compress(input, compression)
		if err != nil {
			t.Fatalf("Compress(%q): %v", compression, err)
		}
		if compression != CompressionNone && len(compressed) >= len(input) {
			t.Errorf("Compress(%q) did not shrink repetitive input: %d >= %d", compression, len(compressed), len(input))
		}
		output, err := Decompress(compressed, compression)
		if err != nil {
			t.Fatalf("Decompress(%q): %v", compression, err)
		}
		if !bytes.Equal(output, input) {
			t.Errorf("Decompress(%q) output differs from input", compression)
		}
	}
}

func TestDecompressCorrupt(t *testing.T) {
	if _, err := Decompress([]byte("not zstd"), CompressionZstd); err == nil {
		t.Error("Decompress accepted corrupt zstd data")
	}
}
