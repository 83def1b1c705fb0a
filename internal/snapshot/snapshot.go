// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snapshot compares test output with golden files.
//
// A snapshot that does not exist is created with the output of the test.
// When the UPDATE_SNAPSHOTS environment variable is not empty, every
// snapshot is rewritten instead of being compared.
package snapshot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
)

// UpdateEnv is the environment variable that, when not empty, rewrites the
// snapshots.
const UpdateEnv = "UPDATE_SNAPSHOTS"

var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// Verifier verifies snapshots stored in a directory.
type Verifier struct {
	dir    string
	update bool
}

// New returns a verifier for the snapshots in dir.
func New(dir string) *Verifier {
	return &Verifier{dir: dir, update: os.Getenv(UpdateEnv) != ""}
}

// Verify verifies that got is equal to the snapshot name.txt.
func (v *Verifier) Verify(t testing.TB, name, got string) {
	t.Helper()
	v.verify(t, name+".txt", got)
}

// VerifyHTML verifies that got is equal to the snapshot name.html.
func (v *Verifier) VerifyHTML(t testing.TB, name, got string) {
	t.Helper()
	v.verify(t, name+".html", got)
}

// VerifyJSON verifies that the indented JSON encoding of value is equal to
// the snapshot name.json.
func (v *Verifier) VerifyJSON(t testing.TB, name string, value interface{}) {
	t.Helper()
	b, err := jsonConfig.MarshalIndent(value, "", "    ")
	if err != nil {
		t.Fatalf("snapshot %s: cannot encode value: %s", name, err)
	}
	v.verify(t, name+".json", string(b)+"\n")
}

func (v *Verifier) verify(t testing.TB, file, got string) {
	t.Helper()
	path := filepath.Join(v.dir, file)
	want, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) || v.update {
		if err := v.write(path, got); err != nil {
			t.Fatalf("snapshot %s: %s", file, err)
		}
		t.Logf("snapshot %s written", file)
		return
	}
	if err != nil {
		t.Fatalf("snapshot %s: %s", file, err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Fatalf("snapshot %s mismatch (-want +got):\n%s", file, diff)
	}
}

func (v *Verifier) write(path, content string) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
