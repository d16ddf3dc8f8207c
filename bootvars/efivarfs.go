// This file is part of efibootvars
// Copyright 2022 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package bootvars

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/canonical/go-efilib"
	"github.com/spf13/afero"
)

// guidStringLen is the length of a textual GUID, as it appears in
// efivarfs file names of the form Name-GUID.
const guidStringLen = 36

// FilesystemEFIVariables implements EFIVariables on top of a directory
// of Name-GUID variable files, the layout used by the kernel's efivarfs.
// The first four bytes of each file hold the variable attributes.
//
// This is useful for inspecting or editing a copied-out efivars tree
// without touching the running system.
type FilesystemEFIVariables struct {
	fs   afero.Fs
	root string
}

// NewFilesystemEFIVariables returns a variable store over the given
// directory of Name-GUID files.
func NewFilesystemEFIVariables(fs afero.Fs, root string) FilesystemEFIVariables {
	return FilesystemEFIVariables{fs: fs, root: root}
}

func (v FilesystemEFIVariables) path(guid efi.GUID, name string) string {
	return filepath.Join(v.root, fmt.Sprintf("%s-%s", name, guid))
}

// ListVariables returns a descriptor for every well-formed Name-GUID
// file in the directory. Files with unparseable names are skipped.
func (v FilesystemEFIVariables) ListVariables() ([]efi.VariableDescriptor, error) {
	fis, err := afero.ReadDir(v.fs, v.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, efi.ErrVarsUnavailable
		}
		return nil, err
	}

	var out []efi.VariableDescriptor
	for _, fi := range fis {
		if fi.IsDir() {
			continue
		}
		base := fi.Name()
		sep := len(base) - guidStringLen - 1
		if sep < 1 || base[sep] != '-' {
			continue
		}
		guid, err := efi.DecodeGUIDString(base[sep+1:])
		if err != nil {
			continue
		}
		out = append(out, efi.VariableDescriptor{Name: base[:sep], GUID: guid})
	}
	return out, nil
}

// GetVariable reads the payload and attributes of the named variable.
func (v FilesystemEFIVariables) GetVariable(guid efi.GUID, name string) (data []byte, attrs efi.VariableAttributes, err error) {
	payload, err := afero.ReadFile(v.fs, v.path(guid, name))
	if os.IsNotExist(err) {
		return nil, 0, efi.ErrVarNotExist
	}
	if err != nil {
		return nil, 0, err
	}
	if len(payload) < 4 {
		return nil, 0, fmt.Errorf("%s contains %d bytes of data, expected at least 4", name, len(payload))
	}
	return payload[4:], efi.VariableAttributes(binary.LittleEndian.Uint32(payload[:4])), nil
}

// SetVariable writes the payload and attributes of the named variable.
func (v FilesystemEFIVariables) SetVariable(guid efi.GUID, name string, data []byte, attrs efi.VariableAttributes) error {
	payload := make([]byte, len(data)+4)
	binary.LittleEndian.PutUint32(payload[:4], uint32(attrs))
	copy(payload[4:], data)
	return afero.WriteFile(v.fs, v.path(guid, name), payload, 0644)
}
