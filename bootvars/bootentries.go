// This file is part of efibootvars
// Copyright 2022 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package bootvars

import (
	"errors"
	"fmt"

	"github.com/canonical/go-efilib"
)

// BootEntryInfo pairs a BootXXXX variable name with the description of
// its load option.
type BootEntryInfo struct {
	Name        string
	Description string
}

// ListBootEntries returns every defined boot entry with its
// description, in store enumeration order.
//
// Global variables whose name is not Boot followed by four hexadecimal
// digits are skipped, as is a variable that vanishes between
// enumeration and fetch. Any other failure aborts the remaining
// enumeration; the entries decoded so far are returned alongside the
// error.
func ListBootEntries() ([]BootEntryInfo, error) {
	names, err := GetVariableNames(efi.GlobalVariable)
	if err != nil {
		return nil, fmt.Errorf("cannot obtain list of global variables: %w", err)
	}

	var out []BootEntryInfo
	for _, name := range names {
		if !IsBootEntryName(name) {
			continue
		}
		data, _, err := GetVariable(efi.GlobalVariable, name)
		if errors.Is(err, efi.ErrVarNotExist) {
			continue
		}
		if err != nil {
			return out, fmt.Errorf("cannot read %s: %w", name, err)
		}
		opt, err := NewLoadOptionFromVariable(data)
		if err != nil {
			return out, fmt.Errorf("cannot parse %s: %w", name, err)
		}
		out = append(out, BootEntryInfo{Name: name, Description: opt.Description})
	}
	return out, nil
}
