// This file is part of efibootvars
// Copyright 2022 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package bootvars

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/canonical/go-efilib"
)

// GetBootNext returns the value of the BootNext variable. ok is false
// if the variable is not set, which is not an error.
func GetBootNext() (value uint16, ok bool, err error) {
	data, _, err := GetVariable(efi.GlobalVariable, "BootNext")
	if errors.Is(err, efi.ErrVarNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("cannot read BootNext: %w", err)
	}
	if len(data) != 2 {
		return 0, false, fmt.Errorf("BootNext has unexpected size %d", len(data))
	}
	return binary.LittleEndian.Uint16(data), true, nil
}

// SetBootNext sets the BootNext variable to the given entry number,
// provided in hexadecimal form (e.g. 001F).
//
// The entry must name an existing, readable boot entry; nothing is
// written otherwise.
func SetBootNext(entry string) error {
	if !ValidEntryFormat([]string{entry}) {
		return ErrInvalidEntryFormat
	}
	if invalid := FirstInvalidEntry([]string{entry}); invalid != "" {
		return &BadEntryError{Entry: invalid}
	}

	num, err := ParseEntryNumber(entry)
	if err != nil {
		return err
	}

	var data [2]byte
	binary.LittleEndian.PutUint16(data[:], num)
	return setGlobalVariable("BootNext", data[:])
}
