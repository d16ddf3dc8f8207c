// This file is part of efibootvars
// Copyright 2022 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package bootvars

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/canonical/go-efilib"
)

// GetBootOrder returns the current boot order, highest priority first.
func GetBootOrder() ([]uint16, error) {
	data, _, err := GetVariable(efi.GlobalVariable, "BootOrder")
	if err != nil {
		return nil, fmt.Errorf("cannot read BootOrder: %w", err)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("BootOrder has odd size %d", len(data))
	}
	order := make([]uint16, len(data)/2)
	for i := range order {
		order[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	return order, nil
}

// ParseBootOrder validates the format of the entry arguments and parses
// them to entry numbers, without touching the variable store. A single
// malformed argument rejects the whole list.
func ParseBootOrder(entries []string) ([]uint16, error) {
	if !ValidEntryFormat(entries) {
		return nil, ErrInvalidEntryFormat
	}
	order := make([]uint16, len(entries))
	for i, entry := range entries {
		num, err := ParseEntryNumber(entry)
		if err != nil {
			return nil, err
		}
		order[i] = num
	}
	return order, nil
}

// SetBootOrder replaces the entire boot order with the given entries,
// provided in hexadecimal form. Duplicates are passed through as given.
//
// The arguments are validated in two phases before anything is written:
// first the format of every argument, then that every entry names an
// existing, readable boot entry. The order is then committed as a
// single variable write, so the store never holds a partial update.
func SetBootOrder(entries []string) error {
	order, err := ParseBootOrder(entries)
	if err != nil {
		return err
	}
	if invalid := FirstInvalidEntry(entries); invalid != "" {
		return &BadEntryError{Entry: invalid}
	}

	data := make([]byte, 2*len(order))
	for i, num := range order {
		binary.LittleEndian.PutUint16(data[2*i:], num)
	}
	return setGlobalVariable("BootOrder", data)
}

// FormatBootOrder renders a boot order for display, comma-separated
// with a trailing period.
func FormatBootOrder(order []uint16) string {
	if len(order) == 0 {
		return "Boot order: empty."
	}
	parts := make([]string, len(order))
	for i, num := range order {
		parts[i] = FormatEntryNumber(num)
	}
	return "Boot order: " + strings.Join(parts, ", ") + "."
}
