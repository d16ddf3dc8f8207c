// This file is part of efibootvars
// Copyright 2022 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package bootvars

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/canonical/go-efilib"
)

// ErrInvalidEntryFormat is returned when a boot entry argument is not a
// 1-4 digit hexadecimal number. A single malformed argument rejects the
// whole request.
var ErrInvalidEntryFormat = errors.New("invalid boot order format")

// BadEntryError reports a boot entry argument that does not name a
// readable BootXXXX variable. Nothing is written when it is returned.
type BadEntryError struct {
	Entry string
}

func (e *BadEntryError) Error() string {
	return fmt.Sprintf("%s: boot entry inaccessible", e.Entry)
}

// entryNameTemplate is the variable name a candidate entry number is
// overlaid onto. Candidates shorter than four digits keep the trailing
// zeros of the template, so "1F" names Boot1F00.
const entryNameTemplate = "Boot0000"

// BootEntryVariableName builds the BootXXXX variable name for a textual
// entry number, using at most its first four characters.
func BootEntryVariableName(entry string) string {
	name := []byte(entryNameTemplate)
	copy(name[4:], entry)
	return string(name)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ValidEntryFormat reports whether every argument consists of 1 to 4
// hexadecimal digits.
func ValidEntryFormat(entries []string) bool {
	for _, entry := range entries {
		if len(entry) < 1 || len(entry) > 4 {
			return false
		}
		for i := 0; i < len(entry); i++ {
			if !isHexDigit(entry[i]) {
				return false
			}
		}
	}
	return true
}

// FirstInvalidEntry returns the first entry in the list whose BootXXXX
// variable cannot be fetched non-empty, or "" if all entries are valid.
// Remaining entries are not checked after a failure.
func FirstInvalidEntry(entries []string) string {
	for _, entry := range entries {
		data, _, err := GetVariable(efi.GlobalVariable, BootEntryVariableName(entry))
		if err != nil || len(data) == 0 {
			return entry
		}
	}
	return ""
}

// ParseEntryNumber converts a textual entry number to its 16-bit value.
func ParseEntryNumber(entry string) (uint16, error) {
	num, err := strconv.ParseUint(entry, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("cannot parse boot entry %q: %w", entry, err)
	}
	return uint16(num), nil
}

// FormatEntryNumber renders an entry number as exactly four lowercase
// hexadecimal digits.
func FormatEntryNumber(num uint16) string {
	return fmt.Sprintf("%04x", num)
}

// IsBootEntryName reports whether name is "Boot" followed by exactly
// four hexadecimal digits and nothing else.
func IsBootEntryName(name string) bool {
	if len(name) != 8 || !strings.HasPrefix(name, "Boot") {
		return false
	}
	for i := 4; i < 8; i++ {
		if !isHexDigit(name[i]) {
			return false
		}
	}
	return true
}
