// This file is part of efibootvars
// Copyright 2022 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package bootvars

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// loadOptionHeaderSize covers the fixed part of an EFI_LOAD_OPTION:
// a 32-bit Attributes field and a 16-bit FilePathListLength field.
// The NUL-terminated UTF-16 description follows immediately after.
const loadOptionHeaderSize = 6

// LoadOption is the parsed payload of a BootXXXX variable. Only the
// header and the description are interpreted; the device path list and
// optional data that follow the description are left alone.
type LoadOption struct {
	Attributes         uint32
	FilePathListLength uint16
	Description        string
}

// NewLoadOptionFromVariable parses the payload of a BootXXXX variable.
//
// The description is found by scanning 16-bit units for the terminator,
// never beyond the end of the payload; a payload without a terminator
// is a decode error rather than an out-of-bounds read.
func NewLoadOptionFromVariable(data []byte) (LoadOption, error) {
	if len(data) < loadOptionHeaderSize {
		return LoadOption{}, fmt.Errorf("load option too short: %d bytes", len(data))
	}
	opt := LoadOption{
		Attributes:         binary.LittleEndian.Uint32(data[0:4]),
		FilePathListLength: binary.LittleEndian.Uint16(data[4:6]),
	}

	desc := data[loadOptionHeaderSize:]
	end := -1
	for i := 0; i+1 < len(desc); i += 2 {
		if desc[i] == 0 && desc[i+1] == 0 {
			end = i
			break
		}
	}
	if end < 0 {
		return LoadOption{}, fmt.Errorf("load option description is not terminated")
	}

	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(desc[:end])
	if err != nil {
		return LoadOption{}, fmt.Errorf("cannot decode load option description: %w", err)
	}
	opt.Description = string(decoded)
	return opt, nil
}
