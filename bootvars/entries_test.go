// This file is part of efibootvars
// Copyright 2022 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package bootvars

import (
	"gopkg.in/check.v1"

	"github.com/canonical/go-efilib"
)

type entriesSuite struct{}

var _ = check.Suite(&entriesSuite{})

func (s *entriesSuite) TestBootEntryVariableName(c *check.C) {
	// Short candidates inherit the trailing zeros of the template.
	c.Check(BootEntryVariableName("0001"), check.Equals, "Boot0001")
	c.Check(BootEntryVariableName("1F"), check.Equals, "Boot1F00")
	c.Check(BootEntryVariableName("a"), check.Equals, "Boota000")
	c.Check(BootEntryVariableName(""), check.Equals, "Boot0000")
	c.Check(BootEntryVariableName("12345"), check.Equals, "Boot1234")
}

func (s *entriesSuite) TestValidEntryFormat(c *check.C) {
	c.Check(ValidEntryFormat([]string{"0001", "1f", "A", "ffff"}), check.Equals, true)
	c.Check(ValidEntryFormat(nil), check.Equals, true)
	c.Check(ValidEntryFormat([]string{"0001", ""}), check.Equals, false)
	c.Check(ValidEntryFormat([]string{"00012"}), check.Equals, false)
	c.Check(ValidEntryFormat([]string{"00g1"}), check.Equals, false)
	c.Check(ValidEntryFormat([]string{"0001", "-1"}), check.Equals, false)
}

func (s *entriesSuite) TestFirstInvalidEntry(c *check.C) {
	mockvars := MockEFIVariables{
		map[efi.VariableDescriptor]mockEFIVariable{
			globalVar("Boot0001"): {mockLoadOption("Windows"), defaultAttrs},
			globalVar("Boot0002"): {mockLoadOption("Linux"), defaultAttrs},
			globalVar("Boot0003"): {nil, defaultAttrs},
		},
	}
	appEFIVars = &mockvars

	c.Check(FirstInvalidEntry([]string{"0001", "0002"}), check.Equals, "")
	c.Check(FirstInvalidEntry(nil), check.Equals, "")
	// The first inaccessible entry is named, even after valid ones.
	c.Check(FirstInvalidEntry([]string{"0001", "0002", "000a", "0004"}), check.Equals, "000a")
	// An empty payload does not count as a readable entry.
	c.Check(FirstInvalidEntry([]string{"0003"}), check.Equals, "0003")
}

func (s *entriesSuite) TestParseEntryNumber(c *check.C) {
	num, err := ParseEntryNumber("001f")
	c.Assert(err, check.IsNil)
	c.Check(num, check.Equals, uint16(0x1f))

	num, err = ParseEntryNumber("FFFF")
	c.Assert(err, check.IsNil)
	c.Check(num, check.Equals, uint16(0xffff))

	_, err = ParseEntryNumber("xyz")
	c.Check(err, check.NotNil)
}

func (s *entriesSuite) TestFormatEntryNumber(c *check.C) {
	c.Check(FormatEntryNumber(0), check.Equals, "0000")
	c.Check(FormatEntryNumber(0x1f), check.Equals, "001f")
	c.Check(FormatEntryNumber(0xabcd), check.Equals, "abcd")
}

func (s *entriesSuite) TestIsBootEntryName(c *check.C) {
	c.Check(IsBootEntryName("Boot0001"), check.Equals, true)
	c.Check(IsBootEntryName("BootaBcD"), check.Equals, true)
	c.Check(IsBootEntryName("Boot001"), check.Equals, false)
	c.Check(IsBootEntryName("Boot00012"), check.Equals, false)
	c.Check(IsBootEntryName("BootManagerFallback"), check.Equals, false)
	c.Check(IsBootEntryName("BootOrder"), check.Equals, false)
	c.Check(IsBootEntryName("Root0001"), check.Equals, false)
	c.Check(IsBootEntryName(""), check.Equals, false)
}
