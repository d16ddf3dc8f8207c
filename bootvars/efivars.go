// This file is part of efibootvars
// Copyright 2022 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

// Package bootvars views and edits the UEFI boot configuration
// variables: the BootOrder priority list, the BootNext override and the
// BootXXXX load option entries.
package bootvars

import (
	"github.com/canonical/go-efilib"
)

// EFIVariables abstracts away the host-specific bits of the variable store.
type EFIVariables interface {
	ListVariables() ([]efi.VariableDescriptor, error)
	GetVariable(guid efi.GUID, name string) (data []byte, attrs efi.VariableAttributes, err error)
	SetVariable(guid efi.GUID, name string, data []byte, attrs efi.VariableAttributes) error
}

// RealEFIVariables provides the real implementation of the variable store.
type RealEFIVariables struct{}

// ListVariables proxy
func (RealEFIVariables) ListVariables() ([]efi.VariableDescriptor, error) {
	return efi.ListVariables()
}

// GetVariable proxy
func (RealEFIVariables) GetVariable(guid efi.GUID, name string) (data []byte, attrs efi.VariableAttributes, err error) {
	return efi.ReadVariable(name, guid)
}

// SetVariable proxy
func (RealEFIVariables) SetVariable(guid efi.GUID, name string, data []byte, attrs efi.VariableAttributes) error {
	return efi.WriteVariable(name, guid, attrs, data)
}

// Chosen implementation
var appEFIVars EFIVariables = RealEFIVariables{}

// UseEFIVariables selects the variable store backend used by this package.
func UseEFIVariables(vars EFIVariables) {
	appEFIVars = vars
}

// VariablesSupported indicates whether variables can be accessed.
func VariablesSupported() bool {
	_, err := appEFIVars.ListVariables()
	return err == nil
}

// GetVariableNames returns the names of every variable with the specified GUID.
func GetVariableNames(filterGUID efi.GUID) (names []string, err error) {
	vars, err := appEFIVars.ListVariables()
	if err != nil {
		return nil, err
	}
	for _, entry := range vars {
		if entry.GUID != filterGUID {
			continue
		}
		names = append(names, entry.Name)
	}
	return names, nil
}

// GetVariable returns the payload and attributes of the variable with the specified name.
func GetVariable(guid efi.GUID, name string) (data []byte, attrs efi.VariableAttributes, err error) {
	return appEFIVars.GetVariable(guid, name)
}

// SetVariable updates the payload of the variable with the specified name.
func SetVariable(guid efi.GUID, name string, data []byte, attrs efi.VariableAttributes) error {
	return appEFIVars.SetVariable(guid, name, data, attrs)
}

// defaultAttrs are used when writing a variable that does not exist yet.
const defaultAttrs = efi.AttributeNonVolatile | efi.AttributeBootserviceAccess | efi.AttributeRuntimeAccess

// setGlobalVariable writes a global variable, keeping the attributes of
// an existing variable and falling back to defaultAttrs otherwise.
func setGlobalVariable(name string, data []byte) error {
	attrs := defaultAttrs
	if _, curAttrs, err := GetVariable(efi.GlobalVariable, name); err == nil {
		attrs = curAttrs
	}
	return SetVariable(efi.GlobalVariable, name, data, attrs)
}
