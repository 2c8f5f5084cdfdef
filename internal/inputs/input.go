// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package inputs

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

// Type is an input type tag. Tags appear as the trailing components of a Path.
type Type string

const (
	ParameterInput        Type = "parameterInput"
	StringInput           Type = "stringInput"
	GenerateStringInput   Type = "generateStringInput"
	ProvideStringInput    Type = "provideStringInput"
	HashInput             Type = "hashInput"
	GenerateHashInput     Type = "generateHashInput"
	ProvideHashInput      Type = "provideHashInput"
	PublicKeyInput        Type = "publicKeyInput"
	ProvidePublicKeyInput Type = "providePublicKeyInput"
	ChoosePublicKeyInput  Type = "choosePublicKeyInput"
	SignatureInput        Type = "signatureInput"
	ProvideSignatureInput Type = "provideSignatureInput"
	NumberInput           Type = "numberInput"
	TimeInput             Type = "timeInput"
	ProgramInput          Type = "programInput"
	ValueInput            Type = "valueInput"
	AccountInput          Type = "accountInput"
	AssetInput            Type = "assetInput"
	AmountInput           Type = "amountInput"
	GasInput              Type = "gasInput"
	BtmUnitInput          Type = "btmUnitInput"
)

var knownTypes = map[Type]bool{
	ParameterInput: true, StringInput: true, GenerateStringInput: true,
	ProvideStringInput: true, HashInput: true, GenerateHashInput: true,
	ProvideHashInput: true, PublicKeyInput: true, ProvidePublicKeyInput: true,
	ChoosePublicKeyInput: true, SignatureInput: true, ProvideSignatureInput: true,
	NumberInput: true, TimeInput: true, ProgramInput: true, ValueInput: true,
	AccountInput: true, AssetInput: true, AmountInput: true, GasInput: true,
	BtmUnitInput: true,
}

// IsKnownType reports whether s is a recognised input type tag.
func IsKnownType(s string) bool {
	return knownTypes[Type(s)]
}

// Input is a single entered value.
type Input struct {
	Path  Path
	Value string
}

// Type returns the input's leaf type tag.
func (in *Input) Type() Type {
	return in.Path.Leaf()
}

// Validate checks the value against the rules for its type.
// Container types (valueInput, parameterInput) carry no value of their own.
func (in *Input) Validate() error {
	if err := validateValue(in.Type(), in.Value); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidValue, in.Path, err)
	}
	return nil
}

// ValidateValue checks v against the rules for type t.
func ValidateValue(t Type, v string) error {
	if err := validateValue(t, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidValue, t, err)
	}
	return nil
}

// ValidateID checks that v is a hex-encoded 32-byte asset or output id.
func ValidateID(v string) error {
	if err := checkHex(v, 32); err != nil {
		return fmt.Errorf("%w: id %q: %v", ErrInvalidValue, v, err)
	}
	return nil
}

func validateValue(t Type, v string) error {
	switch t {
	case ValueInput, ParameterInput:
		return nil
	case AccountInput:
		if v == "" {
			return fmt.Errorf("account is required")
		}
	case AssetInput:
		return checkHex(v, 32)
	case AmountInput:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("amount must be a whole number: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("amount must be greater than 0")
		}
	case NumberInput, TimeInput:
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("not an integer: %w", err)
		}
	case GasInput:
		_, err := GasNeu(v, UnitBTM)
		return err
	case BtmUnitInput:
		if _, err := unitScale(v); err != nil {
			return err
		}
	case ProgramInput:
		if v == "" {
			return fmt.Errorf("program is required")
		}
		return checkHex(v, 0)
	case PublicKeyInput, ProvidePublicKeyInput, ChoosePublicKeyInput:
		return ValidatePublicKey(v)
	case HashInput, ProvideHashInput:
		return checkHex(v, 32)
	case SignatureInput, ProvideSignatureInput:
		return checkHex(v, 64)
	case StringInput, ProvideStringInput, GenerateStringInput, GenerateHashInput:
		return checkHex(v, 0)
	}
	return nil
}

// checkHex requires v to be hex; size > 0 also fixes the decoded byte length.
func checkHex(v string, size int) error {
	b, err := hex.DecodeString(v)
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}
	if size > 0 && len(b) != size {
		return fmt.Errorf("expected %d bytes, got %d", size, len(b))
	}
	return nil
}

// ValidatePublicKey checks that v is a hex-encoded Ed25519 public key.
func ValidatePublicKey(v string) error {
	b, err := hex.DecodeString(v)
	if err != nil {
		return fmt.Errorf("invalid public key hex: %w", err)
	}
	if len(b) != 32 {
		return fmt.Errorf("public key must be 32 bytes, got %d", len(b))
	}
	if _, err := new(edwards25519.Point).SetBytes(b); err != nil {
		return fmt.Errorf("public key is not a valid curve point: %w", err)
	}
	return nil
}

// ComputeHash returns the hex SHA3-256 digest of a hex-encoded preimage,
// as used by hash-locked contracts.
func ComputeHash(preimageHex string) (string, error) {
	preimage, err := hex.DecodeString(preimageHex)
	if err != nil {
		return "", fmt.Errorf("invalid preimage hex: %w", err)
	}
	sum := sha3.Sum256(preimage)
	return hex.EncodeToString(sum[:]), nil
}
