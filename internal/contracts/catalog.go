// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package contracts

import "github.com/aplane-algo/equity/internal/inputs"

func init() {
	mustRegister(&Contract{
		Name:        "LockWithPublicKey",
		Description: "Locks a value until a signature for the stored public key is presented",
		Params: []Param{
			{Name: "publicKey", Type: inputs.PublicKeyInput},
		},
		Clauses: []Clause{{
			Name:   "spend",
			Params: []Param{{Name: "sig", Type: inputs.SignatureInput}},
			Values: []Value{{Name: "locked", Kind: Unlocked}},
		}},
	})

	mustRegister(&Contract{
		Name:        "LockWithMultiSig",
		Description: "Locks a value until two of three stored keys sign",
		Params: []Param{
			{Name: "publicKey1", Type: inputs.PublicKeyInput},
			{Name: "publicKey2", Type: inputs.PublicKeyInput},
			{Name: "publicKey3", Type: inputs.PublicKeyInput},
		},
		Clauses: []Clause{{
			Name: "spend",
			Params: []Param{
				{Name: "sig1", Type: inputs.SignatureInput},
				{Name: "sig2", Type: inputs.SignatureInput},
			},
			Values: []Value{{Name: "locked", Kind: Unlocked}},
		}},
	})

	mustRegister(&Contract{
		Name:        "LockWithPublicKeyHash",
		Description: "Locks a value until a key matching the stored hash signs",
		Params: []Param{
			{Name: "pubKeyHash", Type: inputs.HashInput},
		},
		Clauses: []Clause{{
			Name: "spend",
			Params: []Param{
				{Name: "pubKey", Type: inputs.PublicKeyInput},
				{Name: "sig", Type: inputs.SignatureInput},
			},
			Values: []Value{{Name: "value", Kind: Unlocked}},
		}},
	})

	mustRegister(&Contract{
		Name:        "RevealPreimage",
		Description: "Locks a value until the preimage of the stored SHA3 hash is revealed",
		Params: []Param{
			{Name: "hash", Type: inputs.HashInput},
		},
		Clauses: []Clause{{
			Name:   "reveal",
			Params: []Param{{Name: "string", Type: inputs.StringInput}},
			Values: []Value{{Name: "value", Kind: Unlocked}},
		}},
	})

	mustRegister(&Contract{
		Name:        "TradeOffer",
		Description: "Offers a value in exchange for a requested payment",
		Params: []Param{
			{Name: "requestedAsset", Type: inputs.AssetInput},
			{Name: "requestedAmount", Type: inputs.AmountInput},
			{Name: "sellerProgram", Type: inputs.ProgramInput},
			{Name: "sellerKey", Type: inputs.PublicKeyInput},
		},
		Clauses: []Clause{
			{
				Name: "trade",
				Values: []Value{
					{Name: "payment", Kind: Payment, Program: "sellerProgram"},
					{Name: "offered", Kind: Unlocked},
				},
			},
			{
				Name:   "cancel",
				Params: []Param{{Name: "sellerSig", Type: inputs.SignatureInput}},
				Values: []Value{{Name: "offered", Kind: Unlocked}},
			},
		},
	})

	mustRegister(&Contract{
		Name:        "Escrow",
		Description: "Holds a value until an agent sends it to the recipient or back to the sender",
		Params: []Param{
			{Name: "agent", Type: inputs.PublicKeyInput},
			{Name: "sender", Type: inputs.ProgramInput},
			{Name: "recipient", Type: inputs.ProgramInput},
		},
		Clauses: []Clause{
			{
				Name:   "approve",
				Params: []Param{{Name: "sig", Type: inputs.SignatureInput}},
				Values: []Value{{Name: "value", Kind: Relocked, Program: "recipient"}},
			},
			{
				Name:   "reject",
				Params: []Param{{Name: "sig", Type: inputs.SignatureInput}},
				Values: []Value{{Name: "value", Kind: Relocked, Program: "sender"}},
			},
		},
	})

	mustRegister(&Contract{
		Name:        "LoanCollateral",
		Description: "Holds collateral until the loan is repaid or the deadline passes",
		Params: []Param{
			{Name: "assetLoaned", Type: inputs.AssetInput},
			{Name: "amountLoaned", Type: inputs.AmountInput},
			{Name: "repaymentDue", Type: inputs.TimeInput},
			{Name: "lender", Type: inputs.ProgramInput},
			{Name: "borrower", Type: inputs.ProgramInput},
		},
		Clauses: []Clause{
			{
				Name: "repay",
				Values: []Value{
					{Name: "payment", Kind: Payment, Program: "lender"},
					{Name: "collateral", Kind: Relocked, Program: "borrower"},
				},
			},
			{
				Name:   "default",
				Values: []Value{{Name: "collateral", Kind: Relocked, Program: "lender"}},
			},
		},
	})

	mustRegister(&Contract{
		Name:        "CallOption",
		Description: "Lets the buyer purchase the underlying at the strike price before expiration",
		Params: []Param{
			{Name: "strikePrice", Type: inputs.AmountInput},
			{Name: "strikeCurrency", Type: inputs.AssetInput},
			{Name: "sellerProgram", Type: inputs.ProgramInput},
			{Name: "sellerKey", Type: inputs.PublicKeyInput},
			{Name: "buyerKey", Type: inputs.PublicKeyInput},
			{Name: "deadline", Type: inputs.TimeInput},
		},
		Clauses: []Clause{
			{
				Name:   "exercise",
				Params: []Param{{Name: "buyerSig", Type: inputs.SignatureInput}},
				Values: []Value{
					{Name: "payment", Kind: Payment, Program: "sellerProgram"},
					{Name: "underlying", Kind: Unlocked},
				},
			},
			{
				Name:   "expire",
				Values: []Value{{Name: "underlying", Kind: Relocked, Program: "sellerProgram"}},
			},
		},
	})
}
