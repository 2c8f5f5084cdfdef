// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package engine

import (
	"errors"
	"testing"

	"github.com/aplane-algo/equity/internal/chaincore"
	"github.com/aplane-algo/equity/internal/testutil"
)

func newTestEngine(t *testing.T, opts ...EngineOption) (*Engine, *testutil.MockCoreServer) {
	t.Helper()
	core := testutil.NewMockCoreServer(t)
	eng, err := NewEngine(chaincore.New(core.URL(), nil), opts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return eng, core
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		core    Core
		opts    []EngineOption
		wantErr error
	}{
		{
			name: "defaults",
			core: chaincore.New("", nil),
		},
		{
			name: "with options",
			core: chaincore.New("", nil),
			opts: []EngineOption{WithGasAsset(testutil.AssetID(9)), WithDefaultGas("0.4", "btm")},
		},
		{
			name:    "nil core",
			core:    nil,
			wantErr: ErrNoCore,
		},
		{
			name:    "empty gas asset",
			core:    chaincore.New("", nil),
			opts:    []EngineOption{WithGasAsset("")},
			wantErr: ErrNoGasAsset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := NewEngine(tt.core, tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewEngine() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEngine() error = %v", err)
			}
			if eng.GasAssetID == "" {
				t.Error("GasAssetID not set")
			}
		})
	}
}

func TestEngineWithOptions(t *testing.T) {
	eng, err := NewEngine(chaincore.New("", nil),
		WithGasAsset(testutil.AssetID(3)),
		WithDefaultGas("400", "mbtm"),
	)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if eng.GasAssetID != testutil.AssetID(3) {
		t.Errorf("GasAssetID = %s", eng.GasAssetID)
	}
	if eng.DefaultGas != "400" || eng.DefaultGasUnit != "mbtm" {
		t.Errorf("default gas = %s %s", eng.DefaultGas, eng.DefaultGasUnit)
	}
}

func TestSetCore(t *testing.T) {
	a := chaincore.New("http://a", nil)
	b := chaincore.New("http://b", nil)
	eng, _ := NewEngine(a)

	eng.SetCore(b)
	if eng.Core() != Core(b) {
		t.Error("SetCore did not replace the core")
	}
	eng.SetCore(nil)
	if eng.Core() != Core(b) {
		t.Error("SetCore(nil) replaced the core")
	}
}

func TestEncodeDecodeTemplate(t *testing.T) {
	tpl := &chaincore.Template{RawTransaction: "raw", SigningInstructions: []byte(`[{"position":0}]`), AllowAdditional: true}
	s, err := EncodeTemplate(tpl)
	if err != nil {
		t.Fatalf("EncodeTemplate() error = %v", err)
	}
	got, err := DecodeTemplate(s)
	if err != nil {
		t.Fatalf("DecodeTemplate() error = %v", err)
	}
	if got.RawTransaction != "raw" || !got.AllowAdditional || string(got.SigningInstructions) != `[{"position":0}]` {
		t.Errorf("DecodeTemplate() = %+v", got)
	}
	if _, err := DecodeTemplate("zz"); err == nil {
		t.Error("DecodeTemplate() accepted bad hex")
	}
}
