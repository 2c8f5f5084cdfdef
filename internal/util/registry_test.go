// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package util

import (
	"fmt"
	"sync"
	"testing"
)

func TestStringRegistry_SetKeepsFirst(t *testing.T) {
	r := NewStringRegistry[int]()
	if !r.Set("Escrow.approve", 1) {
		t.Error("Set() = false for a new key")
	}
	if r.Set("Escrow.approve", 2) {
		t.Error("Set() = true for an existing key")
	}
	if v, ok := r.Get("Escrow.approve"); !ok || v != 1 {
		t.Errorf("Get() = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := r.Get("Escrow.spend"); ok {
		t.Error("Get() found a missing key")
	}
	if !r.Has("Escrow.approve") || r.Has("Escrow.spend") {
		t.Error("Has() mismatch")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestStringRegistry_Ordering(t *testing.T) {
	r := NewStringRegistry[int]()
	r.Set("TradeOffer.trade", 3)
	r.Set("Escrow.reject", 2)
	r.Set("Escrow.approve", 1)
	r.Set("TradeOffer.cancel", 4)

	tests := []struct {
		name string
		got  []string
		want string
	}{
		{"keys", r.Keys(), "[Escrow.approve Escrow.reject TradeOffer.cancel TradeOffer.trade]"},
		{"prefix", r.KeysWithPrefix("Escrow."), "[Escrow.approve Escrow.reject]"},
		{"no match", r.KeysWithPrefix("Loan"), "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if fmt.Sprint(tt.got) != tt.want {
				t.Errorf("got %v, want %s", tt.got, tt.want)
			}
		})
	}

	if got := fmt.Sprint(r.Values()); got != "[1 2 4 3]" {
		t.Errorf("Values() = %s, want key order [1 2 4 3]", got)
	}
}

func TestStringRegistry_Concurrent(t *testing.T) {
	r := NewStringRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Set(string(rune('a'+i%26)), i)
		}(i)
		go func(i int) {
			defer wg.Done()
			r.Get(string(rune('a' + i%26)))
			r.KeysWithPrefix("a")
			r.Values()
		}(i)
	}
	wg.Wait()

	if r.Len() > 26 {
		t.Errorf("Len() = %d, want at most 26", r.Len())
	}
}
