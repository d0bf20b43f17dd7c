package ladder

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestNewMatrix(t *testing.T) {
	ix := newTestIndex("cat", "cut", "cute", "zzz")
	words := ix.Dictionary().Words() // cat cut cute zzz

	m, err := NewMatrix(context.Background(), ix, words, 2)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}

	want := [][]Distance{
		{Finite(0), Finite(1), Finite(2), Unreachable},
		{Finite(1), Finite(0), Finite(1), Unreachable},
		{Finite(2), Finite(1), Finite(0), Unreachable},
		{Unreachable, Unreachable, Unreachable, Finite(0)},
	}
	if !reflect.DeepEqual(m.Distances, want) {
		t.Errorf("Distances = %v, want %v", m.Distances, want)
	}

	capped := m.Capped(0)
	if capped[0][3] != DefaultCap || capped[0][2] != 2 {
		t.Errorf("Capped(0) row 0 = %v", capped[0])
	}
	if m.Capped(1)[0][2] != 1 {
		t.Error("Capped(1) should clip finite distances above the limit")
	}

	wantDisc := []Pair{{"cat", "zzz"}, {"cut", "zzz"}, {"cute", "zzz"}}
	if got := m.Disconnected(); !reflect.DeepEqual(got, wantDisc) {
		t.Errorf("Disconnected = %v, want %v", got, wantDisc)
	}
	wantAdj := []Pair{{"cat", "cut"}, {"cut", "cute"}}
	if got := m.Adjacent(); !reflect.DeepEqual(got, wantAdj) {
		t.Errorf("Adjacent = %v, want %v", got, wantAdj)
	}
}

func TestNewMatrixCancelled(t *testing.T) {
	ix := newTestIndex(SampleWords()...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMatrix(ctx, ix, ix.Dictionary().Words(), 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("NewMatrix error = %v, want context.Canceled", err)
	}
}

func TestNewMatrixEmpty(t *testing.T) {
	m, err := NewMatrix(context.Background(), newTestIndex(), nil, 1)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	if len(m.Distances) != 0 || len(m.Disconnected()) != 0 {
		t.Error("empty matrix expected")
	}
}
