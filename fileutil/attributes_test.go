// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesNativeValues(t *testing.T) {
	assert.Equal(t, Attributes(1), ReadOnly)
	assert.Equal(t, Attributes(2), Hidden)
	assert.Equal(t, Attributes(128), Normal)
}

func TestAttributesHas(t *testing.T) {
	set := Hidden | ReadOnly

	assert.True(t, set.Has(Hidden))
	assert.True(t, set.Has(ReadOnly))
	assert.True(t, set.Has(Hidden|ReadOnly))
	assert.False(t, set.Has(Normal))
	assert.False(t, set.Has(Normal|Hidden))
	assert.False(t, set.Has(0), "empty query is never present")
}

func TestAttributesListDeclaredOrder(t *testing.T) {
	tests := []struct {
		name string
		set  Attributes
		want []Attributes
	}{
		{"empty", 0, []Attributes{}},
		{"read only", ReadOnly, []Attributes{ReadOnly}},
		{"all", ReadOnly | Normal | Hidden, []Attributes{Normal, Hidden, ReadOnly}},
		{"unknown bits ignored", Hidden | 0x20, []Attributes{Hidden}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.List())
		})
	}
}

func TestAttributesString(t *testing.T) {
	assert.Equal(t, "None", Attributes(0).String())
	assert.Equal(t, "Hidden|ReadOnly", (ReadOnly | Hidden).String())
	assert.Equal(t, "Normal", Normal.String())
	assert.Equal(t, "Hidden|0x20", (Hidden | 0x20).String())
}

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		input   string
		want    Attributes
		wantErr bool
	}{
		{"", 0, false},
		{"none", 0, false},
		{"hidden", Hidden, false},
		{"Hidden|ReadOnly", Hidden | ReadOnly, false},
		{"read-only, normal", ReadOnly | Normal, false},
		{"read_only", ReadOnly, false},
		{" HIDDEN | hidden ", Hidden, false},
		{"archive", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAttributes(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAttributesRoundTripsString(t *testing.T) {
	for _, set := range []Attributes{Normal, Hidden, ReadOnly, Hidden | ReadOnly} {
		got, err := ParseAttributes(set.String())
		require.NoError(t, err)
		assert.Equal(t, set, got)
	}
}
