// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantsString(t *testing.T) {
	assert.Equal(t, "TonalSpot", TonalSpot.String())
	assert.Equal(t, "FruitSalad", FruitSalad.String())
	assert.Equal(t, "100", Variants(100).String())
	assert.Len(t, VariantsValues(), int(VariantsN))
	assert.NotEmpty(t, Fidelity.Desc())
}

func TestVariantsSetString(t *testing.T) {
	var v Variants
	assert.NoError(t, v.SetString("Expressive"))
	assert.Equal(t, Expressive, v)
	assert.Error(t, v.SetString("Bogus"))

	b, err := Rainbow.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Rainbow", string(b))
	assert.NoError(t, v.UnmarshalText([]byte("Content")))
	assert.Equal(t, Content, v)
}
