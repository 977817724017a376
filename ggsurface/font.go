// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the point size of the fallback face.
const DefaultFontSize = 12

var (
	goRegularOnce sync.Once
	goRegular     *text.FontSource
	goRegularErr  error
)

// DefaultFace returns a Go Regular face of the given size. The font source
// is parsed once and shared.
func DefaultFace(size float64) (text.Face, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = text.NewFontSource(goregular.TTF)
	})
	if goRegularErr != nil {
		return nil, fmt.Errorf("ggsurface: load Go Regular: %w", goRegularErr)
	}
	return goRegular.Face(size), nil
}
