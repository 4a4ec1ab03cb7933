// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"log/slog"

	"github.com/gogpu/mesh2d"
)

// slogger returns the shared mesh2d logger. The render package shares the
// root package's logger configuration instead of carrying its own.
func slogger() *slog.Logger { return mesh2d.Logger() }
