// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the interactive sign-in flow. Screens live under
// models/views, reusable parts under models/components and models/helpers.
// The code entry itself is implemented UI-independently in core/codeinput.
package tui
