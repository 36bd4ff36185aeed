// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package random provides the injectable random source used by the draw
// engine and the group generator, a Fisher-Yates shuffle and uniform picks.
package random
