// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package product defines the catalog's only entity, Product, together with
// the invariant every stored product satisfies.
//
// # Invariant
//
// A Product always has a non-empty category, a non-empty name and a strictly
// positive price. New is the only constructor that enforces this, so any
// Product obtained from New (or from a store that only accepts them) can be
// rendered and totalled without further checks.
//
// # Money
//
// Prices are decimal.Decimal values. Binary floating point is never used for
// prices or totals: repeated additions such as 0.10 + 0.20 + 0.30 must come out
// at exactly 0.60.
package product
