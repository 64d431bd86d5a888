// SPDX-License-Identifier: MIT

// Package seqalign is an in-memory toolkit for optimal pairwise sequence
// alignment: Needleman–Wunsch (global) and Smith–Waterman (local) over a
// user-supplied substitution table with linear gap scores.
//
// 🚀 What is in the box?
//
//	scoring/ — substitution tables: three-constant Build, precomputed FromMap,
//	           YAML scoring documents
//	align/   — DP matrix fill, global & local traceback, O(M)-memory scoring
//	report/  — identity statistics and a three-line text rendering
//	cmd/     — the seqalign command line tool
//
// ✨ Why choose seqalign?
//
//   - Deterministic – fixed tie-breaking, reproducible fixtures
//   - Cache-friendly – flat row-major tables indexed by symbol rank
//   - Sentinel errors – branch with errors.Is, no panics on user input
//
// Quick example:
//
//	t, _ := scoring.BuildString("ACGT", 5, -4, -6)
//	res, _ := align.Align("GATTACA", "GCATGCT", t, align.Global)
//	// res.X == "G-ATTACA", res.Y == "GCA-TGCT", res.Score == 0
//
//	go get github.com/katalvlaran/seqalign
package seqalign
