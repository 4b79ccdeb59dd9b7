// Package cgt computes UK capital-gains tax liability on employee equity
// award disposals, given a chronological list of vesting (acquisition) and
// sale (disposal) events.
//
// The engine implements the UK matching regime:
//   - Same-day / 30-day matching: a disposal is matched first against
//     acquisitions made on the same day or within the following 30 days.
//   - Section 104 holding: any remainder draws on the plan's running
//     average-cost pool.
//   - Corporate actions: a holding can be split into successor holdings
//     dividing its cost basis by fixed ratios on a historical date.
//
// All monetary arithmetic is exact, in integer minor units, with banker's
// rounding where a pro-rata operation produces fractional cents. Every
// transaction accumulates a structured audit log explaining how it was
// resolved, and realized gains are grouped into UK tax years (6 April to
// 5 April) for reporting.
//
// The engine's boundary is purely in-memory. Ingestion of broker exports
// lives in the stockplan package, report rendering in the renderer package,
// and the cgt command line in cmd.
package cgt
