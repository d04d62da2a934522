// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import (
	"math"
	"time"
)

// DaysLeft returns the whole days remaining until the deadline, clamped
// to zero. A zero (missing) end date yields 0.
func DaysLeft(endDate, now time.Time) int {
	if endDate.IsZero() {
		return 0
	}
	days := int(math.Floor(endDate.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// UrgencyScore converts remaining days into a decaying score: 1 at zero
// days left, approaching 0 for far-future deadlines.
func UrgencyScore(daysLeft int) float64 {
	return 1.0 / (1.0 + float64(daysLeft))
}
