// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import "time"

// dateFormat is the external contract's date rendering.
const dateFormat = "2006-01-02"

// formatDate renders a date as YYYY-MM-DD, empty string for missing dates.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

// FormatRecommendations converts ranked fundings into the external API
// contract: field names renamed, dates rendered as strings, and each item
// enriched with its distinct tag names and image URLs. Missing
// associations produce empty lists, never null.
func FormatRecommendations(scored []ScoredFunding, memberships []TagMembership, images []FundingImage) []Recommendation {
	tagsByFunding := make(map[int][]string)
	tagSeen := make(map[int]map[string]struct{})
	for _, m := range memberships {
		set, ok := tagSeen[m.FundingID]
		if !ok {
			set = make(map[string]struct{})
			tagSeen[m.FundingID] = set
		}
		if _, dup := set[m.TagName]; dup {
			continue
		}
		set[m.TagName] = struct{}{}
		tagsByFunding[m.FundingID] = append(tagsByFunding[m.FundingID], m.TagName)
	}

	imagesByFunding := make(map[int][]ImageRef)
	for _, img := range images {
		imagesByFunding[img.FundingID] = append(imagesByFunding[img.FundingID], ImageRef{ImageURL: img.URL})
	}

	out := make([]Recommendation, len(scored))
	for i, sf := range scored {
		f := sf.Funding

		tags := tagsByFunding[f.ID]
		if tags == nil {
			tags = []string{}
		}
		imgs := imagesByFunding[f.ID]
		if imgs == nil {
			imgs = []ImageRef{}
		}

		out[i] = Recommendation{
			FundingID:   f.ID,
			ProductID:   f.ProductID,
			StoreID:     f.StoreID,
			FundingType: f.FundingType,
			FundingName: f.Name,
			FundingDesc: f.Desc,
			StartDate:   formatDate(f.StartDate),
			EndDate:     formatDate(f.EndDate),
			SalePrice:   f.SalePrice,
			TargetQty:   f.TargetQty,
			MaxQty:      f.MaxQty,
			CurrentQty:  f.CurrentQty,
			PerQty:      f.PerQty,
			Status:      f.Status,
			CreatedAt:   formatDate(f.CreatedAt),
			TagList:     tags,
			Images:      imgs,
			StoreName:   f.StoreName,
			Price:       f.Price,
			AvgRating:   f.AvgRating,
			ReviewCnt:   f.ReviewCnt,
			Score:       sf.Score,
		}
	}
	return out
}
