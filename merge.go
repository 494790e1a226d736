package adgen

import "slices"

// MinBlocksForAds is the smallest page that receives inline ads. Shorter
// pages would be dominated by them.
const MinBlocksForAds = 3

// MergedBlock is either an original content block or an injected ad.
type MergedBlock struct {
	IsAd   bool
	Block  ContentBlock
	Markup string
}

// Merge splices ads into blocks at the one-third and two-thirds marks of the
// original sequence. Positions are filled from the later to the earlier so
// the earlier index stays valid: ads[0] lands at 2n/3 and ads[1] at n/3.
// Pages with fewer than MinBlocksForAds blocks are returned without ads.
func Merge(blocks []ContentBlock, ads []Ad) []MergedBlock {
	merged := make([]MergedBlock, 0, len(blocks)+2)
	for _, b := range blocks {
		merged = append(merged, MergedBlock{Block: b})
	}
	if len(blocks) < MinBlocksForAds {
		return merged
	}

	positions := []int{len(blocks) * 2 / 3, len(blocks) / 3}
	for i, pos := range positions {
		if i >= len(ads) {
			break
		}
		ad := MergedBlock{IsAd: true, Markup: ads[i].Markup()}
		merged = slices.Insert(merged, pos, ad)
	}
	return merged
}

// CountAds returns the number of ads in merged.
func CountAds(merged []MergedBlock) int {
	var n int
	for _, m := range merged {
		if m.IsAd {
			n++
		}
	}
	return n
}
