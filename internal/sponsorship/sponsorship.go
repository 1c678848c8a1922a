// Package sponsorship decides whether a listing is currently promoted and orders
// listings accordingly. Expiry is computed on every read and never written back.
package sponsorship

import (
	"sort"
	"time"

	"github.com/amarjela/district-backend/internal/models"
)

// Effective reports whether a sponsorship flag is still in force at now. An unset
// expiry means sponsored indefinitely; the expiry instant itself still counts.
func Effective(isSponsored bool, sponsoredUntil *time.Time, now time.Time) bool {
	if !isSponsored {
		return false
	}
	if sponsoredUntil == nil {
		return true
	}
	return !now.After(*sponsoredUntil)
}

func EffectiveFor(item *models.ContentItem, now time.Time) bool {
	return Effective(item.IsSponsored, item.SponsoredUntil, now)
}

// SortForDisplay orders items in place: effectively sponsored first, then newest first.
// Every listing surface goes through here.
func SortForDisplay(items []models.ContentItem, now time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		si, sj := EffectiveFor(&items[i], now), EffectiveFor(&items[j], now)
		if si != sj {
			return si
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
