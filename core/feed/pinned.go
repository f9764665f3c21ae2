package feed

import "feedscout/core/domain"

// FilterPinned strips the leading run of entries whose timestamps are not
// in descending order. Platforms keep pinned posts at the head of the
// listing regardless of age, so the head is trimmed until the first
// remaining entry is genuinely the newest. Inversions deeper in the list
// are left alone; only the head entry is consumed by callers.
//
// Lists with fewer than two entries are returned unchanged.
func FilterPinned(items []domain.Item) []domain.Item {
	for len(items) >= 2 {
		first, second := items[0].Published, items[1].Published
		if first == nil || second == nil || first.Before(*second) {
			items = items[1:]
			continue
		}
		break
	}
	return items
}
