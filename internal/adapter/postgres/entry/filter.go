package entry

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// whereFilter translates the non-pagination criteria of f into a predicate.
// From and To are inclusive.
func whereFilter(f domain.EntryFilter) sq.And {
	where := sq.And{sq.Eq{"user_id": f.OwnerID}}

	if f.From != nil {
		where = append(where, sq.GtOrEq{"consumed_at": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.LtOrEq{"consumed_at": *f.To})
	}
	if f.MealTypeNone {
		where = append(where, sq.Eq{"meal_type": nil})
	} else if f.MealType != nil {
		where = append(where, sq.Eq{"meal_type": string(*f.MealType)})
	}
	if f.Source != nil {
		where = append(where, sq.Eq{"source": string(*f.Source)})
	}
	return where
}

// orderBy returns the ORDER BY clause; newest first unless ascending is requested.
// Ties on consumed_at fall back to creation order, then id, for stable pages.
func orderBy(f domain.EntryFilter) string {
	if f.Ascending() {
		return "consumed_at ASC, created_at ASC, id ASC"
	}
	return "consumed_at DESC, created_at DESC, id DESC"
}

func paginate(b sq.SelectBuilder, f domain.EntryFilter) sq.SelectBuilder {
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	return b
}
