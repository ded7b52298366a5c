package postgres

import (
	"context"
	"strings"

	"catalog/internal/domain/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyFilter translates a query.Filter into WHERE conditions. Column names come from
// the resource schemas, never from the request.
func applyFilter(db *gorm.DB, filter query.Filter) *gorm.DB {
	if search := filter.Search; search != nil {
		switch search.Mode {
		case query.SearchTextIndex:
			db = db.Where(clause.Expr{
				SQL:  "? @@ plainto_tsquery('simple', ?)",
				Vars: []any{clause.Column{Name: search.TextIndex}, search.Term},
			})
		case query.SearchColumns:
			pattern := "%" + likeEscaper.Replace(search.Term) + "%"
			exprs := make([]clause.Expression, 0, len(search.Columns))
			for _, column := range search.Columns {
				exprs = append(exprs, clause.Expr{
					SQL:  "? ILIKE ?",
					Vars: []any{clause.Column{Name: column}, pattern},
				})
			}
			if len(exprs) > 0 {
				db = db.Where(clause.Or(exprs...))
			}
		}
	}

	for _, cond := range filter.Conditions {
		db = db.Where(clause.Eq{Column: clause.Column{Name: cond.Column}, Value: cond.Value})
	}

	return db
}

// listPage counts every row matching filter and loads the requested page of them.
// Pages past the end skip the second query.
func listPage[M any](ctx context.Context, db *gorm.DB, filter query.Filter, page query.Page) ([]M, int64, error) {
	base := applyFilter(db.WithContext(ctx).Model(new(M)), filter).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count rows")
	}

	rows := []M{}
	if total == 0 || int64(page.Offset()) >= total {
		return rows, total, nil
	}

	sort := filter.Sort
	if sort == "" {
		sort = query.DefaultSort
	}

	if err := base.Order(sort).Order("id").Limit(page.Limit).Offset(page.Offset()).Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list rows")
	}

	return rows, total, nil
}
