package repositories

import (
	"github.com/Masterminds/squirrel"

	"github.com/astrolabs/skywatch/internal/app/models/dto"
	"github.com/astrolabs/skywatch/internal/pkg/astro"
	"github.com/astrolabs/skywatch/internal/pkg/helpers"
)

// objectListColumns are the scanned columns of the list query: the object
// fields followed by the outer-joined classification fields.
var objectListColumns = []string{
	"o.oid", "o.ndet", "o.meanra", "o.meandec", "o.sigmara", "o.sigmadec",
	"o.deltajd", "o.firstmjd", "o.lastmjd",
	"c.classifier_name", "c.class_name", "c.probability",
}

// sortColumns maps accepted order_by keys to their qualified columns. The
// object and classification schemas share no attribute names, so the map can
// hold both without a join-order tiebreak. Keys not listed here are ignored
// and the result keeps the database's natural order.
var sortColumns = map[string]string{
	"oid":             "o.oid",
	"ndet":            "o.ndet",
	"meanra":          "o.meanra",
	"meandec":         "o.meandec",
	"sigmara":         "o.sigmara",
	"sigmadec":        "o.sigmadec",
	"deltajd":         "o.deltajd",
	"firstmjd":        "o.firstmjd",
	"lastmjd":         "o.lastmjd",
	"classifier_name": "c.classifier_name",
	"class_name":      "c.class_name",
	"probability":     "c.probability",
}

// buildObjectFilters translates the parsed arguments into conjunctive
// predicates. An absent argument contributes no predicate. Range arguments
// use their first value as an inclusive lower bound and, when present, their
// second as an inclusive upper bound; further values are ignored.
func buildObjectFilters(q *dto.ObjectListQuery) []squirrel.Sqlizer {
	var filters []squirrel.Sqlizer

	if q.Classifier != "" {
		filters = append(filters, squirrel.Eq{"c.classifier_name": q.Classifier})
	}
	if q.Class != "" {
		filters = append(filters, squirrel.Eq{"c.class_name": q.Class})
	}
	if len(q.Ndet) > 0 {
		filters = append(filters, squirrel.GtOrEq{"o.ndet": q.Ndet[0]})
		if len(q.Ndet) > 1 {
			filters = append(filters, squirrel.LtOrEq{"o.ndet": q.Ndet[1]})
		}
	}
	if len(q.FirstMJD) > 0 {
		filters = append(filters, squirrel.GtOrEq{"o.firstmjd": q.FirstMJD[0]})
		if len(q.FirstMJD) > 1 {
			filters = append(filters, squirrel.LtOrEq{"o.firstmjd": q.FirstMJD[1]})
		}
	}
	if len(q.LastMJD) > 0 {
		filters = append(filters, squirrel.GtOrEq{"o.lastmjd": q.LastMJD[0]})
		if len(q.LastMJD) > 1 {
			filters = append(filters, squirrel.LtOrEq{"o.lastmjd": q.LastMJD[1]})
		}
	}
	if q.Probability != nil {
		filters = append(filters, squirrel.GtOrEq{"c.probability": *q.Probability})
	}

	// The geometric predicate is delegated to the q3c extension. It applies
	// only when ra, dec and radius are all present; partial input disables
	// the cone search instead of erroring. q3c takes the radius in degrees,
	// the API in arcseconds.
	if q.HasConeSearch() {
		filters = append(filters, squirrel.Expr(
			"q3c_radial_query(o.meanra, o.meandec, ?, ?, ?)",
			*q.RA, *q.Dec, astro.ArcsecToDeg(*q.Radius),
		))
	}

	return filters
}

// objectListBase is the filtered outer join shared by the list and count
// queries. Objects without classifications are retained with null
// classification fields.
func objectListBase(q *dto.ObjectListQuery, columns ...string) squirrel.SelectBuilder {
	builder := squirrel.Select(columns...).
		From("objects o").
		LeftJoin("classifications c ON c.oid = o.oid").
		PlaceholderFormat(squirrel.Dollar)

	for _, filter := range buildObjectFilters(q) {
		builder = builder.Where(filter)
	}
	return builder
}

// buildObjectListSQL builds the paginated list query. It fetches one row
// beyond the page size so the caller can detect a next page without a count.
// When order_mode is absent the requested column keeps the database's
// natural direction.
func buildObjectListSQL(q *dto.ObjectListQuery) (string, []interface{}, error) {
	builder := objectListBase(q, objectListColumns...)

	if column, ok := sortColumns[q.OrderBy]; ok {
		switch q.OrderMode {
		case "ASC":
			builder = builder.OrderBy(column + " ASC")
		case "DESC":
			builder = builder.OrderBy(column + " DESC")
		default:
			builder = builder.OrderBy(column)
		}
	}

	offset, limit := helpers.OffsetLimit(q.Page, q.PageSize)
	builder = builder.Offset(offset).Limit(limit + 1)

	return builder.ToSql()
}

// buildObjectCountSQL builds the total-count query over the same filtered
// join, without ordering or pagination.
func buildObjectCountSQL(q *dto.ObjectListQuery) (string, []interface{}, error) {
	return objectListBase(q, "COUNT(*)").ToSql()
}
