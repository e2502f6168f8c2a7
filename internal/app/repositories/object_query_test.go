package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrolabs/skywatch/internal/app/models/dto"
)

func float64Ptr(v float64) *float64 { return &v }

func TestBuildObjectListSQLNoFilters(t *testing.T) {
	q := &dto.ObjectListQuery{Page: 1, PageSize: 10}

	sql, args, err := buildObjectListSQL(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM objects o")
	assert.Contains(t, sql, "LEFT JOIN classifications c ON c.oid = o.oid")
	assert.NotContains(t, sql, "WHERE")
	assert.NotContains(t, sql, "ORDER BY")
	// One row beyond the page size to detect the next page.
	assert.Contains(t, sql, "LIMIT 11")
	assert.Contains(t, sql, "OFFSET 0")
	assert.Empty(t, args)
}

func TestBuildObjectListSQLClassFilters(t *testing.T) {
	q := &dto.ObjectListQuery{
		Classifier: "lc_classifier",
		Class:      "SN",
		Page:       1,
		PageSize:   10,
	}

	sql, args, err := buildObjectListSQL(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "c.classifier_name = $1")
	assert.Contains(t, sql, "c.class_name = $2")
	assert.Equal(t, []interface{}{"lc_classifier", "SN"}, args)
}

func TestBuildObjectListSQLRangeLowerBoundOnly(t *testing.T) {
	q := &dto.ObjectListQuery{Ndet: []int{5}, Page: 1, PageSize: 10}

	sql, args, err := buildObjectListSQL(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "o.ndet >= $1")
	assert.NotContains(t, sql, "o.ndet <=")
	assert.Equal(t, []interface{}{5}, args)
}

func TestBuildObjectListSQLRangeBothBounds(t *testing.T) {
	q := &dto.ObjectListQuery{
		Ndet:     []int{5, 20},
		FirstMJD: []float64{58000, 58100},
		LastMJD:  []float64{58200},
		Page:     1,
		PageSize: 10,
	}

	sql, args, err := buildObjectListSQL(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "o.ndet >= $1")
	assert.Contains(t, sql, "o.ndet <= $2")
	assert.Contains(t, sql, "o.firstmjd >= $3")
	assert.Contains(t, sql, "o.firstmjd <= $4")
	assert.Contains(t, sql, "o.lastmjd >= $5")
	assert.NotContains(t, sql, "o.lastmjd <=")
	assert.Equal(t, []interface{}{5, 20, 58000.0, 58100.0, 58200.0}, args)
}

func TestBuildObjectListSQLRangeExtraValuesIgnored(t *testing.T) {
	q := &dto.ObjectListQuery{Ndet: []int{5, 20, 99}, Page: 1, PageSize: 10}

	_, args, err := buildObjectListSQL(q)
	require.NoError(t, err)

	// Only the first two values bind; the third is dropped.
	assert.Equal(t, []interface{}{5, 20}, args)
}

func TestBuildObjectListSQLProbability(t *testing.T) {
	q := &dto.ObjectListQuery{Probability: float64Ptr(0.7), Page: 1, PageSize: 10}

	sql, args, err := buildObjectListSQL(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "c.probability >= $1")
	assert.Equal(t, []interface{}{0.7}, args)
}

func TestBuildObjectListSQLConeSearch(t *testing.T) {
	q := &dto.ObjectListQuery{
		RA:       float64Ptr(120.5),
		Dec:      float64Ptr(-33.2),
		Radius:   float64Ptr(30), // arcsec
		Page:     1,
		PageSize: 10,
	}

	sql, args, err := buildObjectListSQL(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "q3c_radial_query(o.meanra, o.meandec, $1, $2, $3)")
	require.Len(t, args, 3)
	assert.Equal(t, 120.5, args[0])
	assert.Equal(t, -33.2, args[1])
	// Radius is bound in degrees.
	assert.InDelta(t, 30.0/3600.0, args[2], 1e-12)
}

func TestBuildObjectListSQLConeSearchRequiresAllThree(t *testing.T) {
	partials := []*dto.ObjectListQuery{
		{RA: float64Ptr(120.5)},
		{Radius: float64Ptr(30)},
		{RA: float64Ptr(120.5), Dec: float64Ptr(-33.2)},
		{Dec: float64Ptr(-33.2), Radius: float64Ptr(30)},
	}

	for _, q := range partials {
		q.Page, q.PageSize = 1, 10
		sql, args, err := buildObjectListSQL(q)
		require.NoError(t, err)
		assert.NotContains(t, sql, "q3c_radial_query")
		assert.Empty(t, args)
	}
}

func TestBuildObjectListSQLOrdering(t *testing.T) {
	q := &dto.ObjectListQuery{OrderBy: "ndet", OrderMode: "DESC", Page: 1, PageSize: 10}
	sql, _, err := buildObjectListSQL(q)
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY o.ndet DESC")

	q = &dto.ObjectListQuery{OrderBy: "probability", OrderMode: "ASC", Page: 1, PageSize: 10}
	sql, _, err = buildObjectListSQL(q)
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY c.probability ASC")

	// Without a direction the column keeps the database's natural order.
	q = &dto.ObjectListQuery{OrderBy: "firstmjd", Page: 1, PageSize: 10}
	sql, _, err = buildObjectListSQL(q)
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY o.firstmjd")
	assert.NotContains(t, sql, "o.firstmjd ASC")
	assert.NotContains(t, sql, "o.firstmjd DESC")
}

func TestBuildObjectListSQLUnknownOrderKeyIgnored(t *testing.T) {
	q := &dto.ObjectListQuery{OrderBy: "no_such_column", OrderMode: "DESC", Page: 1, PageSize: 10}

	sql, _, err := buildObjectListSQL(q)
	require.NoError(t, err)
	assert.NotContains(t, sql, "ORDER BY")
}

func TestBuildObjectListSQLPagination(t *testing.T) {
	q := &dto.ObjectListQuery{Page: 3, PageSize: 25}

	sql, _, err := buildObjectListSQL(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "LIMIT 26")
	assert.Contains(t, sql, "OFFSET 50")
}

func TestBuildObjectCountSQL(t *testing.T) {
	q := &dto.ObjectListQuery{
		Classifier: "stamp_classifier",
		Ndet:       []int{3},
		OrderBy:    "ndet",
		Page:       5,
		PageSize:   10,
	}

	sql, args, err := buildObjectCountSQL(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "SELECT COUNT(*)")
	assert.Contains(t, sql, "LEFT JOIN classifications c ON c.oid = o.oid")
	assert.Contains(t, sql, "c.classifier_name = $1")
	assert.Contains(t, sql, "o.ndet >= $2")
	// Counting ignores ordering and pagination.
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
	assert.NotContains(t, sql, "OFFSET")
	assert.Equal(t, []interface{}{"stamp_classifier", 3}, args)
}
