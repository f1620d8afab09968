package engine

import (
	"sort"
	"strconv"

	"github.com/industash/industash/dataset"
)

// ============================================================================
// AGGREGATION — group-by-then-reduce over a (possibly filtered) Table
// ============================================================================
// Pipeline: resolve columns → bucket rows by key → reduce → order buckets.
// Key order is deterministic: numeric ascending for numeric key columns,
// lexicographic ascending otherwise. Groups without records never appear.
// All functions are pure; the only error is a SchemaError for a missing or
// mistyped column.
// ============================================================================

// Bucket is one grouping key with its aggregated value.
type Bucket struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Aggregation is an ordered sequence of buckets in ascending key order.
type Aggregation []Bucket

// Keys returns the bucket keys in order.
func (a Aggregation) Keys() []string {
	keys := make([]string, len(a))
	for i, b := range a {
		keys[i] = b.Key
	}
	return keys
}

// GroupSum sums valueCol per distinct value of keyCol.
func GroupSum(t *dataset.Table, keyCol, valueCol string) (Aggregation, error) {
	return groupReduce(t, keyCol, valueCol, func(sum float64, n int) float64 {
		return sum
	})
}

// GroupMean averages valueCol per distinct value of keyCol.
func GroupMean(t *dataset.Table, keyCol, valueCol string) (Aggregation, error) {
	return groupReduce(t, keyCol, valueCol, func(sum float64, n int) float64 {
		return sum / float64(n)
	})
}

// CumulativeSum produces running totals of the per-key sums in ascending
// key order. The result has one entry per distinct key present.
func CumulativeSum(t *dataset.Table, keyCol, valueCol string) (Aggregation, error) {
	agg, err := GroupSum(t, keyCol, valueCol)
	if err != nil {
		return nil, err
	}
	var running float64
	for i := range agg {
		running += agg[i].Value
		agg[i].Value = running
	}
	return agg, nil
}

func groupReduce(t *dataset.Table, keyCol, valueCol string, reduce func(sum float64, n int) float64) (Aggregation, error) {
	key, err := keyColumn(t, keyCol)
	if err != nil {
		return nil, err
	}
	value, err := valueColumn(t, valueCol)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		sum float64
		n   int
	}
	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for i := 0; i < t.NumRows(); i++ {
		k := t.String(i, key)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
			order = append(order, k)
		}
		b.sum += t.Float(i, value)
		b.n++
	}

	sortKeys(order, t.Schema()[key].Kind)

	agg := make(Aggregation, 0, len(order))
	for _, k := range order {
		b := buckets[k]
		agg = append(agg, Bucket{Key: k, Value: reduce(b.sum, b.n)})
	}
	return agg, nil
}

// ============================================================================
// SCALAR KPIs
// ============================================================================

// Total sums valueCol over the whole table.
func Total(t *dataset.Table, valueCol string) (float64, error) {
	value, err := valueColumn(t, valueCol)
	if err != nil {
		return 0, err
	}
	var total float64
	for i := 0; i < t.NumRows(); i++ {
		total += t.Float(i, value)
	}
	return total, nil
}

// Mean is the arithmetic mean of valueCol. The second return is false for
// an empty table: the average is undefined, not zero, and the caller
// renders it as "no data".
func Mean(t *dataset.Table, valueCol string) (float64, bool, error) {
	total, err := Total(t, valueCol)
	if err != nil {
		return 0, false, err
	}
	if t.NumRows() == 0 {
		return 0, false, nil
	}
	return total / float64(t.NumRows()), true, nil
}

// LatestPeriodTotal sums valueCol over the records of the maximum year
// present in t. ok is false for an empty table.
func LatestPeriodTotal(t *dataset.Table, yearCol, valueCol string) (total float64, year int, ok bool, err error) {
	yc, err := keyColumn(t, yearCol)
	if err != nil {
		return 0, 0, false, err
	}
	if t.Schema()[yc].Kind != dataset.Int {
		return 0, 0, false, &dataset.SchemaError{Column: yearCol, Reason: "expected int values"}
	}
	vc, err := valueColumn(t, valueCol)
	if err != nil {
		return 0, 0, false, err
	}
	if t.NumRows() == 0 {
		return 0, 0, false, nil
	}

	latest := t.Int(0, yc)
	for i := 1; i < t.NumRows(); i++ {
		if y := t.Int(i, yc); y > latest {
			latest = y
		}
	}
	for i := 0; i < t.NumRows(); i++ {
		if t.Int(i, yc) == latest {
			total += t.Float(i, vc)
		}
	}
	return total, int(latest), true, nil
}

// Distinct returns the distinct values of col in ascending key order.
func Distinct(t *dataset.Table, col string) ([]string, error) {
	c, err := keyColumn(t, col)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	values := make([]string, 0)
	for i := 0; i < t.NumRows(); i++ {
		v := t.String(i, c)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sortKeys(values, t.Schema()[c].Kind)
	return values, nil
}

// ============================================================================
// COLUMN RESOLUTION + ORDERING
// ============================================================================

func keyColumn(t *dataset.Table, name string) (int, error) {
	c := t.ColumnIndex(name)
	if c < 0 {
		return -1, &dataset.SchemaError{Column: name, Reason: "not present in dataset"}
	}
	return c, nil
}

func valueColumn(t *dataset.Table, name string) (int, error) {
	c, err := keyColumn(t, name)
	if err != nil {
		return -1, err
	}
	if !t.Schema()[c].Kind.Numeric() {
		return -1, &dataset.SchemaError{Column: name, Reason: "expected numeric values"}
	}
	return c, nil
}

func sortKeys(keys []string, kind dataset.Kind) {
	if kind.Numeric() {
		sort.Slice(keys, func(i, j int) bool {
			a, _ := strconv.ParseFloat(keys[i], 64)
			b, _ := strconv.ParseFloat(keys[j], 64)
			return a < b
		})
		return
	}
	sort.Strings(keys)
}
