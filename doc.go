// Package industash is a data-exploration dashboard for industrial
// employment records.
//
// A delimited dataset is loaded once into an immutable in-memory Table;
// users filter by year, industry code, and industry category, and the
// engine computes the grouped summaries and scalar KPIs behind each
// dashboard panel. The HTTP layer hands the frontend render-ready chart,
// table, and metric payloads — all drawing happens client-side.
//
//	store := dataset.NewStore()
//	table, err := store.Open("UNdata_Export.csv")
//	binding, err := dataset.Bind(table, dataset.DefaultMapping())
//
//	filtered, err := engine.Filter(table, binding, engine.FilterSpec{
//	    Year: engine.YearEquals(2019),
//	})
//	view, err := present.TimeSeriesChart(filtered, binding)
//
// The Table is read-only after load, so any number of concurrent requests
// may share it without synchronization.
package industash
