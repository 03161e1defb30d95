// Package emit renders analysis results into diagram descriptions
// (C4 PlantUML, Structurizr DSL) and Markdown/HTML/JSON reports.
package emit

// sampleLimit bounds how many component names are listed per category in
// reports and diagrams before truncating with an "...and N more" suffix.
const sampleLimit = 8

// Detail selects the report depth.
type Detail string

const (
	DetailBrief     Detail = "brief"
	DetailDeep      Detail = "deep"
	DetailValidated Detail = "validated"
)

// take returns at most n leading elements and the count left over.
func take[T any](items []T, n int) ([]T, int) {
	if len(items) <= n {
		return items, 0
	}
	return items[:n], len(items) - n
}
