// Package catalog holds the static reference tables the service is built
// around: expression functions, query recipes, and connected systems. The
// tables are compiled in; the vector corpus derived from them lives in the
// document store and is maintained by the ingestion pipeline.
package catalog

import "strings"

// Function is one expression function reference entry.
type Function struct {
	Name        string `json:"name"`
	Syntax      string `json:"syntax"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	DocURL      string `json:"docUrl,omitempty"`
}

// Recipe is a copy-pasteable expression snippet.
type Recipe struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Category    string `json:"category"`
}

// ConnectedSystem is an external system integration reference entry.
type ConnectedSystem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DocURL      string `json:"docUrl,omitempty"`
}

// Lookup returns the function entry whose name matches exactly, or nil.
// Semantic results are enriched through this: a parsed result name that hits
// the catalog gets its syntax, example, and doc link attached.
func Lookup(name string) *Function {
	for i := range Functions {
		if Functions[i].Name == name {
			return &Functions[i]
		}
	}
	return nil
}

// FilterFunctions returns functions matching the category ("all" or "" for
// any) and a case-insensitive substring query over name, description, and
// syntax.
func FilterFunctions(category, query string) []Function {
	q := strings.ToLower(query)
	var out []Function
	for _, fn := range Functions {
		if !categoryMatches(category, fn.Category) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(fn.Name), q) &&
			!strings.Contains(strings.ToLower(fn.Description), q) &&
			!strings.Contains(strings.ToLower(fn.Syntax), q) {
			continue
		}
		out = append(out, fn)
	}
	return out
}

// FilterRecipes returns recipes matching the category and a case-insensitive
// substring query over title, description, and code.
func FilterRecipes(category, query string) []Recipe {
	q := strings.ToLower(query)
	var out []Recipe
	for _, r := range Recipes {
		if !categoryMatches(category, r.Category) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Title), q) &&
			!strings.Contains(strings.ToLower(r.Description), q) &&
			!strings.Contains(strings.ToLower(r.Code), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func categoryMatches(want, have string) bool {
	return want == "" || want == "all" || want == have
}
