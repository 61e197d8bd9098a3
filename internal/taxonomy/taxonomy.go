// Package taxonomy resolves the set of classifiable home-service categories.
//
// The taxonomy is mutable: categories live in a database table and are
// re-resolved per request (optionally behind a short TTL cache). Loading
// never fails outward — any source failure degrades to the built-in
// default set.
package taxonomy

import "strings"

// Category is one classifiable service type.
//
// DisplayName and Slug are stable identifiers. Hypothesis is a
// classifier-facing artifact and may change whenever the underlying label
// metadata changes; within one snapshot hypothesis values are unique.
type Category struct {
	Hypothesis  string
	DisplayName string
	Slug        string
}

// Defaults returns the built-in taxonomy used whenever the data source
// yields no usable categories.
func Defaults() []Category {
	return []Category{
		{Hypothesis: "Plumbing repair service", DisplayName: "Plumbing Services", Slug: "plumbing"},
		{Hypothesis: "Electrical installation or repair service", DisplayName: "Electrical & Lighting", Slug: "electrical"},
		{Hypothesis: "Home cleaning service", DisplayName: "Home Cleaning Services", Slug: "cleaning"},
		{Hypothesis: "Air conditioner or heating repair service", DisplayName: "AC & Heating Repair", Slug: "hvac"},
		{Hypothesis: "Furniture repair or carpentry service", DisplayName: "Carpentry & Woodwork", Slug: "carpentry"},
		{Hypothesis: "Wall painting or home painting service", DisplayName: "Painting Services", Slug: "painting"},
	}
}

// SlugFor derives the default slug for a category name.
func SlugFor(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// SynthesizeHypothesis builds a hypothesis string for categories whose
// source record carries no explicit one.
func SynthesizeHypothesis(name string) string {
	return "This request is about " + strings.ToLower(strings.TrimSpace(name)) + " work and related repair services"
}
