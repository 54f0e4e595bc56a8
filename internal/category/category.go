// Package category holds the fixed issue/product category vocabulary.
// The set is closed by policy: the classifier, the catalog, and issue
// validation all agree on these six names.
package category

// Fallback is substituted whenever automated categorization is
// unavailable or returns something outside the closed set.
const Fallback = "General Maintenance"

// Subcategories maps each category to its subcategory choices.
var Subcategories = map[string][]string{
	"Electrical":          {"Power Outage", "Flickering Lights", "Exposed Wires", "Faulty Outlet"},
	"Plumbing":            {"Leaking Pipe", "Clogged Drain", "No Water", "Sewer Backup"},
	"Waste Management":    {"Overflowing Bin", "Illegal Dumping", "Missed Collection"},
	"Structural":          {"Pothole", "Cracked Sidewalk", "Damaged Fence", "Broken Signage"},
	"IT/Connectivity":     {"No Wi-Fi", "Slow Internet", "Network Down", "Faulty Equipment"},
	Fallback:              {"Graffiti", "Overgrown Landscaping", "Broken Bench", "Other"},
}

// Names returns the category names in a stable order.
func Names() []string {
	return []string{
		"Electrical",
		"Plumbing",
		"Waste Management",
		"Structural",
		"IT/Connectivity",
		Fallback,
	}
}

// Valid reports whether name is a member of the closed category set.
func Valid(name string) bool {
	_, ok := Subcategories[name]
	return ok
}

// ValidSubcategory reports whether sub belongs to the given category.
func ValidSubcategory(categoryName, sub string) bool {
	for _, s := range Subcategories[categoryName] {
		if s == sub {
			return true
		}
	}
	return false
}
