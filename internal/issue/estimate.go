package issue

// EstimateResolution is a fixed display-time lookup, not a live SLA:
// rural issues are prioritized faster by policy.
func EstimateResolution(lc LocationClass, st Status) string {
	if st == StatusResolved {
		return "Resolved"
	}
	if lc == LocationUrban {
		return "Est. 2 days"
	}
	return "Est. 2-4 hours"
}
