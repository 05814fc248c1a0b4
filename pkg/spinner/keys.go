package spinner

// Persisted store keys. All values are JSON; the mapping-valued keys are
// keyed by category name.
const (
	keyAdditions      = "spinner.additions"
	keyExclusions     = "spinner.exclusions"
	keyHistory        = "spinner.history"
	keyExcludePicked  = "spinner.settings.excludePicked"
	keyShowHistory    = "spinner.settings.showHistory"
	keyActiveCategory = "spinner.activeCategory"
)
