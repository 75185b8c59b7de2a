package search

// MatchResult is one discovered application as handed to the caller.
type MatchResult struct {
	// Title is the display name: a shortcut's file stem or a package's display name.
	Title string
	// Context is the full shortcut path or the package description.
	Context string
	// Action encodes how to launch the result later, see Action.
	Action string
}

// Origin tells the aggregator which filtering rules apply to a candidate.
type Origin int

const (
	OriginShortcut Origin = iota
	OriginPackage
	OriginPlaceholder
)

func (o Origin) String() string {
	switch o {
	case OriginShortcut:
		return "shortcut"
	case OriginPackage:
		return "package"
	case OriginPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Candidate is a result not yet filtered, sorted or deduplicated.
type Candidate struct {
	MatchResult
	Origin Origin
	// FileName is the shortcut's base name including its extension. Empty for
	// other origins.
	FileName string
}

// Placeholder builds a visible result describing a failure. Placeholders are
// never filtered out by the query.
func Placeholder(title, detail string) Candidate {
	return Candidate{
		MatchResult: MatchResult{Title: title, Context: detail},
		Origin:      OriginPlaceholder,
	}
}
