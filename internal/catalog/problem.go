package catalog

// Difficulty levels as used by the upstream catalog.
const (
	LevelEasy   = 1
	LevelMedium = 2
	LevelHard   = 3
)

// Problem is one entry in the problem catalog.
//
// Problems are immutable once fetched. The engine never creates, mutates,
// or destroys them; it filters and reorders a snapshot supplied by the
// fetch layer.
type Problem struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	TitleSlug string `json:"title_slug"` // normalized lowercase identifier
	Level     int    `json:"level"`      // 1=Easy 2=Medium 3=Hard
	Done      bool   `json:"done"`
	Locked    bool   `json:"locked"`
	Starred   bool   `json:"starred"`
}

// LevelName returns the display name for a difficulty level.
//
// An out-of-range level is a data-quality defect in the upstream catalog,
// not an error here: it renders as "UnknownLevel" and the listing goes on.
func LevelName(level int) string {
	switch level {
	case LevelEasy:
		return "Easy"
	case LevelMedium:
		return "Medium"
	case LevelHard:
		return "Hard"
	default:
		return "UnknownLevel"
	}
}
