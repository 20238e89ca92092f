package schema

import sq "github.com/Masterminds/squirrel"

const (
	usersTable           = "users"
	projectsTable        = "projects"
	budgetsTable         = "budgets"
	teamsTable           = "teams"
	milestonesTable      = "milestones"
	checklistItemsTable  = "checklist_items"
	documentsTable       = "documents"
	siteImagesTable      = "site_images"
	outgoingLettersTable = "outgoing_letters"
	incomingLettersTable = "incoming_letters"
	reportsTable         = "reports"
)

// NoNumericField is the numeric field set of models without numeric columns.
// It has no members, so any _avg or _sum selection on those models fails.
type NoNumericField string

func (NoNumericField) IsValid() bool { return false }

func (f NoNumericField) Column() string { return string(f) }

// count returns how many of the conditions hold.
func count(conds ...bool) int {
	n := 0
	for _, c := range conds {
		if c {
			n++
		}
	}
	return n
}

// touch stamps updated_at unless the update sets it explicitly.
func touch(values map[string]any) {
	if _, ok := values["updated_at"]; !ok {
		values["updated_at"] = sq.Expr("now()")
	}
}
