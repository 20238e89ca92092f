package domain

import "testing"

type enum interface {
	IsValid() bool
	String() string
}

func TestEnums_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value enum
		want  bool
	}{
		{"milestone ontrack", MilestoneStatusOnTrack, true},
		{"milestone atrisk", MilestoneStatusAtRisk, true},
		{"milestone done", MilestoneStatus("done"), false},
		{"milestone on-track", MilestoneStatus("on-track"), false},
		{"checklist inprogress", ChecklistStatusInProgress, true},
		{"checklist blocked", ChecklistStatus("blocked"), false},
		{"priority high", ChecklistPriorityHigh, true},
		{"priority HIGH", ChecklistPriority("HIGH"), false},
		{"letter priority urgent", LetterPriorityUrgent, true},
		{"letter priority critical", LetterPriority("critical"), false},
		{"letter status responded", LetterStatusResponded, true},
		{"letter status lost", LetterStatus("lost"), false},
		{"report type inspection", ReportTypeInspection, true},
		{"report type annual", ReportType("annual"), false},
		{"report status approved", ReportStatusApproved, true},
		{"report status empty", ReportStatus(""), false},
		{"image safety", ImageCategorySafety, true},
		{"image selfie", ImageCategory("selfie"), false},
		{"sort desc", SortOrderDesc, true},
		{"sort DESC", SortOrder("DESC"), false},
		{"nulls last", NullsOrderLast, true},
		{"mode insensitive", QueryModeInsensitive, true},
		{"mode fuzzy", QueryMode("fuzzy"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.value.IsValid(); got != tt.want {
				t.Errorf("%T(%q).IsValid() = %v, want %v", tt.value, tt.value.String(), got, tt.want)
			}
		})
	}
}

func TestMilestoneStatus_String(t *testing.T) {
	t.Parallel()
	if got := MilestoneStatusOnTrack.String(); got != "ontrack" {
		t.Errorf("got %q, want ontrack", got)
	}
}
