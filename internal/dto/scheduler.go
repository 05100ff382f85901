package dto

// BreakRequest is a user-declared window in which no class may start.
type BreakRequest struct {
	BeginMinutes int `json:"beginMinutes" validate:"min=0,max=1439"`
	EndMinutes   int `json:"endMinutes" validate:"min=0,max=1439,gtefield=BeginMinutes"`
}

// PreferencesRequest carries the caller's time-of-day and day-of-week
// weighting for ranking candidate schedules.
type PreferencesRequest struct {
	PreferredTime string   `json:"preferredTime" validate:"required,oneof=morning afternoon evening"`
	TimeWeight    float64  `json:"timeWeight" validate:"min=0,max=1"`
	PreferredDays []string `json:"preferredDays" validate:"omitempty,dive,oneof=M T W R F S U"`
	DayWeight     float64  `json:"dayWeight" validate:"min=0,max=1"`
}

// GenerateScheduleRequest requests the best K feasible weekly schedules for
// a set of courses under the given breaks and preferences. DeadlineMS, when
// set, overrides the server's configured search deadline for this request
// alone; a caller may pass 0 to force an immediate TimedOut outcome.
type GenerateScheduleRequest struct {
	Term        string             `json:"term" validate:"required"`
	Courses     []string           `json:"courses" validate:"required,min=1,max=8,dive,required"`
	Breaks      []BreakRequest     `json:"breaks" validate:"omitempty,dive"`
	Preferences PreferencesRequest `json:"preferences" validate:"required"`
	K           int                `json:"k" validate:"omitempty,min=1,max=50"`
	DeadlineMS  *int               `json:"deadlineMs" validate:"omitempty,min=0"`
}

// SectionAssignment is one course's assigned section within a proposed
// schedule.
type SectionAssignment struct {
	CourseCode string `json:"courseCode"`
	CRN        int    `json:"crn"`
	Professor  string `json:"professor"`
	Modality   string `json:"modality"`
}

// ScheduleProposal is one ranked candidate schedule.
type ScheduleProposal struct {
	Score       float64             `json:"score"`
	Assignments []SectionAssignment `json:"assignments"`
}

// GenerateScheduleResponse returns the ranked schedules found and how the
// search concluded.
type GenerateScheduleResponse struct {
	ProposalID          string             `json:"proposalId"`
	Status              string             `json:"status"`
	Schedules           []ScheduleProposal `json:"schedules"`
	SchedulesConsidered uint64             `json:"schedulesConsidered"`
	MissingCourses      []string           `json:"missingCourses"`
}
