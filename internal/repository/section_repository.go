package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-scheduler/internal/models"
)

// SectionWithMeetings is one section row joined with its weekly meeting
// slots, the shape the catalog adapter needs to build scheduler.Section
// values without a second round trip per course.
type SectionWithMeetings struct {
	models.Section
	Meetings []models.MeetingTime
}

// SectionRepository loads course sections and their meeting times for a
// term from Postgres.
type SectionRepository struct {
	db *sqlx.DB
}

// NewSectionRepository constructs a section repository.
func NewSectionRepository(db *sqlx.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// ListByCourses returns, for a term, every section offered for any of the
// requested course codes, keyed by course code.
func (r *SectionRepository) ListByCourses(ctx context.Context, term string, courses []string) (map[string][]SectionWithMeetings, error) {
	if len(courses) == 0 {
		return map[string][]SectionWithMeetings{}, nil
	}

	placeholders := make([]string, len(courses))
	args := make([]interface{}, 0, len(courses)+1)
	args = append(args, term)
	for i, course := range courses {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, course)
	}

	query := fmt.Sprintf(`SELECT crn, course_code, class_type, modality, credit_hours, professor, location, avg_gpa, term, created_at, updated_at
		FROM sections WHERE term = $1 AND course_code IN (%s) ORDER BY course_code, crn`, strings.Join(placeholders, ", "))

	var sections []models.Section
	if err := r.db.SelectContext(ctx, &sections, query, args...); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	if len(sections) == 0 {
		return map[string][]SectionWithMeetings{}, nil
	}

	crns := make([]interface{}, 0, len(sections))
	crnPlaceholders := make([]string, len(sections))
	for i, s := range sections {
		crnPlaceholders[i] = fmt.Sprintf("$%d", i+1)
		crns = append(crns, s.CRN)
	}
	meetingQuery := fmt.Sprintf(`SELECT id, crn, days, begin_minutes, end_minutes FROM meeting_times WHERE crn IN (%s)`, strings.Join(crnPlaceholders, ", "))
	var meetings []models.MeetingTime
	if err := r.db.SelectContext(ctx, &meetings, meetingQuery, crns...); err != nil {
		return nil, fmt.Errorf("list meeting times: %w", err)
	}

	meetingsByCRN := make(map[int][]models.MeetingTime, len(sections))
	for _, m := range meetings {
		meetingsByCRN[m.CRN] = append(meetingsByCRN[m.CRN], m)
	}

	result := make(map[string][]SectionWithMeetings)
	for _, s := range sections {
		result[s.CourseCode] = append(result[s.CourseCode], SectionWithMeetings{Section: s, Meetings: meetingsByCRN[s.CRN]})
	}
	return result, nil
}
