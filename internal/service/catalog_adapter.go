package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/noah-isme/course-scheduler/internal/repository"
	"github.com/noah-isme/course-scheduler/internal/scheduler"
)

// sectionSource is the read path the catalog adapter needs, satisfied by
// both repository.SectionRepository and repository.CachedSectionRepository.
type sectionSource interface {
	ListByCourses(ctx context.Context, term string, courses []string) (map[string][]repository.SectionWithMeetings, error)
}

// CatalogAdapter implements scheduler.CatalogProvider over a section
// source, translating persisted row shapes into the core's value types at
// the boundary.
type CatalogAdapter struct {
	source sectionSource
}

// NewCatalogAdapter builds an adapter over the given section source.
func NewCatalogAdapter(source sectionSource) *CatalogAdapter {
	return &CatalogAdapter{source: source}
}

// Fetch resolves requested course codes to candidate scheduler.Section
// values for the given term, and reports which requested courses came back
// with zero sections.
func (a *CatalogAdapter) Fetch(ctx context.Context, term string, courses []scheduler.CourseCode) (map[scheduler.CourseCode][]scheduler.Section, []scheduler.CourseCode, error) {
	codes := make([]string, len(courses))
	for i, c := range courses {
		codes[i] = string(c)
	}

	rows, err := a.source.ListByCourses(ctx, term, codes)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch catalog: %w", err)
	}

	result := make(map[scheduler.CourseCode][]scheduler.Section, len(rows))
	for course, sections := range rows {
		if len(sections) == 0 {
			continue
		}
		converted := make([]scheduler.Section, 0, len(sections))
		for _, row := range sections {
			meetings := make([]scheduler.MeetingTime, 0, len(row.Meetings))
			for _, m := range row.Meetings {
				mt, mtErr := scheduler.NewMeetingTime(
					scheduler.CRN(m.CRN),
					strings.Split(m.Days, ","),
					scheduler.TimeOfDay(m.BeginMins),
					scheduler.TimeOfDay(m.EndMins),
				)
				if mtErr != nil {
					return nil, nil, fmt.Errorf("section %d: %w", row.CRN, mtErr)
				}
				meetings = append(meetings, mt)
			}
			converted = append(converted, scheduler.Section{
				CRN:         scheduler.CRN(row.CRN),
				CourseCode:  scheduler.CourseCode(row.CourseCode),
				ClassType:   row.ClassType,
				Modality:    row.Modality,
				CreditHours: row.CreditHours,
				Professor:   row.Professor,
				Location:    row.Location,
				AvgGPA:      row.AvgGPA,
				Meetings:    meetings,
			})
		}
		result[scheduler.CourseCode(course)] = converted
	}

	var missing []scheduler.CourseCode
	for _, c := range courses {
		if _, ok := result[c]; !ok {
			missing = append(missing, c)
		}
	}
	return result, missing, nil
}
