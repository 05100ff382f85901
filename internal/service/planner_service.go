package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/course-scheduler/internal/dto"
	"github.com/noah-isme/course-scheduler/internal/scheduler"
	appErrors "github.com/noah-isme/course-scheduler/pkg/errors"
)

// PlannerConfig governs PlannerService behaviour.
type PlannerConfig struct {
	DefaultK    int
	MaxK        int
	Deadline    time.Duration
	ProposalTTL time.Duration
}

// PlannerService orchestrates a schedule search: it validates the request,
// delegates to the scheduler core, records search metrics, and retains the
// resulting proposal for short-lived retrieval.
type PlannerService struct {
	driver    *scheduler.Driver
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	store     *proposalStore
	cfg       PlannerConfig
}

// NewPlannerService builds a planner over the given Driver, filling in
// defaults for zero-valued config fields.
func NewPlannerService(driver *scheduler.Driver, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cfg PlannerConfig) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultK <= 0 {
		cfg.DefaultK = 10
	}
	if cfg.MaxK <= 0 {
		cfg.MaxK = 50
	}
	if cfg.Deadline <= 0 {
		cfg.Deadline = 90 * time.Second
	}
	return &PlannerService{
		driver:    driver,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		store:     newProposalStore(cfg.ProposalTTL),
		cfg:       cfg,
	}
}

// Generate validates the request, searches for feasible schedules, and
// retains the response under a fresh proposal ID for later retrieval.
func (p *PlannerService) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	if err := p.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule generation payload")
	}

	prefs := scheduler.Preferences{
		PreferredTime: scheduler.PreferredTime(req.Preferences.PreferredTime),
		TimeWeight:    req.Preferences.TimeWeight,
		PreferredDays: req.Preferences.PreferredDays,
		DayWeight:     req.Preferences.DayWeight,
	}
	if err := prefs.Validate(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidWeights.Code, appErrors.ErrInvalidWeights.Status, "invalid schedule preferences")
	}

	k := req.K
	if k <= 0 {
		k = p.cfg.DefaultK
	}
	if k > p.cfg.MaxK {
		k = p.cfg.MaxK
	}

	courses := make([]scheduler.CourseCode, len(req.Courses))
	for i, c := range req.Courses {
		courses[i] = scheduler.CourseCode(c)
	}
	breaks := make([]scheduler.Break, len(req.Breaks))
	for i, b := range req.Breaks {
		breaks[i] = scheduler.Break{Begin: scheduler.TimeOfDay(b.BeginMinutes), End: scheduler.TimeOfDay(b.EndMinutes)}
	}

	deadline := p.cfg.Deadline
	if req.DeadlineMS != nil {
		deadline = time.Duration(*req.DeadlineMS) * time.Millisecond
	}

	start := time.Now()
	outcome, err := p.driver.Search(ctx, scheduler.Request{
		Term:        req.Term,
		Courses:     courses,
		Breaks:      breaks,
		Preferences: prefs,
		K:           k,
		Deadline:    deadline,
	})
	duration := time.Since(start)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "schedule search failed")
	}
	p.metrics.ObserveSearch(duration, outcome.SchedulesConsidered, outcome.Status == scheduler.StatusTimedOut)

	missing := make([]string, len(outcome.Missing))
	for i, c := range outcome.Missing {
		missing[i] = string(c)
	}

	resp := &dto.GenerateScheduleResponse{
		ProposalID:          uuid.NewString(),
		Status:              string(outcome.Status),
		Schedules:           toProposals(outcome.Schedules),
		SchedulesConsidered: outcome.SchedulesConsidered,
		MissingCourses:      missing,
	}
	p.store.Save(*resp)
	return resp, nil
}

// Get retrieves a previously generated proposal by ID, if it has not
// expired.
func (p *PlannerService) Get(id string) (*dto.GenerateScheduleResponse, error) {
	resp, ok := p.store.Get(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "proposal not found or expired")
	}
	return &resp, nil
}

func toProposals(schedules []scheduler.ScoredSchedule) []dto.ScheduleProposal {
	proposals := make([]dto.ScheduleProposal, len(schedules))
	for i, s := range schedules {
		assignments := make([]dto.SectionAssignment, 0, len(s.Schedule))
		for course, crn := range s.Schedule {
			section := s.Sections[crn]
			assignments = append(assignments, dto.SectionAssignment{
				CourseCode: string(course),
				CRN:        int(crn),
				Professor:  section.Professor,
				Modality:   section.Modality,
			})
		}
		proposals[i] = dto.ScheduleProposal{Score: s.Score, Assignments: assignments}
	}
	return proposals
}
