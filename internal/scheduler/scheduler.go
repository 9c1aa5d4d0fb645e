package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/squadbot/internal/service"
)

// Reports is the subset of the squad service the scheduled jobs publish.
type Reports interface {
	TeamReport() string
	TopPerformersReport() string
}

var _ Reports = (*service.SquadService)(nil)

type Scheduler struct {
	s           gocron.Scheduler
	reports     Reports
	sendMessage func(string) error
}

func NewScheduler(reports Reports, sendMessage func(string) error, location *time.Location) (*Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		reports:     reports,
		sendMessage: sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	// Team report - Monday 8:00
	_, err := s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(s.sendTeamReport),
		gocron.WithName("team-report"),
	)
	if err != nil {
		return fmt.Errorf("failed to create team report job: %w", err)
	}

	// Top performers - Friday 8:00
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Friday), gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(s.sendTopPerformers),
		gocron.WithName("top-performers"),
	)
	if err != nil {
		return fmt.Errorf("failed to create top performers job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// Jobs lists the registered job names.
func (s *Scheduler) Jobs() []string {
	jobs := s.s.Jobs()
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.Name()
	}
	return names
}

func (s *Scheduler) sendTeamReport() {
	s.send("team report", s.reports.TeamReport())
}

func (s *Scheduler) sendTopPerformers() {
	s.send("top performers", s.reports.TopPerformersReport())
}

func (s *Scheduler) send(name, report string) {
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send scheduled report", "report", name, "error", err)
		return
	}
	slog.Info("Sent scheduled report", "report", name)
}
