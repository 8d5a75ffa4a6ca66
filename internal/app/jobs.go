package app

import (
	"context"
	"fmt"

	"github.com/keshon/monday-bot/pkg/jobmgr"
)

const (
	JobMoodUpdater = "mood-updater"
	JobDailyReset  = "daily-reset"
)

// StartJobs schedules the periodic mood refresh and the daily counter reset.
func (a *App) StartJobs(m *jobmgr.Manager) error {
	if err := m.StartAsync(JobMoodUpdater, jobmgr.Every(a.Config.Bot.MoodInterval, a.refreshMood)); err != nil {
		return fmt.Errorf("start %s: %w", JobMoodUpdater, err)
	}
	if err := m.StartAsync(JobDailyReset, jobmgr.Every(a.Config.Bot.ResetInterval, a.dailyReset)); err != nil {
		return fmt.Errorf("start %s: %w", JobDailyReset, err)
	}
	return nil
}

func (a *App) refreshMood(context.Context) {
	if changed, level := a.Mood.Refresh(); changed {
		a.Logger.Info().Str("mood", string(level)).Msg("mood changed")
	}
}

func (a *App) dailyReset(context.Context) {
	a.Mood.Reset()
	a.Logger.Info().Msg("daily stats reset")
}
