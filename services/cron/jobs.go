package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/sahilchouksey/internship-simulator/model"
)

// Submissions older than this without a score are considered stuck at
// the evaluation worker. They are only reported; evaluation is never
// re-dispatched from here because the worker has no deduplication.
const staleSubmissionAge = 2 * time.Hour

// Job logs are kept for this long before cleanup.
const jobLogRetention = 30 * 24 * time.Hour

// MonitorStaleSubmissions reports submissions that were dispatched for
// evaluation but never received a score.
func (m *CronManager) MonitorStaleSubmissions() {
	jobName := "monitor_stale_submissions"

	cutoff := time.Now().Add(-staleSubmissionAge)

	var stale []model.Submission
	err := m.db.Where("score IS NULL AND submitted_at < ?", cutoff).
		Order("submitted_at ASC").
		Limit(100).
		Find(&stale).Error
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query submissions: %w", err))
		return
	}

	if len(stale) == 0 {
		m.logJobComplete(jobName, "No stale submissions")
		return
	}

	for _, sub := range stale {
		log.Printf("[CRON] Submission %d (task %d) un-evaluated since %s",
			sub.ID, sub.TaskID, sub.SubmittedAt.Format(time.RFC3339))
	}

	m.logJobComplete(jobName, fmt.Sprintf("Found %d stale submissions", len(stale)))
}

// FlagOverdueTasks logs pending tasks whose deadline has passed. Task
// state is left alone so interns can still submit late work.
func (m *CronManager) FlagOverdueTasks() {
	jobName := "flag_overdue_tasks"

	var count int64
	err := m.db.Model(&model.Task{}).
		Where("status IN ? AND deadline < ?", []string{model.TaskStatusPending, model.TaskStatusInProgress}, time.Now()).
		Count(&count).Error
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to count overdue tasks: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("%d tasks past deadline", count))
}

// CleanupJobLogs deletes cron job logs older than the retention
// window.
func (m *CronManager) CleanupJobLogs() {
	jobName := "cleanup_job_logs"

	cutoff := time.Now().Add(-jobLogRetention)

	result := m.db.Where("started_at < ?", cutoff).Delete(&model.CronJobLog{})
	if result.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to delete old logs: %w", result.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Deleted %d old job logs", result.RowsAffected))
}
