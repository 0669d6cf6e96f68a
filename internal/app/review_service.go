package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/telebot.v3"

	"qc_review_bot/internal/domain/analyte"
	"qc_review_bot/internal/domain/qc"
	"qc_review_bot/internal/domain/report"
	"qc_review_bot/internal/domain/review"
	"qc_review_bot/internal/domain/reviewer"
	domainTelegram "qc_review_bot/internal/domain/telegram"
	"qc_review_bot/internal/infra/metrics"
)

var (
	// ErrNotReviewer is returned when the sender is not an active reviewer.
	ErrNotReviewer = errors.New("sender is not an active reviewer")
	// ErrNothingToRetry is returned by RetrySave when no save has failed.
	ErrNothingToRetry = errors.New("no unsaved review decision")
)

const panelFetchLimit = 4

// ReviewScreen is everything a reviewer sees when opening a report.
type ReviewScreen struct {
	Report      *review.StudentReport
	Views       []report.View
	Unavailable []string // analytes whose runs could not be fetched
	Replaced    bool     // an earlier unsubmitted review was discarded
	State       review.Snapshot
}

// PanelEntry is one analyte of a panel overview.
type PanelEntry struct {
	AnalyteName string
	Runs        int
	Counts      map[qc.Status]int
	Unavailable bool
}

// ReviewService drives QC report review: it builds report views from fetched
// measurements and owns the reviewers' review sessions.
type ReviewService struct {
	source       analyte.Source
	reportSource analyte.ReportSource
	reports      review.Repository
	reviewers    reviewer.Repository
	sessions     *SessionRegistry
	notifier     domainTelegram.Client
	supervisorID int64
	pendingGrace time.Duration
	metrics      *metrics.Metrics
	logger       *logrus.Entry
	now          func() time.Time
}

func NewReviewService(
	source analyte.Source,
	reportSource analyte.ReportSource,
	reports review.Repository,
	reviewers reviewer.Repository,
	notifier domainTelegram.Client,
	supervisorID int64,
	pendingGrace time.Duration,
	m *metrics.Metrics,
	logger *logrus.Entry,
) *ReviewService {
	return &ReviewService{
		source:       source,
		reportSource: reportSource,
		reports:      reports,
		reviewers:    reviewers,
		sessions:     NewSessionRegistry(),
		notifier:     notifier,
		supervisorID: supervisorID,
		pendingGrace: pendingGrace,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// AnalyteView fetches the runs of one analyte and assembles them. When the
// fetch fails the returned view is empty and the error wraps analyte.ErrNetwork.
func (s *ReviewService) AnalyteView(ctx context.Context, panelName, lotNumber, analyteName string) (report.View, error) {
	logCtx := s.logger.WithFields(logrus.Fields{"analyte": analyteName, "lot": lotNumber})

	started := s.now()
	raws, err := s.source.FetchMeasurements(ctx, analyteName)
	s.metrics.ObserveFetch(err, s.now().Sub(started))
	if err != nil {
		logCtx.WithError(err).Warn("Measurement fetch failed; showing no data")
		return report.Assemble(nil, report.WithPanel(panelName, lotNumber)), err
	}

	measurements, rejected := analyte.NormalizeAll(raws)
	for _, rejErr := range rejected {
		logCtx.WithError(rejErr).Warn("Dropped analyte record")
	}
	s.metrics.AddRejected(len(rejected))

	view := report.Assemble(measurements, report.WithPanel(panelName, lotNumber))
	s.observeView(logCtx, view)
	logCtx.WithFields(logrus.Fields{"rows": view.Len(), "dropped": len(rejected)}).Debug("Analyte view assembled")
	return view, nil
}

// AnalyteReport is AnalyteView for a reviewer's ad hoc request.
func (s *ReviewService) AnalyteReport(ctx context.Context, senderTelegramID int64, panelName, lotNumber, analyteName string) (report.View, error) {
	if _, err := s.authorize(ctx, senderTelegramID); err != nil {
		return report.View{}, err
	}
	return s.AnalyteView(ctx, panelName, lotNumber, analyteName)
}

// OpenReview loads a report and starts a review session for the sender. Any
// unsubmitted session the sender had is discarded.
func (s *ReviewService) OpenReview(ctx context.Context, senderTelegramID int64, reportID uuid.UUID) (*ReviewScreen, error) {
	rv, err := s.authorize(ctx, senderTelegramID)
	if err != nil {
		return nil, err
	}
	logCtx := s.logger.WithFields(logrus.Fields{"report_id": reportID, "reviewer_id": rv.ID})

	rep, err := s.reports.LoadReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if err := rep.Reviewable(); err != nil {
		return nil, err
	}

	screen := &ReviewScreen{Report: rep}
	runs, err := s.reportRuns(ctx, rep)
	if err != nil {
		if !errors.Is(err, analyte.ErrNetwork) {
			return nil, err
		}
		logCtx.WithError(err).Warn("Report measurement fetch failed; showing no data")
		screen.Unavailable = rep.AnalyteNames()
	}
	for _, name := range rep.AnalyteNames() {
		view := report.Assemble(runs[name], report.WithPanel(rep.QCName, rep.LotID.String()))
		s.observeView(logCtx.WithField("analyte", name), view)
		screen.Views = append(screen.Views, view)
	}

	screen.Replaced = s.sessions.Open(senderTelegramID, rv.ID, reportID)
	if screen.Replaced {
		logCtx.Info("Discarded previous unsubmitted review")
	}
	screen.State, _ = s.sessions.Snapshot(senderTelegramID)
	logCtx.WithField("analytes", len(screen.Views)).Info("Review opened")
	return screen, nil
}

// SelectStatus changes the sender's pending choice.
func (s *ReviewService) SelectStatus(senderTelegramID int64, v review.Verdict) (review.Snapshot, error) {
	var snap review.Snapshot
	err := s.sessions.With(senderTelegramID, func(e *sessionEntry) error {
		if err := e.session.SelectStatus(v); err != nil {
			return err
		}
		snap = e.session.CurrentState()
		return nil
	})
	return snap, err
}

// SetComment replaces the sender's draft comment.
func (s *ReviewService) SetComment(senderTelegramID int64, text string) (review.Snapshot, error) {
	var snap review.Snapshot
	err := s.sessions.With(senderTelegramID, func(e *sessionEntry) error {
		if err := e.session.SetComment(text); err != nil {
			return err
		}
		snap = e.session.CurrentState()
		return nil
	})
	return snap, err
}

// CurrentState reports the sender's session, if any. A submitted session is
// reported closed until the sender opens another review or cancels.
func (s *ReviewService) CurrentState(senderTelegramID int64) (review.Snapshot, bool) {
	return s.sessions.Snapshot(senderTelegramID)
}

// Submit validates and stores the sender's decision. A validation error leaves
// the session open. If storing fails the error wraps review.ErrPersistence and
// the decision is kept for RetrySave. A submitted session stays visible, and
// closed, until the next OpenReview or Cancel.
func (s *ReviewService) Submit(ctx context.Context, senderTelegramID int64) (*review.DecisionRecord, error) {
	var rec *review.DecisionRecord
	err := s.sessions.With(senderTelegramID, func(e *sessionEntry) error {
		// a session whose save failed is already closed and rejects this
		d, err := e.session.Submit()
		if err != nil {
			return err
		}
		e.unsaved = &review.DecisionRecord{
			ID:         uuid.New(),
			ReportID:   e.session.ReportID(),
			ReviewerID: e.reviewerID,
			Decision:   d,
			DecidedAt:  s.now().UTC(),
		}
		rec = e.unsaved
		return s.store(ctx, senderTelegramID, e)
	})
	if err != nil {
		return nil, err
	}
	s.saved(rec)
	return rec, nil
}

// RetrySave stores a decision whose earlier save failed.
func (s *ReviewService) RetrySave(ctx context.Context, senderTelegramID int64) (*review.DecisionRecord, error) {
	var rec *review.DecisionRecord
	err := s.sessions.With(senderTelegramID, func(e *sessionEntry) error {
		if e.unsaved == nil {
			return ErrNothingToRetry
		}
		rec = e.unsaved
		return s.store(ctx, senderTelegramID, e)
	})
	if err != nil {
		return nil, err
	}
	s.saved(rec)
	return rec, nil
}

// store saves e.unsaved. Callers hold e.mu. When the report no longer exists
// the decision can never be stored, so it is dropped with the session.
func (s *ReviewService) store(ctx context.Context, owner int64, e *sessionEntry) error {
	rec := e.unsaved
	logCtx := s.logger.WithFields(logrus.Fields{
		"report_id":   rec.ReportID,
		"reviewer_id": rec.ReviewerID,
		"verdict":     rec.Decision.Verdict().String(),
	})

	err := s.reports.SaveReviewDecision(ctx, rec.ReportID, rec)
	switch {
	case err == nil:
		e.unsaved = nil
		logCtx.Info("Review decision saved")
		return nil
	case errors.Is(err, review.ErrReportNotFound):
		logCtx.WithError(err).Warn("Report vanished before the decision was saved; review discarded")
		e.unsaved = nil
		s.sessions.release(owner, e)
		return err
	case errors.Is(err, review.ErrPersistence):
		logCtx.WithError(err).Error("Failed to save review decision")
		return err
	default:
		logCtx.WithError(err).Error("Failed to save review decision")
		return fmt.Errorf("%w: %w", review.ErrPersistence, err)
	}
}

// saved runs after a decision is stored and the session lock is released.
func (s *ReviewService) saved(rec *review.DecisionRecord) {
	s.metrics.IncDecision(rec.Decision.Verdict().String())
	if rec.Decision.Verdict() == review.Concern {
		s.notifySupervisor(rec)
	}
}

// Cancel abandons the sender's review without storing anything. It reports
// whether there was unsaved work to drop.
func (s *ReviewService) Cancel(senderTelegramID int64) bool {
	return s.sessions.Discard(senderTelegramID)
}

// History returns the decision trail of a report, oldest first.
func (s *ReviewService) History(ctx context.Context, senderTelegramID int64, reportID uuid.UUID) ([]*review.DecisionRecord, error) {
	if _, err := s.authorize(ctx, senderTelegramID); err != nil {
		return nil, err
	}
	if _, err := s.reports.LoadReport(ctx, reportID); err != nil {
		return nil, err
	}
	return s.reports.ListDecisions(ctx, reportID)
}

// PanelOverview summarises several analytes of one lot, fetching them
// concurrently. An analyte whose fetch fails is marked unavailable.
func (s *ReviewService) PanelOverview(ctx context.Context, senderTelegramID int64, lotNumber string, analyteNames []string) ([]PanelEntry, error) {
	if _, err := s.authorize(ctx, senderTelegramID); err != nil {
		return nil, err
	}

	entries := make([]PanelEntry, len(analyteNames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(panelFetchLimit)
	for i, name := range analyteNames {
		g.Go(func() error {
			view, err := s.AnalyteView(gctx, "", lotNumber, name)
			entry := PanelEntry{AnalyteName: name, Runs: view.Len(), Counts: view.Summary()}
			if err != nil {
				if !errors.Is(err, analyte.ErrNetwork) {
					return err
				}
				entry.Unavailable = true
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// RemindPendingReviews tells every active reviewer which reports have waited
// longer than the grace period without a decision.
func (s *ReviewService) RemindPendingReviews(ctx context.Context) error {
	cutoff := s.now().Add(-s.pendingGrace)
	pending, err := s.reports.ListPendingReports(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list pending reports: %w", err)
	}
	if len(pending) == 0 {
		s.logger.Info("No reports awaiting review")
		return nil
	}

	reviewers, err := s.reviewers.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active reviewers: %w", err)
	}
	if len(reviewers) == 0 {
		s.logger.WithField("pending", len(pending)).Warn("Reports await review but no reviewer is active")
		return nil
	}

	text := pendingReminderText(pending)
	sent := 0
	for _, rv := range reviewers {
		if err := s.notifier.SendMessage(rv.TelegramID, text, &telebot.SendOptions{ParseMode: telebot.ModeDefault}); err != nil {
			s.logger.WithError(err).WithField("reviewer_id", rv.ID).Error("Failed to send pending review reminder")
			continue
		}
		sent++
	}
	s.logger.WithFields(logrus.Fields{"pending": len(pending), "notified": sent}).Info("Pending review reminders sent")
	return nil
}

func pendingReminderText(pending []*review.StudentReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d QC report(s) are waiting for review:\n", len(pending))
	for _, rep := range pending {
		fmt.Fprintf(&b, "\n%s (created %s)\n/review %s", rep.QCName, rep.CreatedDate.Format("01/02/2006"), rep.ID)
	}
	return b.String()
}

func (s *ReviewService) notifySupervisor(rec *review.DecisionRecord) {
	if s.supervisorID == 0 {
		return
	}
	text := fmt.Sprintf("QC concern recorded for report %s:\n%s", rec.ReportID, rec.Decision.Comment())
	if err := s.notifier.SendMessage(s.supervisorID, text, &telebot.SendOptions{ParseMode: telebot.ModeDefault}); err != nil {
		s.logger.WithError(err).WithField("report_id", rec.ReportID).Error("Failed to notify supervisor of concern")
	}
}

// reportRuns fetches the runs captured for rep and groups them by analyte
// name. Records that are not among rep's inputs are dropped, and the rest
// follow rep's input order.
func (s *ReviewService) reportRuns(ctx context.Context, rep *review.StudentReport) (map[string][]analyte.Measurement, error) {
	logCtx := s.logger.WithField("report_id", rep.ID)

	started := s.now()
	raws, err := s.reportSource.FetchReportMeasurements(ctx, rep.ID)
	s.metrics.ObserveFetch(err, s.now().Sub(started))
	if err != nil {
		return nil, err
	}

	order := make(map[string]int, len(rep.AnalyteInputs))
	for i, in := range rep.AnalyteInputs {
		order[in.ID.String()] = i
	}
	owned := make([]analyte.RawRecord, len(rep.AnalyteInputs))
	present := make([]bool, len(rep.AnalyteInputs))
	foreign := 0
	for _, raw := range raws {
		id, _ := raw[analyte.FieldInputID].(string)
		i, ok := order[id]
		if !ok || present[i] {
			foreign++
			continue
		}
		owned[i], present[i] = raw, true
	}
	if foreign > 0 {
		logCtx.WithField("records", foreign).Warn("Ignored records that are not inputs of the report")
	}

	kept := make([]analyte.RawRecord, 0, len(owned))
	for i, raw := range owned {
		if present[i] {
			kept = append(kept, raw)
		}
	}
	measurements, rejected := analyte.NormalizeAll(kept)
	for _, rejErr := range rejected {
		logCtx.WithError(rejErr).Warn("Dropped analyte record")
	}
	s.metrics.AddRejected(len(rejected))

	runs := make(map[string][]analyte.Measurement)
	for _, m := range measurements {
		runs[m.AnalyteName] = append(runs[m.AnalyteName], m)
	}
	return runs, nil
}

func (s *ReviewService) observeView(logCtx *logrus.Entry, view report.View) {
	for _, defect := range view.Defects {
		logCtx.WithError(defect).Warn("Report defect")
	}
	for row := range view.Rows() {
		s.metrics.IncEvaluation(row.Status.String())
	}
}

func (s *ReviewService) authorize(ctx context.Context, telegramID int64) (*reviewer.Reviewer, error) {
	rv, err := s.reviewers.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, reviewer.ErrNotFound) {
			return nil, ErrNotReviewer
		}
		return nil, fmt.Errorf("failed to look up reviewer: %w", err)
	}
	if !rv.IsActive {
		return nil, ErrNotReviewer
	}
	return rv, nil
}
