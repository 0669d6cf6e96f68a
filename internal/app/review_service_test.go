package app

//go:generate mockgen -source=../domain/review/repository.go -destination=mocks/review_repository.go -package=mocks -mock_names Repository=MockReviewRepository
//go:generate mockgen -source=../domain/reviewer/repository.go -destination=mocks/reviewer_repository.go -package=mocks -mock_names Repository=MockReviewerRepository
//go:generate mockgen -source=../domain/analyte/source.go -destination=mocks/source.go -package=mocks
//go:generate mockgen -source=../domain/telegram/client.go -destination=mocks/client.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"qc_review_bot/internal/app/mocks"
	"qc_review_bot/internal/domain/analyte"
	"qc_review_bot/internal/domain/qc"
	"qc_review_bot/internal/domain/review"
	"qc_review_bot/internal/domain/reviewer"
	"qc_review_bot/internal/infra/logger"
	"qc_review_bot/internal/infra/metrics"
)

const (
	reviewerTelegramID   int64 = 1001
	supervisorTelegramID int64 = 9009
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type ReviewServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	source       *mocks.MockSource
	reportSource *mocks.MockReportSource
	reports      *mocks.MockReviewRepository
	reviewers    *mocks.MockReviewerRepository
	notifier     *mocks.MockClient
	metrics      *metrics.Metrics
	service      *ReviewService
	ctx          context.Context
}

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceSuite))
}

func (s *ReviewServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = mocks.NewMockSource(s.ctrl)
	s.reportSource = mocks.NewMockReportSource(s.ctrl)
	s.reports = mocks.NewMockReviewRepository(s.ctrl)
	s.reviewers = mocks.NewMockReviewerRepository(s.ctrl)
	s.notifier = mocks.NewMockClient(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = NewReviewService(s.source, s.reportSource, s.reports, s.reviewers, s.notifier, supervisorTelegramID, 24*time.Hour, s.metrics, logger.Discard())
	s.service.now = func() time.Time { return fixedNow }
	s.ctx = context.Background()
}

func (s *ReviewServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReviewServiceSuite) expectReviewer() *reviewer.Reviewer {
	rv := &reviewer.Reviewer{ID: 7, TelegramID: reviewerTelegramID, FirstName: "Dana", IsActive: true}
	s.reviewers.EXPECT().GetByTelegramID(gomock.Any(), reviewerTelegramID).Return(rv, nil).AnyTimes()
	return rv
}

func run(day int, value string) analyte.RawRecord {
	return analyte.RawRecord{
		analyte.FieldClosedDate:   fmt.Sprintf("2024-03-%02dT09:00:00", day),
		analyte.FieldAnalyteName:  "HBsAg",
		analyte.FieldAnalyteValue: value,
		analyte.FieldMean:         100.0,
		analyte.FieldStdDeviation: 2.0,
		analyte.FieldMinLevel:     90.0,
		analyte.FieldMaxLevel:     110.0,
		analyte.FieldInitials:     "JD",
	}
}

// inputRun is a run captured as input i of rep.
func inputRun(rep *review.StudentReport, i, day int, value string) analyte.RawRecord {
	raw := run(day, value)
	raw[analyte.FieldAnalyteName] = rep.AnalyteInputs[i].AnalyteName
	raw[analyte.FieldInputID] = rep.AnalyteInputs[i].ID.String()
	return raw
}

func newReport(names ...string) *review.StudentReport {
	rep := &review.StudentReport{
		ID:          uuid.New(),
		StudentID:   uuid.New(),
		LotID:       uuid.New(),
		CreatedDate: fixedNow.Add(-48 * time.Hour),
		QCName:      "Serology",
	}
	for i, name := range names {
		rep.AnalyteInputs = append(rep.AnalyteInputs, review.AnalyteInputRef{ID: uuid.New(), AnalyteName: name, Position: i})
	}
	return rep
}

// openReview opens rep with one run per captured input.
func (s *ReviewServiceSuite) openReview(rep *review.StudentReport) *ReviewScreen {
	raws := make([]analyte.RawRecord, len(rep.AnalyteInputs))
	for i := range rep.AnalyteInputs {
		raws[i] = inputRun(rep, i, i+1, "100")
	}
	s.reports.EXPECT().LoadReport(gomock.Any(), rep.ID).Return(rep, nil)
	s.reportSource.EXPECT().FetchReportMeasurements(gomock.Any(), rep.ID).Return(raws, nil)
	screen, err := s.service.OpenReview(s.ctx, reviewerTelegramID, rep.ID)
	s.Require().NoError(err)
	return screen
}

func (s *ReviewServiceSuite) TestAnalyteView() {
	s.source.EXPECT().FetchMeasurements(gomock.Any(), "HBsAg").Return([]analyte.RawRecord{
		run(1, "100"),
		run(2, "not a number"),
		run(3, "89.5"),
	}, nil)

	view, err := s.service.AnalyteView(s.ctx, "Serology", "LOT-1", "HBsAg")
	s.Require().NoError(err)
	s.Equal(2, view.Len())
	s.Equal("Serology", view.Header.QCPanelName)
	s.Equal("LOT-1", view.Header.LotNumber)
	s.Equal(map[qc.Status]int{qc.InRange: 1, qc.OutOfRangeLow: 1}, view.Summary())

	s.Equal(float64(1), testutil.ToFloat64(s.metrics.RejectedRecords))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.Evaluations.WithLabelValues("OUT_OF_RANGE_LOW")))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.Fetches.WithLabelValues("ok")))
}

func (s *ReviewServiceSuite) TestAnalyteViewFetchFailure() {
	s.source.EXPECT().FetchMeasurements(gomock.Any(), "HBsAg").
		Return(nil, fmt.Errorf("%w: connection refused", analyte.ErrNetwork))

	view, err := s.service.AnalyteView(s.ctx, "Serology", "LOT-1", "HBsAg")
	s.ErrorIs(err, analyte.ErrNetwork)
	s.True(view.Empty())
	s.Equal("Serology", view.Header.QCPanelName)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.Fetches.WithLabelValues("error")))
}

func (s *ReviewServiceSuite) TestAnalyteReportRequiresReviewer() {
	s.reviewers.EXPECT().GetByTelegramID(gomock.Any(), int64(42)).Return(nil, reviewer.ErrNotFound)

	_, err := s.service.AnalyteReport(s.ctx, 42, "Serology", "LOT-1", "HBsAg")
	s.ErrorIs(err, ErrNotReviewer)
}

func (s *ReviewServiceSuite) TestOpenReview() {
	s.expectReviewer()
	rep := newReport("HBsAg", "HIV", "HBsAg")

	foreign := run(2, "150")
	foreign[analyte.FieldInputID] = uuid.NewString()
	foreign[analyte.FieldMaxLevel] = 200.0
	duplicate := inputRun(rep, 0, 5, "120")

	s.reports.EXPECT().LoadReport(gomock.Any(), rep.ID).Return(rep, nil)
	s.reportSource.EXPECT().FetchReportMeasurements(gomock.Any(), rep.ID).Return([]analyte.RawRecord{
		inputRun(rep, 2, 1, "111"),
		foreign,
		inputRun(rep, 0, 3, "100"),
		duplicate,
		inputRun(rep, 1, 4, "0.2"),
	}, nil)

	screen, err := s.service.OpenReview(s.ctx, reviewerTelegramID, rep.ID)
	s.Require().NoError(err)
	s.Require().Len(screen.Views, 2)
	s.Empty(screen.Unavailable)

	hbsag := screen.Views[0]
	s.Equal("HBsAg", hbsag.Header.AnalyteName)
	s.Empty(hbsag.Defects)
	var results []string
	for row := range hbsag.Rows() {
		results = append(results, row.Result)
	}
	s.Equal([]string{"100.00", "111.00"}, results, "report input order, foreign rows excluded")

	s.Equal("HIV", screen.Views[1].Header.AnalyteName)
	s.Equal(1, screen.Views[1].Len())

	s.False(screen.Replaced)
	s.Equal(review.StatePending, screen.State.State)
	s.Equal(rep.ID, screen.State.ReportID)
}

func (s *ReviewServiceSuite) TestOpenReviewFetchFailure() {
	s.expectReviewer()
	rep := newReport("HBsAg", "HIV")
	s.reports.EXPECT().LoadReport(gomock.Any(), rep.ID).Return(rep, nil)
	s.reportSource.EXPECT().FetchReportMeasurements(gomock.Any(), rep.ID).
		Return(nil, fmt.Errorf("%w: timeout", analyte.ErrNetwork))

	screen, err := s.service.OpenReview(s.ctx, reviewerTelegramID, rep.ID)
	s.Require().NoError(err)
	s.Equal([]string{"HBsAg", "HIV"}, screen.Unavailable)
	s.Require().Len(screen.Views, 2)
	s.True(screen.Views[0].Empty())
	s.True(screen.Views[1].Empty())
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.Fetches.WithLabelValues("error")))

	_, ok := s.service.CurrentState(reviewerTelegramID)
	s.True(ok)
}

func (s *ReviewServiceSuite) TestOpenReviewRejections() {
	s.Run("unknown sender", func() {
		s.reviewers.EXPECT().GetByTelegramID(gomock.Any(), int64(5)).Return(nil, reviewer.ErrNotFound)
		_, err := s.service.OpenReview(s.ctx, 5, uuid.New())
		s.ErrorIs(err, ErrNotReviewer)
	})

	s.Run("inactive reviewer", func() {
		s.reviewers.EXPECT().GetByTelegramID(gomock.Any(), int64(6)).
			Return(&reviewer.Reviewer{ID: 2, TelegramID: 6, IsActive: false}, nil)
		_, err := s.service.OpenReview(s.ctx, 6, uuid.New())
		s.ErrorIs(err, ErrNotReviewer)
	})

	s.Run("report not found", func() {
		s.expectReviewer()
		id := uuid.New()
		s.reports.EXPECT().LoadReport(gomock.Any(), id).Return(nil, review.ErrReportNotFound)
		_, err := s.service.OpenReview(s.ctx, reviewerTelegramID, id)
		s.ErrorIs(err, review.ErrReportNotFound)
	})

	s.Run("report without analytes", func() {
		s.expectReviewer()
		rep := newReport()
		s.reports.EXPECT().LoadReport(gomock.Any(), rep.ID).Return(rep, nil)
		_, err := s.service.OpenReview(s.ctx, reviewerTelegramID, rep.ID)
		s.ErrorIs(err, review.ErrEmptyReport)
	})

	s.Equal(0, s.service.sessions.Len())
}

func (s *ReviewServiceSuite) TestReopenDiscardsPreviousSession() {
	s.expectReviewer()
	first := newReport("HBsAg")
	s.openReview(first)
	_, err := s.service.SelectStatus(reviewerTelegramID, review.Concern)
	s.Require().NoError(err)

	second := newReport("HBsAg")
	screen := s.openReview(second)
	s.True(screen.Replaced)

	snap, ok := s.service.CurrentState(reviewerTelegramID)
	s.Require().True(ok)
	s.Equal(second.ID, snap.ReportID)
	s.Equal(review.Verdict(0), snap.Choice)
}

func (s *ReviewServiceSuite) TestSubmitApproved() {
	rv := s.expectReviewer()
	rep := newReport("HBsAg")
	s.openReview(rep)

	_, err := s.service.SelectStatus(reviewerTelegramID, review.Concern)
	s.Require().NoError(err)
	_, err = s.service.SetComment(reviewerTelegramID, "looks high")
	s.Require().NoError(err)
	snap, err := s.service.SelectStatus(reviewerTelegramID, review.Approved)
	s.Require().NoError(err)
	s.Empty(snap.Draft)

	s.reports.EXPECT().SaveReviewDecision(gomock.Any(), rep.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, rec *review.DecisionRecord) error {
			s.Equal(review.Approved, rec.Decision.Verdict())
			s.Empty(rec.Decision.Comment())
			s.Equal(rv.ID, rec.ReviewerID)
			s.Equal(fixedNow, rec.DecidedAt)
			return nil
		})

	rec, err := s.service.Submit(s.ctx, reviewerTelegramID)
	s.Require().NoError(err)
	s.Equal(rep.ID, rec.ReportID)
	s.NotEqual(uuid.Nil, rec.ID)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.Decisions.WithLabelValues("APPROVED")))

	snap, ok := s.service.CurrentState(reviewerTelegramID)
	s.Require().True(ok)
	s.True(snap.Closed)
	s.Equal(review.StateApproved, snap.State)

	_, err = s.service.Submit(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, review.ErrInvalidState)
	_, err = s.service.SelectStatus(reviewerTelegramID, review.Concern)
	s.ErrorIs(err, review.ErrInvalidState)
	_, err = s.service.SetComment(reviewerTelegramID, "late edit")
	s.ErrorIs(err, review.ErrInvalidState)
	_, err = s.service.RetrySave(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, ErrNothingToRetry)
}

func (s *ReviewServiceSuite) TestSubmitConcernNotifiesSupervisor() {
	s.expectReviewer()
	rep := newReport("HBsAg")
	s.openReview(rep)

	_, err := s.service.SelectStatus(reviewerTelegramID, review.Concern)
	s.Require().NoError(err)
	_, err = s.service.SetComment(reviewerTelegramID, "  Rerun control; reagent expired  ")
	s.Require().NoError(err)

	s.reports.EXPECT().SaveReviewDecision(gomock.Any(), rep.ID, gomock.Any()).Return(nil)
	s.notifier.EXPECT().SendMessage(supervisorTelegramID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ int64, text string, _ any) error {
			s.Contains(text, rep.ID.String())
			s.Contains(text, "Rerun control; reagent expired")
			return nil
		})

	rec, err := s.service.Submit(s.ctx, reviewerTelegramID)
	s.Require().NoError(err)
	s.Equal(review.Concern, rec.Decision.Verdict())
	s.Equal("  Rerun control; reagent expired  ", rec.Decision.Comment())
}

func (s *ReviewServiceSuite) TestSupervisorNotifiedOutsideSessionLock() {
	s.expectReviewer()
	rep := newReport("HBsAg")
	s.openReview(rep)
	_, _ = s.service.SelectStatus(reviewerTelegramID, review.Concern)
	_, _ = s.service.SetComment(reviewerTelegramID, "drift on control 2")

	s.reports.EXPECT().SaveReviewDecision(gomock.Any(), rep.ID, gomock.Any()).Return(nil)
	s.notifier.EXPECT().SendMessage(supervisorTelegramID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(int64, string, any) error {
			done := make(chan review.Snapshot, 1)
			go func() {
				snap, _ := s.service.CurrentState(reviewerTelegramID)
				done <- snap
			}()
			select {
			case snap := <-done:
				s.True(snap.Closed)
			case <-time.After(time.Second):
				s.Fail("session still locked while notifying the supervisor")
			}
			return nil
		})

	_, err := s.service.Submit(s.ctx, reviewerTelegramID)
	s.NoError(err)
}

func (s *ReviewServiceSuite) TestSupervisorFailureDoesNotFailSubmit() {
	s.expectReviewer()
	rep := newReport("HBsAg")
	s.openReview(rep)
	_, _ = s.service.SelectStatus(reviewerTelegramID, review.Concern)
	_, _ = s.service.SetComment(reviewerTelegramID, "bad lot")

	s.reports.EXPECT().SaveReviewDecision(gomock.Any(), rep.ID, gomock.Any()).Return(nil)
	s.notifier.EXPECT().SendMessage(supervisorTelegramID, gomock.Any(), gomock.Any()).Return(errors.New("blocked"))

	_, err := s.service.Submit(s.ctx, reviewerTelegramID)
	s.NoError(err)
}

func (s *ReviewServiceSuite) TestSubmitValidation() {
	s.expectReviewer()
	rep := newReport("HBsAg")
	s.openReview(rep)

	_, err := s.service.Submit(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, review.ErrValidation)
	var verr *review.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal(review.ReasonNoStatusSelected, verr.Reason)

	_, err = s.service.SelectStatus(reviewerTelegramID, review.Concern)
	s.Require().NoError(err)
	_, err = s.service.SetComment(reviewerTelegramID, " \n\t")
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, reviewerTelegramID)
	s.Require().ErrorAs(err, &verr)
	s.Equal(review.ReasonCommentRequired, verr.Reason)

	snap, ok := s.service.CurrentState(reviewerTelegramID)
	s.Require().True(ok)
	s.False(snap.Closed)
	s.Equal(review.Concern, snap.Choice)
}

func (s *ReviewServiceSuite) TestPersistenceFailureThenRetry() {
	s.expectReviewer()
	rep := newReport("HBsAg")
	s.openReview(rep)
	_, _ = s.service.SelectStatus(reviewerTelegramID, review.Approved)

	var firstID uuid.UUID
	s.reports.EXPECT().SaveReviewDecision(gomock.Any(), rep.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, rec *review.DecisionRecord) error {
			firstID = rec.ID
			return errors.New("connection reset")
		})

	_, err := s.service.Submit(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, review.ErrPersistence)

	snap, ok := s.service.CurrentState(reviewerTelegramID)
	s.Require().True(ok)
	s.True(snap.Closed)
	s.Equal(review.StateApproved, snap.State)

	_, err = s.service.Submit(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, review.ErrInvalidState)
	_, err = s.service.SelectStatus(reviewerTelegramID, review.Concern)
	s.ErrorIs(err, review.ErrInvalidState)

	s.reports.EXPECT().SaveReviewDecision(gomock.Any(), rep.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, rec *review.DecisionRecord) error {
			s.Equal(firstID, rec.ID)
			return nil
		})
	rec, err := s.service.RetrySave(s.ctx, reviewerTelegramID)
	s.Require().NoError(err)
	s.Equal(review.Approved, rec.Decision.Verdict())

	snap, ok = s.service.CurrentState(reviewerTelegramID)
	s.Require().True(ok)
	s.True(snap.Closed)
	_, err = s.service.RetrySave(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, ErrNothingToRetry)
	_, err = s.service.Submit(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, review.ErrInvalidState)
}

func (s *ReviewServiceSuite) TestReportRemovedBeforeSave() {
	s.expectReviewer()
	rep := newReport("HBsAg")
	s.openReview(rep)
	_, _ = s.service.SelectStatus(reviewerTelegramID, review.Approved)

	s.reports.EXPECT().SaveReviewDecision(gomock.Any(), rep.ID, gomock.Any()).
		Return(fmt.Errorf("save decision: %w", review.ErrReportNotFound))

	_, err := s.service.Submit(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, review.ErrReportNotFound)
	s.NotErrorIs(err, review.ErrPersistence)

	_, ok := s.service.CurrentState(reviewerTelegramID)
	s.False(ok)
	_, err = s.service.RetrySave(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, ErrNoSession)
	s.False(s.service.Cancel(reviewerTelegramID))
	s.Equal(0, s.service.sessions.Len())
}

func (s *ReviewServiceSuite) TestRetryWithoutFailedSave() {
	s.expectReviewer()
	s.openReview(newReport("HBsAg"))

	_, err := s.service.RetrySave(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, ErrNothingToRetry)

	_, err = s.service.RetrySave(s.ctx, 4242)
	s.ErrorIs(err, ErrNoSession)
}

func (s *ReviewServiceSuite) TestCancel() {
	s.False(s.service.Cancel(reviewerTelegramID))

	s.expectReviewer()
	s.openReview(newReport("HBsAg"))
	_, _ = s.service.SelectStatus(reviewerTelegramID, review.Approved)

	s.True(s.service.Cancel(reviewerTelegramID))
	_, err := s.service.Submit(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, ErrNoSession)

	rep := newReport("HBsAg")
	s.openReview(rep)
	_, _ = s.service.SelectStatus(reviewerTelegramID, review.Approved)
	s.reports.EXPECT().SaveReviewDecision(gomock.Any(), rep.ID, gomock.Any()).Return(nil)
	_, err = s.service.Submit(s.ctx, reviewerTelegramID)
	s.Require().NoError(err)

	s.False(s.service.Cancel(reviewerTelegramID), "nothing unsaved after a successful save")
	_, ok := s.service.CurrentState(reviewerTelegramID)
	s.False(ok)
}

func (s *ReviewServiceSuite) TestOperationsWithoutSession() {
	_, err := s.service.SelectStatus(reviewerTelegramID, review.Approved)
	s.ErrorIs(err, ErrNoSession)
	_, err = s.service.SetComment(reviewerTelegramID, "x")
	s.ErrorIs(err, ErrNoSession)
	_, err = s.service.Submit(s.ctx, reviewerTelegramID)
	s.ErrorIs(err, ErrNoSession)
}

func (s *ReviewServiceSuite) TestHistory() {
	s.expectReviewer()
	rep := newReport("HBsAg")
	approved, err := review.RestoreDecision(review.Approved, "")
	s.Require().NoError(err)
	trail := []*review.DecisionRecord{{ID: uuid.New(), ReportID: rep.ID, ReviewerID: 7, Decision: approved, DecidedAt: fixedNow}}

	s.reports.EXPECT().LoadReport(gomock.Any(), rep.ID).Return(rep, nil)
	s.reports.EXPECT().ListDecisions(gomock.Any(), rep.ID).Return(trail, nil)

	got, err := s.service.History(s.ctx, reviewerTelegramID, rep.ID)
	s.Require().NoError(err)
	s.Equal(trail, got)
}

func (s *ReviewServiceSuite) TestPanelOverview() {
	s.expectReviewer()
	s.source.EXPECT().FetchMeasurements(gomock.Any(), "HBsAg").
		Return([]analyte.RawRecord{run(1, "100"), run(2, "111"), run(3, "112")}, nil)
	s.source.EXPECT().FetchMeasurements(gomock.Any(), "HIV").
		Return(nil, fmt.Errorf("%w: 503", analyte.ErrNetwork))

	entries, err := s.service.PanelOverview(s.ctx, reviewerTelegramID, "LOT-1", []string{"HBsAg", "HIV"})
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	s.Equal("HBsAg", entries[0].AnalyteName)
	s.Equal(3, entries[0].Runs)
	s.Equal(2, entries[0].Counts[qc.OutOfRangeHigh])
	s.False(entries[0].Unavailable)

	s.Equal("HIV", entries[1].AnalyteName)
	s.True(entries[1].Unavailable)
}

func (s *ReviewServiceSuite) TestRemindPendingReviews() {
	pending := []*review.StudentReport{newReport("HBsAg")}
	s.reports.EXPECT().ListPendingReports(gomock.Any(), fixedNow.Add(-24*time.Hour)).Return(pending, nil)
	s.reviewers.EXPECT().ListActive(gomock.Any()).Return([]*reviewer.Reviewer{
		{ID: 1, TelegramID: 11, IsActive: true},
		{ID: 2, TelegramID: 12, IsActive: true},
	}, nil)
	s.notifier.EXPECT().SendMessage(int64(11), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ int64, text string, _ any) error {
			s.Contains(text, "/review "+pending[0].ID.String())
			return nil
		})
	s.notifier.EXPECT().SendMessage(int64(12), gomock.Any(), gomock.Any()).Return(errors.New("bot blocked"))

	s.NoError(s.service.RemindPendingReviews(s.ctx))
}

func (s *ReviewServiceSuite) TestRemindNothingPending() {
	s.reports.EXPECT().ListPendingReports(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.NoError(s.service.RemindPendingReviews(s.ctx))
}

func (s *ReviewServiceSuite) TestRemindListFailure() {
	s.reports.EXPECT().ListPendingReports(gomock.Any(), gomock.Any()).Return(nil, review.ErrPersistence)
	s.ErrorIs(s.service.RemindPendingReviews(s.ctx), review.ErrPersistence)
}
