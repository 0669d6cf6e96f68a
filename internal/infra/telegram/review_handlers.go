package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"qc_review_bot/internal/app"
	"qc_review_bot/internal/domain/analyte"
	"qc_review_bot/internal/domain/review"
)

// Inline review options, mirroring the review comment dialog.
var (
	reviewMenu = &telebot.ReplyMarkup{}
	btnApprove = reviewMenu.Data("QC Approved", "qc_approve")
	btnConcern = reviewMenu.Data("QC Concern/Corrective Action", "qc_concern")
	btnSave    = reviewMenu.Data("Save Comment to Report", "qc_save")
	btnCancel  = reviewMenu.Data("Cancel", "qc_cancel")
)

func init() {
	reviewMenu.Inline(
		reviewMenu.Row(btnApprove),
		reviewMenu.Row(btnConcern),
		reviewMenu.Row(btnSave, btnCancel),
	)
}

var htmlOptions = &telebot.SendOptions{ParseMode: telebot.ModeHTML}

type reviewHandlers struct {
	ctx     context.Context
	service *app.ReviewService
	logger  *logrus.Entry
}

// RegisterReviewHandlers wires the reviewer commands and the review dialog buttons.
func RegisterReviewHandlers(ctx context.Context, b *telebot.Bot, service *app.ReviewService, baseLogger *logrus.Entry) {
	h := &reviewHandlers{ctx: ctx, service: service, logger: baseLogger.WithField("handler_group", "review")}

	b.Handle("/review", h.openReview)
	b.Handle("/analyte", h.analyteReport)
	b.Handle("/panel", h.panelOverview)
	b.Handle("/history", h.history)
	b.Handle("/status", h.status)
	b.Handle("/submit", h.submit)
	b.Handle("/retry", h.retry)
	b.Handle("/cancel", h.cancel)

	b.Handle(&btnApprove, h.selectVerdict(review.Approved))
	b.Handle(&btnConcern, h.selectVerdict(review.Concern))
	b.Handle(&btnSave, func(c telebot.Context) error {
		_ = c.Respond()
		return h.submit(c)
	})
	b.Handle(&btnCancel, func(c telebot.Context) error {
		_ = c.Respond()
		return h.cancel(c)
	})

	b.Handle(telebot.OnText, h.comment)
}

func (h *reviewHandlers) log(c telebot.Context, handler string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"handler":   handler,
		"sender_id": c.Sender().ID,
	})
}

func (h *reviewHandlers) openReview(c telebot.Context) error {
	logCtx := h.log(c, "/review")

	args := c.Args()
	if len(args) != 1 {
		return c.Send("Usage: /review <report id>")
	}
	reportID, err := uuid.Parse(args[0])
	if err != nil {
		logCtx.WithField("arg", args[0]).Warn("Invalid report id")
		return c.Send("The report id must be a UUID.")
	}
	logCtx = logCtx.WithField("report_id", reportID)

	screen, err := h.service.OpenReview(h.ctx, c.Sender().ID, reportID)
	if err != nil {
		return h.replyError(c, logCtx, err)
	}

	if screen.Replaced {
		if err := c.Send("Your previous unsaved review was discarded."); err != nil {
			return err
		}
	}
	header := fmt.Sprintf("<b>Review Controls: %s</b>\nCreated %s", html.EscapeString(screen.Report.QCName), screen.Report.CreatedDate.Format("01/02/2006"))
	if err := c.Send(header, htmlOptions); err != nil {
		return err
	}
	for _, view := range screen.Views {
		if err := c.Send(RenderView(view), htmlOptions); err != nil {
			return err
		}
	}
	if len(screen.Unavailable) > 0 {
		if err := c.Send("No data available for: " + strings.Join(screen.Unavailable, ", ")); err != nil {
			return err
		}
	}
	logCtx.Info("Review screen sent")
	return c.Send("REVIEW COMMENT OPTIONS:\n"+RenderState(screen.State), &telebot.SendOptions{ParseMode: telebot.ModeHTML, ReplyMarkup: reviewMenu})
}

func (h *reviewHandlers) analyteReport(c telebot.Context) error {
	logCtx := h.log(c, "/analyte")

	args := c.Args()
	if len(args) < 3 {
		return c.Send("Usage: /analyte <panel> <lot> <analyte name>")
	}
	panel, lot, name := args[0], args[1], strings.Join(args[2:], " ")
	logCtx = logCtx.WithField("analyte", name)

	view, err := h.service.AnalyteReport(h.ctx, c.Sender().ID, panel, lot, name)
	if err != nil && !errors.Is(err, analyte.ErrNetwork) {
		return h.replyError(c, logCtx, err)
	}
	return c.Send(RenderView(view), htmlOptions)
}

func (h *reviewHandlers) panelOverview(c telebot.Context) error {
	logCtx := h.log(c, "/panel")

	args := c.Args()
	if len(args) < 2 {
		return c.Send("Usage: /panel <lot> <analyte> [analyte...]")
	}
	entries, err := h.service.PanelOverview(h.ctx, c.Sender().ID, args[0], args[1:])
	if err != nil {
		return h.replyError(c, logCtx, err)
	}
	return c.Send(RenderPanel(args[0], entries), htmlOptions)
}

func (h *reviewHandlers) history(c telebot.Context) error {
	logCtx := h.log(c, "/history")

	args := c.Args()
	if len(args) != 1 {
		return c.Send("Usage: /history <report id>")
	}
	reportID, err := uuid.Parse(args[0])
	if err != nil {
		return c.Send("The report id must be a UUID.")
	}

	records, err := h.service.History(h.ctx, c.Sender().ID, reportID)
	if err != nil {
		return h.replyError(c, logCtx.WithField("report_id", reportID), err)
	}
	return c.Send(RenderHistory(records), htmlOptions)
}

func (h *reviewHandlers) status(c telebot.Context) error {
	snap, ok := h.service.CurrentState(c.Sender().ID)
	if !ok {
		return h.replyError(c, h.log(c, "/status"), app.ErrNoSession)
	}
	return c.Send(RenderState(snap), &telebot.SendOptions{ParseMode: telebot.ModeHTML, ReplyMarkup: reviewMenu})
}

func (h *reviewHandlers) selectVerdict(v review.Verdict) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		logCtx := h.log(c, "select_status").WithField("verdict", v.String())
		_ = c.Respond()

		snap, err := h.service.SelectStatus(c.Sender().ID, v)
		if err != nil {
			return h.replyError(c, logCtx, err)
		}
		logCtx.Debug("Review option selected")
		return c.Send(RenderState(snap), &telebot.SendOptions{ParseMode: telebot.ModeHTML, ReplyMarkup: reviewMenu})
	}
}

// comment treats free text as the concern comment while Concern is selected.
func (h *reviewHandlers) comment(c telebot.Context) error {
	logCtx := h.log(c, "comment")

	snap, ok := h.service.CurrentState(c.Sender().ID)
	if !ok {
		return c.Send("Use /help to see the available commands.")
	}
	if snap.Closed {
		return h.replyError(c, logCtx, review.ErrInvalidState)
	}
	if snap.Choice != review.Concern {
		return c.Send("Select \"QC Concern/Corrective Action\" before writing a comment.")
	}

	snap, err := h.service.SetComment(c.Sender().ID, c.Text())
	if err != nil {
		return h.replyError(c, logCtx, err)
	}
	return c.Send(RenderState(snap), &telebot.SendOptions{ParseMode: telebot.ModeHTML, ReplyMarkup: reviewMenu})
}

func (h *reviewHandlers) submit(c telebot.Context) error {
	logCtx := h.log(c, "submit")

	rec, err := h.service.Submit(h.ctx, c.Sender().ID)
	if err != nil {
		return h.replySaveError(c, logCtx, err)
	}
	logCtx.WithFields(logrus.Fields{"report_id": rec.ReportID, "decision_id": rec.ID}).Info("Review submitted")
	return c.Send(fmt.Sprintf("Saved to report %s: %s", rec.ReportID, verdictLabel(rec.Decision.Verdict())))
}

func (h *reviewHandlers) retry(c telebot.Context) error {
	logCtx := h.log(c, "/retry")

	rec, err := h.service.RetrySave(h.ctx, c.Sender().ID)
	if err != nil {
		return h.replySaveError(c, logCtx, err)
	}
	return c.Send(fmt.Sprintf("Saved to report %s: %s", rec.ReportID, verdictLabel(rec.Decision.Verdict())))
}

func (h *reviewHandlers) cancel(c telebot.Context) error {
	if !h.service.Cancel(c.Sender().ID) {
		return c.Send("No unsaved review to discard.")
	}
	h.log(c, "cancel").Info("Review abandoned")
	return c.Send("Review discarded. Nothing was saved.")
}

// replySaveError answers a failed Submit or RetrySave, where a decision may
// be held for retry.
func (h *reviewHandlers) replySaveError(c telebot.Context, logCtx *logrus.Entry, err error) error {
	logCtx = logCtx.WithError(err)
	switch {
	case errors.Is(err, review.ErrReportNotFound):
		logCtx.Warn("Report removed before saving")
	case errors.Is(err, review.ErrPersistence):
		logCtx.Error("Storage failure while saving decision")
	case errors.Is(err, app.ErrNothingToRetry):
	default:
		return h.replyError(c, logCtx, err)
	}
	return c.Send(saveErrorMessage(err))
}

// saveErrorMessage only covers the outcomes specific to saving; anything else
// falls through to errorMessage.
func saveErrorMessage(err error) string {
	switch {
	case errors.Is(err, app.ErrNothingToRetry):
		return "Nothing to retry: no save has failed."
	case errors.Is(err, review.ErrReportNotFound):
		return "The report no longer exists. The review was discarded."
	case errors.Is(err, review.ErrPersistence):
		return "Saving failed. Your decision is kept; use /retry to try again."
	default:
		return errorMessage(err)
	}
}

// replyError maps service errors to reviewer-facing messages.
func (h *reviewHandlers) replyError(c telebot.Context, logCtx *logrus.Entry, err error) error {
	logCtx = logCtx.WithError(err)
	var verr *review.ValidationError

	switch {
	case errors.As(err, &verr):
		logCtx.Info("Review not valid yet")
	case errors.Is(err, app.ErrNotReviewer):
		logCtx.Warn("Unauthorized access attempt")
	case errors.Is(err, review.ErrInvalidState):
		logCtx.Warn("Operation on a closed review")
	case errors.Is(err, app.ErrNoSession), errors.Is(err, review.ErrReportNotFound), errors.Is(err, review.ErrEmptyReport):
	case errors.Is(err, review.ErrPersistence):
		logCtx.Error("Storage failure")
	default:
		logCtx.Error("Unexpected error")
	}
	return c.Send(errorMessage(err))
}

func errorMessage(err error) string {
	var verr *review.ValidationError

	switch {
	case errors.As(err, &verr):
		return "Cannot save: " + verr.Reason + "."
	case errors.Is(err, app.ErrNotReviewer):
		return "You are not registered as an active reviewer."
	case errors.Is(err, app.ErrNoSession):
		return "No review in progress. Start one with /review <report id>."
	case errors.Is(err, review.ErrInvalidState):
		return "This review was already submitted. Use /review to start a new one."
	case errors.Is(err, review.ErrReportNotFound):
		return "Report not found."
	case errors.Is(err, review.ErrEmptyReport):
		return "This report has no analyte results to review."
	case errors.Is(err, review.ErrPersistence):
		return "Report storage is unavailable right now. Please try again later."
	default:
		return "Something went wrong. Please try again later."
	}
}
