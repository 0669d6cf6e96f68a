package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"qc_review_bot/internal/domain/reviewer"
	"qc_review_bot/internal/infra/config"
)

const (
	adminHelp = "Admin commands:\n\n" +
		"`/add_reviewer <TelegramID> <FirstName> [LastName]`\n - Allow a supervisor to review QC reports.\n\n" +
		"`/remove_reviewer <TelegramID>`\n - Deactivate a reviewer. Their decisions are kept.\n\n" +
		"`/list_reviewers [active|all]`\n - List reviewers. Active ones by default.\n\n" +
		"`/help`\n - Show this message."

	reviewerHelp = "Reviewer commands:\n\n" +
		"`/review <report id>`\n - Open a student QC report with its analyte run tables.\n\n" +
		"`/analyte <panel> <lot> <analyte>`\n - Show the qualitative report of one analyte.\n\n" +
		"`/panel <lot> <analyte> [analyte...]`\n - Count OK/HIGH/LOW runs per analyte.\n\n" +
		"`/history <report id>`\n - Show the saved review decisions of a report.\n\n" +
		"`/status`\n - Show the review in progress.\n\n" +
		"`/submit`, `/cancel`, `/retry`\n - Save, abandon, or retry saving the review in progress.\n\n" +
		"While *QC Concern/Corrective Action* is selected, any text you send becomes the comment."
)

// RegisterBotCommands registers /start and /help, answering by role.
func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	cfg *config.AppConfig,
	reviewerRepo reviewer.Repository,
	baseLogger *logrus.Entry,
) {
	startHelpLogger := baseLogger.WithField("handler_group", "start_help")

	b.Handle("/start", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := startHelpLogger.WithField("command", "/start").WithField("sender_id", senderID)
		logCtx.Info("Processing /start command")

		if senderID == cfg.AdminTelegramID {
			logCtx.Info("User identified as Admin")
			return c.Send(fmt.Sprintf("Hello, %s! You manage the reviewer list. Use /help for the commands.", c.Sender().FirstName))
		}

		rv, err := reviewerRepo.GetByTelegramID(ctx, senderID)
		switch {
		case err == nil && rv.IsActive:
			logCtx.WithField("reviewer_id", rv.ID).Info("User identified as active reviewer")
			return c.Send(fmt.Sprintf("Hello, %s! Send /review <report id> to review a student QC report.", rv.FirstName))
		case err == nil:
			logCtx.WithField("reviewer_id", rv.ID).Info("User identified as inactive reviewer")
			return c.Send("Your reviewer account is inactive. Please contact the administrator.")
		case !errors.Is(err, reviewer.ErrNotFound):
			logCtx.WithError(err).Error("Error checking reviewer status for /start command")
			return c.Send("Could not check your status. Please try again later.")
		}

		logCtx.Info("User is unknown")
		return c.Send("Hello! This bot is used by lab supervisors to review student QC reports. Ask the administrator to add you as a reviewer.")
	})

	b.Handle("/help", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := startHelpLogger.WithField("command", "/help").WithField("sender_id", senderID)
		logCtx.Info("Processing /help command")

		if senderID == cfg.AdminTelegramID {
			return c.Send(adminHelp, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
		}

		rv, err := reviewerRepo.GetByTelegramID(ctx, senderID)
		switch {
		case err == nil && rv.IsActive:
			return c.Send(reviewerHelp, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
		case err == nil:
			return c.Send("Your reviewer account is inactive. Contact the administrator to be reactivated.")
		case !errors.Is(err, reviewer.ErrNotFound):
			logCtx.WithError(err).Error("Error checking reviewer status for /help command")
			return c.Send("Could not check your status. Please try again later.")
		}

		return c.Send("No commands are available to you. Ask the administrator to add you as a reviewer.")
	})
}
