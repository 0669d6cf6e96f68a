package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"qc_review_bot/internal/app"
	"qc_review_bot/internal/domain/reviewer"
)

// RegisterAdminHandlers registers the reviewer allow-list commands.
// It requires the bot instance, admin service, and the configured admin Telegram ID.
func RegisterAdminHandlers(ctx context.Context, b *telebot.Bot, adminService *app.AdminService, adminTelegramID int64, baseLogger *logrus.Entry) {
	b.Handle("/add_reviewer", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/add_reviewer",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		if c.Sender().ID != adminTelegramID {
			handlerLogger.Warn("Unauthorized access attempt")
			return c.Send("Error: you are not allowed to run this command.")
		}

		// Expected format: /add_reviewer <TelegramID> <FirstName> [LastName]
		args := c.Args()
		if len(args) < 2 || len(args) > 3 {
			handlerLogger.WithField("args_count", len(args)).Warn("Invalid command format")
			return c.Send("Invalid format. Use: /add_reviewer <TelegramID> <FirstName> [LastName]")
		}

		reviewerTelegramID, err := parseTelegramID(args[0])
		if err != nil {
			return c.Send("Error: the Telegram ID must be a number.")
		}
		firstName := args[1]
		if strings.TrimSpace(firstName) == "" {
			return c.Send("Error: the first name cannot be empty.")
		}
		var lastName string
		if len(args) == 3 {
			lastName = args[2]
		}

		handlerLogger = handlerLogger.WithField("reviewer_telegram_id", reviewerTelegramID)

		added, err := adminService.AddReviewer(ctx, c.Sender().ID, reviewerTelegramID, firstName, lastName)
		if err != nil {
			logWithError := handlerLogger.WithError(err)
			switch {
			case errors.Is(err, app.ErrAdminNotAuthorized):
				logWithError.Warn("Admin not authorized (service level)")
				return c.Send("Error: you are not allowed to run this command.")
			case errors.Is(err, app.ErrReviewerAlreadyExists):
				logWithError.Warn("Reviewer already exists")
				return c.Send(fmt.Sprintf("Error: reviewer with Telegram ID %d already exists.", reviewerTelegramID))
			default:
				logWithError.Error("Failed to add reviewer")
				return c.Send("An error occurred while adding the reviewer. Please try again later.")
			}
		}

		handlerLogger.WithField("reviewer_id", added.ID).Info("Reviewer added")
		return c.Send(fmt.Sprintf("Reviewer %s (ID: %d) can now review QC reports.", added.DisplayName(), added.TelegramID))
	})

	b.Handle("/remove_reviewer", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/remove_reviewer",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		if c.Sender().ID != adminTelegramID {
			handlerLogger.Warn("Unauthorized access attempt")
			return c.Send("Error: you are not allowed to run this command.")
		}

		args := c.Args()
		if len(args) != 1 {
			return c.Send("Invalid format. Use: /remove_reviewer <TelegramID>")
		}
		reviewerTelegramID, err := parseTelegramID(args[0])
		if err != nil {
			handlerLogger.WithField("arg", args[0]).Warn("Invalid Telegram ID format")
			return c.Send("Error: the Telegram ID must be a number.")
		}
		handlerLogger = handlerLogger.WithField("reviewer_telegram_id", reviewerTelegramID)

		removed, err := adminService.RemoveReviewer(ctx, c.Sender().ID, reviewerTelegramID)
		if err != nil {
			logWithError := handlerLogger.WithError(err)
			switch {
			case errors.Is(err, app.ErrAdminNotAuthorized):
				logWithError.Warn("Admin not authorized (service level)")
				return c.Send("Error: you are not allowed to run this command.")
			case errors.Is(err, reviewer.ErrNotFound):
				logWithError.Warn("Reviewer to remove not found")
				return c.Send(fmt.Sprintf("No reviewer with Telegram ID %d.", reviewerTelegramID))
			case errors.Is(err, app.ErrReviewerAlreadyInactive):
				logWithError.Warn("Reviewer already inactive")
				return c.Send(fmt.Sprintf("Reviewer %s (ID: %d) was already deactivated.", removed.DisplayName(), removed.TelegramID))
			default:
				logWithError.Error("Failed to remove reviewer")
				return c.Send("An error occurred while removing the reviewer. Please try again later.")
			}
		}

		handlerLogger.WithField("reviewer_id", removed.ID).Info("Reviewer deactivated")
		return c.Send(fmt.Sprintf("Reviewer %s (ID: %d) deactivated. Their past decisions are kept.", removed.DisplayName(), removed.TelegramID))
	})

	b.Handle("/list_reviewers", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/list_reviewers",
			"sender_id": c.Sender().ID,
		})
		if c.Sender().ID != adminTelegramID {
			handlerLogger.Warn("Unauthorized access attempt")
			return c.Send("Error: you are not allowed to run this command.")
		}

		// Optional argument: 'active' or 'all'
		listType := "active"
		if args := c.Args(); len(args) > 0 {
			listType = strings.ToLower(args[0])
		}
		if listType != "active" && listType != "all" {
			handlerLogger.WithField("list_type", listType).Warn("Invalid list type argument")
			return c.Send("Invalid argument. Use 'active' or 'all', or nothing for active reviewers.")
		}

		reviewers, err := adminService.ListReviewers(ctx, c.Sender().ID, listType == "all")
		if err != nil {
			handlerLogger.WithError(err).Error("Failed to list reviewers")
			return c.Send("An error occurred while listing reviewers. Please try again later.")
		}
		return c.Send(formatReviewerList(listType, reviewers))
	})
}

func parseTelegramID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}

func formatReviewerList(listType string, reviewers []*reviewer.Reviewer) string {
	if len(reviewers) == 0 {
		if listType == "active" {
			return "No active reviewers."
		}
		return "The reviewer list is empty."
	}

	title := "Active reviewers"
	if listType == "all" {
		title = "All reviewers"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s ---\n", title)
	for _, r := range reviewers {
		status := "inactive"
		if r.IsActive {
			status = "active"
		}
		fmt.Fprintf(&b, "ID: %d, Telegram ID: %d, Name: %s, Status: %s\n", r.ID, r.TelegramID, r.DisplayName(), status)
	}
	return b.String()
}
