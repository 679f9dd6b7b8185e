package cli

import (
	"context"
	"fmt"
	"os"
)

// sendFeedback collects a category and a free-text message and submits it.
func (a *App) sendFeedback(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category (food, service, app, other)", os.Stdout)
	if err != nil {
		return err
	}
	message, err := GetMultiline(a.reader, "Your feedback", os.Stdout)
	if err != nil {
		return err
	}
	if message == "" {
		fmt.Println("Nothing to send.")
		return nil
	}

	if _, err := a.backend.SendFeedback(ctx, category, message); err != nil {
		printError(err)
		return err
	}
	fmt.Println("Thanks for the feedback!")
	return nil
}

// listFeedback shows previously submitted feedback.
func (a *App) listFeedback(ctx context.Context) {
	entries, err := a.backend.Feedback(ctx)
	if err != nil {
		printError(err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No feedback submitted yet.")
		return
	}
	for _, e := range entries {
		fmt.Printf("[%s] %s\n", e.Category, e.Message)
	}
}
