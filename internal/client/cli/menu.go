package cli

import (
	"context"
	"fmt"
)

// showMenu lists the menu (optionally filtered by category) and remembers
// the listing so `add <n>` can reference items by number.
func (a *App) showMenu(ctx context.Context, category string) {
	items, err := a.menu.Items(ctx, category)
	if err != nil {
		printError(err)
		return
	}

	a.lastMenu = items
	for i, item := range items {
		marker := ""
		if !item.Available {
			marker = " (sold out)"
		}
		fmt.Printf("%3d. %-30s %8.2f  %s%s\n", i+1, item.Name, item.Price, item.Category, marker)
	}
}

func (a *App) showCategories(ctx context.Context) {
	categories, err := a.menu.Categories(ctx)
	if err != nil {
		printError(err)
		return
	}
	for _, c := range categories {
		fmt.Println(c.Name)
	}
}

func (a *App) showNotifications(ctx context.Context) {
	notifications, err := a.backend.Notifications(ctx)
	if err != nil {
		printError(err)
		return
	}
	if len(notifications) == 0 {
		fmt.Println("No notifications.")
		return
	}
	for _, n := range notifications {
		unread := " "
		if !n.Read {
			unread = "*"
		}
		fmt.Printf("%s %s: %s\n", unread, n.Title, n.Message)
	}
}
