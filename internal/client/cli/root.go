package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/sanaol/canteen/internal/client/api"
	"github.com/sanaol/canteen/internal/client/auth"
)

// getStatus renders the prompt decoration: the logged-in user plus the
// wall-clock time the current access token runs out.
func (a *App) getStatus() string {
	s := ""
	if a.profile != nil {
		s = a.profile.Username
		if token, err := a.store.AccessToken(context.Background()); err == nil && token != "" {
			if exp, err := auth.Expiry(token); err == nil {
				s += " until " + exp.Local().Format("15:04")
			}
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// printError shows an API failure in user terms; validation errors list the
// offending fields.
func printError(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		fmt.Println(apiErr.Message)
		for field, msg := range apiErr.Fields {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return
	}
	fmt.Println(err.Error())
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the canteen CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go func() {
		a.StartMenuWatcher(ctx, a.config.PollInterval*12)
	}()

	for {
		fmt.Printf("canteen %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Menu:     menu [category], categories, notifications")
				fmt.Println("Cart:     add <n> [qty], cart, remove <n>, clear, checkout [points]")
				fmt.Println("Orders:   orders, status <order>, track <order>, pay <order> <method>, gcash <order>, cancel <order>")
				fmt.Println("Account:  profile, name, password, avatar, points, redeem, logout")
				fmt.Println("Other:    catering, events, feedback, myfeedback, exit")
			} else {
				fmt.Println("Available commands: login, guest, register, menu, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "guest":
			a.GuestLogin(ctx)
		case "logout":
			a.Logout(ctx)
		case "menu":
			category := ""
			if len(args) > 0 {
				category = args[0]
			}
			a.showMenu(ctx, category)
		case "categories":
			a.showCategories(ctx)
		case "notifications":
			a.showNotifications(ctx)
		case "add":
			a.addToCart(args)
		case "cart":
			a.showCart()
		case "remove":
			a.removeFromCart(args)
		case "clear":
			a.cart.Clear()
		case "checkout":
			a.checkout(ctx, args)
		case "orders":
			a.orderHistory(ctx)
		case "status":
			a.orderStatus(ctx, args)
		case "track":
			a.trackOrder(ctx, args)
		case "pay":
			a.payOrder(ctx, args)
		case "gcash":
			a.gcashDetails(ctx, args)
		case "cancel":
			a.cancelOrder(ctx, args)
		case "points":
			a.showPoints(ctx)
		case "redeem":
			a.redeemOffer(ctx)
		case "catering":
			a.bookCatering(ctx)
		case "events":
			a.listEvents(ctx)
		case "feedback":
			a.sendFeedback(ctx)
		case "myfeedback":
			a.listFeedback(ctx)
		case "avatar":
			a.changeAvatar(ctx)
		case "profile":
			a.showProfile(ctx)
		case "name":
			a.changeName(ctx)
		case "password":
			a.changePassword(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}

// trackTimeout bounds a single `track` command.
const trackTimeout = 10 * time.Minute
