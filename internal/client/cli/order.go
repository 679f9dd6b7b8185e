package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/sanaol/canteen/internal/client/models"
)

// addToCart adds item number n from the last listing, with an optional
// quantity (default 1).
func (a *App) addToCart(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: add <n> [qty]")
		return
	}
	if len(a.lastMenu) == 0 {
		fmt.Println("List the menu first with 'menu'.")
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.lastMenu) {
		fmt.Printf("Item number must be between 1 and %d.\n", len(a.lastMenu))
		return
	}

	qty := 1
	if len(args) > 1 {
		qty, err = strconv.Atoi(args[1])
		if err != nil || qty < 1 {
			fmt.Println("Quantity must be a positive number.")
			return
		}
	}

	item := a.lastMenu[n-1]
	if !item.Available {
		fmt.Printf("%s is sold out.\n", item.Name)
		return
	}

	a.cart.Add(item, qty)
	fmt.Printf("Added %d x %s.\n", qty, item.Name)
}

func (a *App) showCart() {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("The cart is empty.")
		return
	}
	for _, line := range lines {
		fmt.Printf("%3d x %-30s %8.2f\n", line.Quantity, line.Item.Name, line.Item.Price*float64(line.Quantity))
	}
	fmt.Printf("Total: %.2f\n", a.cart.Total())
}

// removeFromCart drops the line for item number n of the last listing.
func (a *App) removeFromCart(args []string) {
	if len(args) == 0 || len(a.lastMenu) == 0 {
		fmt.Println("Usage: remove <n> (item number from the last 'menu' listing)")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.lastMenu) {
		fmt.Printf("Item number must be between 1 and %d.\n", len(a.lastMenu))
		return
	}
	a.cart.Remove(a.lastMenu[n-1].ID)
}

// checkout places the order from the cart, optionally spending credit
// points passed as the first argument.
func (a *App) checkout(ctx context.Context, args []string) {
	var points float64
	if len(args) > 0 {
		p, err := strconv.ParseFloat(args[0], 64)
		if err != nil || p < 0 {
			fmt.Println("Usage: checkout [points]")
			return
		}
		points = p
	}

	profile := a.profile
	if profile == nil {
		profile, _ = a.auth.CurrentUser(ctx)
	}

	confirmation, err := a.orders.PlaceOrder(ctx, profile, a.cart.Items(), points)
	if err != nil {
		printError(err)
		return
	}

	a.cart.Clear()
	fmt.Printf("Order %s placed, total %.2f", confirmation.OrderNumber, confirmation.Total)
	if confirmation.CreditPointsUsed > 0 {
		fmt.Printf(" (%.2f points used)", confirmation.CreditPointsUsed)
	}
	fmt.Println()
	fmt.Printf("Pay with 'pay %s counter' or 'gcash %s'.\n", confirmation.OrderNumber, confirmation.OrderNumber)
}

func (a *App) orderHistory(ctx context.Context) {
	orders, err := a.orders.History(ctx)
	if err != nil {
		printError(err)
		return
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return
	}
	for _, o := range orders {
		fmt.Printf("%-12s %-10s %8.2f  %s\n", o.OrderNumber, o.Status, o.Total, o.CreatedAt)
	}
}

func (a *App) orderStatus(ctx context.Context, args []string) {
	orderNumber, ok := a.orderNumberArg(args, "status")
	if !ok {
		return
	}
	status, err := a.orders.Status(ctx, orderNumber)
	if err != nil {
		printError(err)
		return
	}
	printStatus(status)
}

// trackOrder follows the order until it reaches a final state, printing
// every transition.
func (a *App) trackOrder(ctx context.Context, args []string) {
	orderNumber, ok := a.orderNumberArg(args, "track")
	if !ok {
		return
	}

	trackCtx, cancel := context.WithTimeout(ctx, trackTimeout)
	defer cancel()

	last := ""
	status, err := a.orders.Track(trackCtx, orderNumber, a.config.PollInterval, func(s *models.OrderStatus) {
		if s.Status != last {
			last = s.Status
			printStatus(s)
		}
	})
	if err != nil {
		if status != nil {
			fmt.Printf("Stopped tracking; the order is still %s.\n", status.Status)
			return
		}
		printError(err)
	}
}

func (a *App) payOrder(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: pay <order> <counter|gcash>")
		return
	}
	result, err := a.orders.Pay(ctx, args[0], args[1])
	if err != nil {
		printError(err)
		return
	}
	fmt.Printf("Payment for %s confirmed via %s.\n", result.OrderNumber, result.Method)
}

func (a *App) gcashDetails(ctx context.Context, args []string) {
	orderNumber, ok := a.orderNumberArg(args, "gcash")
	if !ok {
		return
	}
	details, err := a.orders.GcashDetails(ctx, orderNumber)
	if err != nil {
		printError(err)
		return
	}
	if details.QRURL != "" {
		fmt.Println("QR code:", details.QRURL)
	}
	if details.Link != "" {
		fmt.Println("Checkout link:", details.Link)
	}
}

func (a *App) cancelOrder(ctx context.Context, args []string) {
	orderNumber, ok := a.orderNumberArg(args, "cancel")
	if !ok {
		return
	}
	if err := a.orders.Cancel(ctx, orderNumber); err != nil {
		printError(err)
		return
	}
	fmt.Printf("Order %s cancelled.\n", orderNumber)
}

func (a *App) showPoints(ctx context.Context) {
	points, err := a.orders.CreditPoints(ctx)
	if err != nil {
		printError(err)
		return
	}
	fmt.Printf("Credit points: %.2f\n", points)
}

func (a *App) redeemOffer(ctx context.Context) {
	code, err := getSimpleText(a.reader, "Enter offer code", os.Stdout)
	if err != nil {
		return
	}
	points, err := a.orders.RedeemOffer(ctx, code)
	if err != nil {
		printError(err)
		return
	}
	fmt.Printf("Redeemed! Credit points: %.2f\n", points)
}

func (a *App) orderNumberArg(args []string, cmd string) (string, bool) {
	if len(args) == 0 {
		fmt.Printf("Usage: %s <order>\n", cmd)
		return "", false
	}
	return args[0], true
}

func printStatus(s *models.OrderStatus) {
	fmt.Printf("Order %s: %s\n", s.OrderNumber, s.Status)
}
