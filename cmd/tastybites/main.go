package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tastybites/checkout"
	"github.com/tastybites/checkout/config"
	"github.com/tastybites/checkout/engine"
	"github.com/tastybites/checkout/engine/strategies"
	"github.com/tastybites/checkout/engine/strategies/balance"
	"github.com/tastybites/checkout/engine/strategies/card"
	"github.com/tastybites/checkout/engine/strategies/cod"
	"github.com/tastybites/checkout/engine/strategies/mobile"
	"github.com/tastybites/checkout/provider/simulator"
	"github.com/tastybites/checkout/shop"
)

var VERSION = "dev"

var (
	onLoggerDebugLevelF = flag.Bool("logger-debug-level", false, "Enable debug level logger.")
)

func main() {
	flag.Parse()
	level := "INFO"
	if *onLoggerDebugLevelF {
		level = "DEBUG"
	}
	defaultLogger(level)

	zap.L().Info("Starting ordering session...", zap.String("version", VERSION))
	defer func() { zap.L().Info("Done.") }()

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed load config.", zap.Error(err))
	}

	catalog, err := defaultCatalog()
	if err != nil {
		zap.L().Fatal("Failed build catalog.", zap.Error(err))
	}

	registerStrategies(cfg)

	s := shop.New(
		cfg.Restaurant.Name,
		catalog,
		engine.NewSequencer(cfg.Orders.SeqStart),
		shop.Config{
			DeliveryFee:      cfg.Delivery.Fee,
			FreeDeliveryOver: cfg.Delivery.FreeOver,
		},
		nil,
	)

	in := bufio.NewReader(os.Stdin)
	fmt.Printf("Welcome to %s!\n", s.Name())

	customer := registerCustomer(in, s, cfg.Wallet.StartingBalance)
	order := s.NewOrder(customer)

	ctx := context.Background()
	for {
		printMainMenu()
		switch readChoice(in, 1, 6) {
		case 1:
			printMenu(catalog)
		case 2:
			addItem(in, catalog, order)
		case 3:
			printCart(order)
		case 4:
			manageWallet(in, customer)
		case 5:
			if placeOrder(ctx, in, order, customer) {
				return
			}
		case 6:
			fmt.Println("Thank you for visiting!")
			return
		}
	}
}

func registerStrategies(cfg *config.Config) {
	strategies.Reg(balance.New(balance.Config{}))
	strategies.Reg(cod.New(cod.Config{}))
	strategies.Reg(card.New(card.Config{
		Auth: simulator.New(simulator.Config{
			SuccessRate: cfg.Card.SuccessRate,
			Delay:       cfg.Card.Delay,
		}),
	}))
	strategies.Reg(mobile.New(mobile.Config{
		Auth: simulator.New(simulator.Config{
			SuccessRate: cfg.Mobile.SuccessRate,
			Delay:       cfg.Mobile.Delay,
		}),
	}))
}

func defaultCatalog() (*checkout.Catalog, error) {
	item := func(name string, price int64, category string) checkout.MenuItem {
		return checkout.MenuItem{Name: name, Price: decimal.NewFromInt(price), Category: category}
	}
	return checkout.NewCatalog(
		item("Chicken Momo", 150, "Appetizers"),
		item("Veg Momo", 120, "Appetizers"),
		item("Chicken Chowmein", 140, "Main Course"),
		item("Veg Chowmein", 110, "Main Course"),
		item("Chicken Burger", 180, "Fast Food"),
		item("Veg Burger", 150, "Fast Food"),
		item("Margherita Pizza", 280, "Pizza"),
		item("Chicken Pizza", 350, "Pizza"),
		item("Coke", 60, "Beverages"),
		item("Lassi", 80, "Beverages"),
	)
}

func registerCustomer(in *bufio.Reader, s *shop.Shop, welcome decimal.Decimal) *shop.Customer {
	fmt.Println("\n--- Customer Registration ---")
	name := readLine(in, "Enter your name: ")
	phone := readLine(in, "Enter your phone number: ")
	address := readLine(in, "Enter your delivery address: ")

	c := s.Register(name, phone, address, welcome)
	fmt.Printf("Welcome %s! You get Rs. %s in your wallet as a welcome bonus.\n", name, welcome.StringFixed(2))
	return c
}

func printMainMenu() {
	fmt.Println("\n--- MAIN MENU ---")
	fmt.Println("1. View Menu")
	fmt.Println("2. Add Item to Cart")
	fmt.Println("3. View Cart")
	fmt.Println("4. Manage Wallet")
	fmt.Println("5. Place Order & Pay")
	fmt.Println("6. Exit")
	fmt.Print("Enter your choice: ")
}

func printMenu(catalog *checkout.Catalog) {
	byCategory := catalog.ItemsByCategory()
	n := 1
	for _, cat := range catalog.Categories() {
		fmt.Printf("\n--- %s ---\n", strings.ToUpper(cat))
		for _, item := range byCategory[cat] {
			fmt.Printf("%d. %s\n", n, item)
			n++
		}
	}
}

func addItem(in *bufio.Reader, catalog *checkout.Catalog, order *shop.Order) {
	printMenu(catalog)
	fmt.Print("\nEnter item number to add to cart (0 to go back): ")
	choice := readChoice(in, 0, catalog.Len())
	if choice == 0 {
		return
	}
	item, err := catalog.ItemByIndex(choice - 1)
	if err != nil {
		fmt.Println("Unknown item.")
		return
	}
	fmt.Print("Enter quantity: ")
	qty := readPositiveInt(in)
	if err := order.AddItem(item, qty); err != nil {
		fmt.Println("Could not add item:", err)
		return
	}
	fmt.Printf("%s x %d added to cart!\n", item.Name, qty)
}

func printCart(order *shop.Order) {
	if order.Empty() {
		fmt.Println("Your cart is empty!")
		return
	}
	fmt.Println("\nYOUR CART")
	for _, l := range order.Lines() {
		fmt.Printf("%s x %d = Rs. %s\n", l.Item.Name, l.Quantity, l.Subtotal().StringFixed(2))
	}
	fmt.Printf("Total: Rs. %s\n", order.Total().StringFixed(2))
}

func manageWallet(in *bufio.Reader, c *shop.Customer) {
	fmt.Println("\nWALLET MANAGEMENT")
	fmt.Printf("Current Balance: Rs. %s\n", c.Ledger().Balance().StringFixed(2))
	fmt.Println("1. Add Money")
	fmt.Println("2. Transaction History")
	fmt.Println("3. Back to Main Menu")
	fmt.Print("Choose option: ")

	switch readChoice(in, 1, 3) {
	case 1:
		fmt.Print("Enter amount to add: Rs. ")
		amount := readPositiveAmount(in)
		if err := c.Ledger().Credit(amount, "top up"); err != nil {
			fmt.Println("Could not add money:", err)
			return
		}
		fmt.Printf("Rs. %s added to wallet successfully!\n", amount.StringFixed(2))
	case 2:
		printHistory(c)
	case 3:
	}
}

func printHistory(c *shop.Customer) {
	fmt.Println("\n--- Wallet Transaction History ---")
	entries := c.Ledger().History()
	if len(entries) == 0 {
		fmt.Println("No transactions found.")
	}
	for _, e := range entries {
		sign := "+"
		if e.Delta.IsNegative() {
			sign = ""
		}
		fmt.Printf("[%s] %s: %sRs. %s | Balance: Rs. %s\n",
			e.At.Format("02-01-2006 15:04"), e.Reason, sign, e.Delta.StringFixed(2), e.Balance.StringFixed(2))
	}
	fmt.Printf("Current Balance: Rs. %s\n", c.Ledger().Balance().StringFixed(2))
}

// placeOrder returns true when the order was confirmed and the session is over.
func placeOrder(ctx context.Context, in *bufio.Reader, order *shop.Order, c *shop.Customer) bool {
	if order.Empty() {
		fmt.Println("Your cart is empty! Add some items first.")
		return false
	}
	printCart(order)

	fmt.Println("\nSELECT PAYMENT METHOD")
	fmt.Printf("1. Wallet (Balance: Rs. %s)\n", c.Ledger().Balance().StringFixed(2))
	fmt.Println("2. Credit/Debit Card")
	fmt.Println("3. Mobile Transfer")
	fmt.Println("4. Cash on Delivery")
	fmt.Print("Choose payment method: ")

	var method engine.Method
	meta := map[string]string{}
	switch readChoice(in, 1, 4) {
	case 1:
		method = engine.BALANCE
	case 2:
		method = engine.CARD
		meta[card.MetaCardNumber] = readLine(in, "Enter card number (16 digits): ")
		meta[card.MetaCardHolder] = readLine(in, "Enter card holder name: ")
	case 3:
		method = engine.MOBILE
		meta[mobile.MetaMobileID] = readLine(in, "Enter mobile transfer ID: ")
	case 4:
		method = engine.CASH_ON_DELIVERY
	}

	s := strategies.Get(method)
	if s == nil {
		fmt.Println("Payment method is not available.")
		return false
	}

	fmt.Println("\nProcessing your order...")
	p, err := order.Checkout(ctx, s, meta)
	if err != nil {
		fmt.Println("Order failed:", err)
		return false
	}
	if !p.Status.Match(engine.SUCCESS_P) {
		fmt.Println("Payment failed! Please try again with a different payment method.")
		return false
	}
	fmt.Print(order.Receipt().String())
	return true
}

func readLine(in *bufio.Reader, prompt string) string {
	for {
		fmt.Print(prompt)
		line, err := in.ReadString('\n')
		if err != nil {
			os.Exit(0)
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
}

func readChoice(in *bufio.Reader, min, max int) int {
	for {
		line, err := in.ReadString('\n')
		if err != nil {
			os.Exit(0)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= min && n <= max {
			return n
		}
		fmt.Printf("Invalid choice. Enter between %d and %d: ", min, max)
	}
}

func readPositiveInt(in *bufio.Reader) int {
	for {
		line, err := in.ReadString('\n')
		if err != nil {
			os.Exit(0)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n > 0 {
			return n
		}
		fmt.Print("Please enter a valid quantity: ")
	}
}

func readPositiveAmount(in *bufio.Reader) decimal.Decimal {
	for {
		line, err := in.ReadString('\n')
		if err != nil {
			os.Exit(0)
		}
		v, err := decimal.NewFromString(strings.TrimSpace(line))
		if err == nil && v.IsPositive() {
			return v
		}
		fmt.Print("Please enter a valid amount: ")
	}
}

func defaultLogger(levelSet string) {
	level := zapcore.InfoLevel
	if err := level.Set(levelSet); err != nil {
		panic(err)
	}
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(level)
	l, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
	zap.RedirectStdLog(l.Named("stdlog"))
}
