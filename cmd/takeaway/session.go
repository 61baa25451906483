package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"takeaway/internal/domain"
	"takeaway/internal/export"
	"takeaway/internal/menu"
	"takeaway/internal/service"
)

var contactPattern = regexp.MustCompile(`^\d{8,15}$`)

const divider = "------------------------------"

// Session is the interactive console over one ledger.
type Session struct {
	ledger    service.LedgerInterface
	catalog   *menu.Catalog
	in        *bufio.Scanner
	out       io.Writer
	exportDir string
	slips     export.SlipGenerator
	now       func() time.Time
}

func NewSession(ledger service.LedgerInterface, catalog *menu.Catalog, in io.Reader, out io.Writer, exportDir string, slips export.SlipGenerator) *Session {
	return &Session{
		ledger:    ledger,
		catalog:   catalog,
		in:        bufio.NewScanner(in),
		out:       out,
		exportDir: exportDir,
		slips:     slips,
		now:       time.Now,
	}
}

// Run shows the main menu until the user exits or input ends.
func (s *Session) Run(ctx context.Context) error {
	s.println("Welcome to the Takeaway Order Management System!")

	for {
		s.mainMenu()
		choice, err := s.choice(1, 9)
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case 1:
			err = s.createOrder(ctx)
		case 2:
			err = s.createQuickOrder(ctx)
		case 3:
			s.deliverOrder(ctx)
		case 4:
			s.printAllOrders()
		case 5:
			err = s.searchOrders()
		case 6:
			err = s.viewHistory()
		case 7:
			err = s.filterByMealType()
		case 8:
			s.exportOrders()
		case 9:
			s.println("Thank you for using the Order Management System!")
			return nil
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *Session) mainMenu() {
	s.println("\n=== Takeaway Order Management System ===")
	s.println("1. Enter the details of a customer order")
	s.println("2. Quick order from menu")
	s.println("3. Deliver an order")
	s.println("4. Print out details of all orders")
	s.println("5. Search orders by customer name")
	s.println("6. View customer order history")
	s.println("7. Filter orders by meal type")
	s.println("8. Export orders to text file")
	s.println("9. Exit the program")
	s.print("Enter your choice: ")
}

func (s *Session) createOrder(ctx context.Context) error {
	s.println("\n=== Create New Order ===")
	order, err := s.newOrder()
	if err != nil {
		return err
	}

	for {
		s.println("\nSelect food item:")
		s.println("1. Pizza")
		s.println("2. Pasta")
		s.println("3. Finish adding items")
		s.print("Enter choice: ")
		choice, err := s.choice(1, 3)
		if err != nil {
			return err
		}

		if choice == 3 {
			if order.ItemCount() == 0 {
				s.println("Error: Order must contain at least one food item.")
				continue
			}
			break
		}

		if choice == 1 {
			err = s.addPizza(order)
		} else {
			err = s.addPasta(order)
		}
		if err != nil {
			return err
		}

		more, err := s.addAnother()
		if err != nil {
			return err
		}
		if !more {
			if order.ItemCount() == 0 {
				s.println("Error: Order must contain at least one food item.")
				continue
			}
			break
		}
	}

	s.placeOrder(ctx, order, "Order created successfully!")
	return nil
}

func (s *Session) createQuickOrder(ctx context.Context) error {
	s.println("\n=== Quick Order from Menu ===")
	order, err := s.newOrder()
	if err != nil {
		return err
	}

	entries := s.catalog.Entries()
	finish := len(entries) + 1
	for {
		s.println("\nSelect from our menu:")
		s.listEntries(entries)
		s.printf("%d. Finish adding items\n", finish)
		s.print("Enter choice: ")
		choice, err := s.choice(1, finish)
		if err != nil {
			return err
		}

		if choice == finish {
			if order.ItemCount() == 0 {
				s.println("Error: Order must contain at least one food item.")
				continue
			}
			break
		}

		if !s.addMenuItem(order, entries[choice-1].Name) {
			continue
		}
		more, err := s.addAnother()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	s.placeOrder(ctx, order, "Quick order created successfully!")
	return nil
}

func (s *Session) newOrder() (*domain.Order, error) {
	name, err := s.requiredInput("Enter customer name: ", "Customer name")
	if err != nil {
		return nil, err
	}
	contact, err := s.contactNumber()
	if err != nil {
		return nil, err
	}
	address, err := s.requiredInput("Enter delivery address: ", "Delivery address")
	if err != nil {
		return nil, err
	}
	return domain.NewOrder(name, contact, address), nil
}

func (s *Session) placeOrder(ctx context.Context, order *domain.Order, message string) {
	err := s.ledger.AddOrder(ctx, order)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrPersist):
		s.printf("Warning: order kept for this session only: %v\n", err)
	default:
		s.printf("Error: %v\n", err)
		return
	}
	s.println("\n" + message)
	s.println(order.String())
}

func (s *Session) addPizza(order *domain.Order) error {
	s.println("\nPizza Options:")
	s.println("1. Popular Pizza Combinations")
	s.println("2. Custom Pizza (build your own)")
	choice, err := s.choice(1, 2)
	if err != nil {
		return err
	}
	if choice == 1 {
		return s.addPopular(order, domain.CategoryPizza, "\nPopular Pizza Combinations:")
	}
	return s.addCustomPizza(order)
}

func (s *Session) addPasta(order *domain.Order) error {
	s.println("\nPasta Options:")
	s.println("1. Popular Pasta Dishes")
	s.println("2. Custom Pasta (choose your topping)")
	choice, err := s.choice(1, 2)
	if err != nil {
		return err
	}
	if choice == 1 {
		return s.addPopular(order, domain.CategoryPasta, "\nPopular Pasta Dishes:")
	}
	return s.addCustomPasta(order)
}

func (s *Session) addPopular(order *domain.Order, category domain.Category, title string) error {
	var entries []menu.Entry
	for _, entry := range s.catalog.Entries() {
		if entry.Category == category {
			entries = append(entries, entry)
		}
	}

	s.println(title)
	s.listEntries(entries)
	choice, err := s.choice(1, len(entries))
	if err != nil {
		return err
	}
	s.addMenuItem(order, entries[choice-1].Name)
	return nil
}

func (s *Session) addMenuItem(order *domain.Order, name string) bool {
	item, err := s.catalog.Create(name)
	if err != nil {
		s.printf("Error creating menu item: %v\n", err)
		return false
	}
	if err := order.AddItem(item); err != nil {
		s.printf("Error adding item: %v\n", err)
		return false
	}
	s.println("Added: " + item.String())
	return true
}

func (s *Session) addCustomPizza(order *domain.Order) error {
	toppings := domain.PizzaToppings()
	s.println("\nCustom Pizza Toppings (select multiple by entering numbers separated by spaces):")
	s.printf("0. Plain pizza (no toppings) - %s\n", domain.FormatPrice(domain.BasePrice))
	for i, t := range toppings {
		s.printf("%d. %s - %s extra\n", i+1, t.Label(), domain.FormatPrice(t.Price()))
	}
	s.print("Enter your choices (e.g., '1 3 5' or '0' for plain): ")

	line, err := s.readLine()
	if err != nil {
		return err
	}

	var names []string
	if line != "0" {
		for _, field := range strings.Fields(line) {
			n, convErr := strconv.Atoi(field)
			if convErr != nil || n < 1 || n > len(toppings) {
				s.println("Invalid input. Creating plain pizza.")
				names = nil
				break
			}
			names = append(names, string(toppings[n-1]))
		}
	}

	pizza, err := s.catalog.Build(string(domain.CategoryPizza), menu.Options{Toppings: names})
	if err != nil {
		s.printf("Error creating pizza: %v\n", err)
		return nil
	}
	if err := order.AddItem(pizza); err != nil {
		s.printf("Error adding pizza: %v\n", err)
		return nil
	}
	s.println("Added: " + pizza.String())
	return nil
}

func (s *Session) addCustomPasta(order *domain.Order) error {
	toppings := domain.PastaToppings()
	s.println("\nCustom Pasta Toppings:")
	s.printf("1. Plain pasta (vegan) - %s\n", domain.FormatPrice(domain.BasePrice))
	for i, t := range toppings {
		s.printf("%d. %s - %s\n", i+2, t.Label(), domain.FormatPrice(domain.BasePrice.Add(t.Price())))
	}

	choice, err := s.choice(1, len(toppings)+1)
	if err != nil {
		return err
	}

	var opts menu.Options
	if choice > 1 {
		opts.Toppings = []string{string(toppings[choice-2])}
	}
	pasta, err := s.catalog.Build(string(domain.CategoryPasta), opts)
	if err != nil {
		s.printf("Error creating pasta: %v\n", err)
		return nil
	}
	if err := order.AddItem(pasta); err != nil {
		s.printf("Error adding pasta: %v\n", err)
		return nil
	}
	s.println("Added: " + pasta.String())
	return nil
}

func (s *Session) deliverOrder(ctx context.Context) {
	order, ok, err := s.ledger.DeliverOrder(ctx)
	if !ok {
		s.println("No orders to deliver.")
		return
	}
	if err != nil {
		s.printf("Warning: delivery not saved: %v\n", err)
	}
	s.println("\n=== Order Delivered ===")
	s.println(order.String())

	if s.slips == nil {
		return
	}
	path, err := export.WriteSlip(s.exportDir, order, s.slips)
	if err != nil {
		s.printf("Warning: could not write delivery slip: %v\n", err)
		return
	}
	s.println("Delivery slip saved to " + path)
}

func (s *Session) printAllOrders() {
	if s.ledger.PendingCount() == 0 {
		s.println("No orders in the system.")
		return
	}

	s.println("\n=== All Current Orders ===")
	n := 1
	for order := range s.ledger.Pending() {
		s.printOrder(fmt.Sprintf("Order %d", n), order)
		n++
	}
	s.printf("\nTotal orders waiting: %d\n", s.ledger.PendingCount())
}

func (s *Session) searchOrders() error {
	if s.ledger.PendingCount() == 0 {
		s.println("No orders in the system.")
		return nil
	}

	query, err := s.requiredInput("Enter customer name to search: ", "Customer name")
	if err != nil {
		return err
	}
	query = domain.NormalizeCustomer(query)

	s.printf("\n=== Search Results for '%s' ===\n", query)
	found := s.ledger.FindByCustomer(query)
	for i, order := range found {
		s.printOrder(fmt.Sprintf("Order %d", i+1), order)
	}
	if len(found) == 0 {
		s.printf("No orders found for customer name containing '%s'.\n", query)
	}
	return nil
}

func (s *Session) viewHistory() error {
	if len(s.ledger.Customers()) == 0 {
		s.println("No customer history available.")
		return nil
	}

	name, err := s.requiredInput("Enter customer name: ", "Customer name")
	if err != nil {
		return err
	}
	name = domain.NormalizeCustomer(name)

	history, ok := s.ledger.History(name)
	if !ok {
		s.printf("No order history found for customer '%s'.\n", name)
		return nil
	}
	s.printf("\n=== Order History for %s ===\n", name)
	s.printf("Total orders: %d\n", len(history))
	for i, order := range history {
		s.printOrder(fmt.Sprintf("Historical Order #%d", i+1), order)
	}
	return nil
}

func (s *Session) filterByMealType() error {
	if s.ledger.PendingCount() == 0 {
		s.println("No orders in the system.")
		return nil
	}

	mealTypes := domain.MealTypes()
	s.println("\nSelect meal type to filter:")
	for i, m := range mealTypes {
		s.printf("%d. %s\n", i+1, menu.DisplayName(string(m)))
	}
	choice, err := s.choice(1, len(mealTypes))
	if err != nil {
		return err
	}
	selected := mealTypes[choice-1]

	s.printf("\n=== %s Orders ===\n", selected)
	found := s.ledger.FilterByMealType(selected)
	for i, order := range found {
		s.printOrder(fmt.Sprintf("Order %d", i+1), order)
	}
	if len(found) == 0 {
		s.printf("No orders found for %s meal type.\n", strings.ToLower(string(selected)))
	}
	return nil
}

func (s *Session) exportOrders() {
	if s.ledger.PendingCount() == 0 {
		s.println("No orders to export.")
		return
	}

	var orders []*domain.Order
	for order := range s.ledger.Pending() {
		orders = append(orders, order)
	}
	path, err := export.ToFile(s.exportDir, orders, s.now())
	if err != nil {
		s.printf("Error: could not export orders: %v\n", err)
		return
	}
	s.printf("Exported %d orders to %s\n", len(orders), path)
}

func (s *Session) printOrder(heading string, order *domain.Order) {
	s.println("\n" + heading)
	s.println(order.String())
	s.println(divider)
}

func (s *Session) listEntries(entries []menu.Entry) {
	for i, entry := range entries {
		s.printf("%d. %s (%s) - %s\n", i+1, entry.DisplayName, entry.Description, domain.FormatPrice(entry.Price))
	}
}

func (s *Session) addAnother() (bool, error) {
	s.print("Add another item? (y/n): ")
	answer, err := s.readLine()
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

func (s *Session) requiredInput(prompt, field string) (string, error) {
	for {
		s.print(prompt)
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			s.printf("Error: %s cannot be empty.\n", field)
			continue
		}
		return line, nil
	}
}

func (s *Session) contactNumber() (string, error) {
	for {
		s.print("Enter contact number: ")
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		switch {
		case line == "":
			s.println("Error: Contact number cannot be empty.")
		case !contactPattern.MatchString(line):
			s.println("Error: Contact number must be 8-15 digits only.")
		default:
			return line, nil
		}
	}
}

// choice reads numbers until one falls within [lo, hi].
func (s *Session) choice(lo, hi int) (int, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
			s.println("Error: Please enter a valid number.")
		case n < lo || n > hi:
			s.printf("Error: Please enter a number between %d and %d.\n", lo, hi)
		default:
			return n, nil
		}
		s.print("Enter choice: ")
	}
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
