package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"estoque/internal/models"
	"estoque/internal/repositories"
	"estoque/internal/services"
	"estoque/internal/validation"
)

// ConsoleHandler is the presentation layer: it reads user intents from an
// interactive prompt, forwards them to the inventory service and renders the
// returned product or failure. All UI state lives here; the service knows
// nothing about it.
type ConsoleHandler struct {
	service *services.InventoryService
	in      *bufio.Reader
	out     io.Writer
	locale  string
	preview int
}

// NewConsoleHandler creates a new ConsoleHandler. The preview size bounds
// the dashboard's low-stock list.
func NewConsoleHandler(service *services.InventoryService, in io.Reader, out io.Writer, locale string, preview int) *ConsoleHandler {
	if preview <= 0 {
		preview = models.DefaultLowStockPreview
	}
	return &ConsoleHandler{
		service: service,
		in:      bufio.NewReader(in),
		out:     out,
		locale:  locale,
		preview: preview,
	}
}

// Run reads commands until quit or end of input.
func (h *ConsoleHandler) Run() error {
	fmt.Fprintln(h.out, "Inventory Control — type 'help' for commands")
	for {
		fmt.Fprint(h.out, "> ")
		line, err := h.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(h.out)
				return nil
			}
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			h.printHelp()
		case "list":
			h.handleList()
		case "categories":
			h.handleCategories()
		case "dashboard":
			h.handleDashboard()
		case "add":
			h.handleAdd()
		case "edit":
			h.handleEdit(args[1:])
		case "remove":
			h.handleRemove(args[1:])
		case "stock":
			h.handleStock(args[1:])
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(h.out, "Unknown command %q — type 'help' for commands\n", args[0])
		}
	}
}

func (h *ConsoleHandler) printHelp() {
	fmt.Fprintln(h.out, `Commands:
  list                          show all products
  add                           add a product (prompts for fields)
  edit <id>                     edit a product (blank keeps current value)
  remove <id>                   delete a product
  stock <id> <qty> <add|remove> adjust stock
  dashboard                     show inventory metrics
  categories                    list the product categories
  quit                          leave`)
}

func (h *ConsoleHandler) handleList() {
	products, err := h.service.ListProducts()
	if err != nil {
		h.renderError(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(h.out, "No products in inventory.")
		return
	}
	fmt.Fprintf(h.out, "%-36s  %-24s  %-10s  %-22s  %8s  %10s  %9s\n",
		"ID", "NAME", "SKU", "CATEGORY", "QTY", "PRICE", "THRESHOLD")
	for _, p := range products {
		fmt.Fprintf(h.out, "%-36s  %-24s  %-10s  %-22s  %8d  %10.2f  %9d\n",
			p.ID, p.Name, p.SKU, p.Category.Label(h.locale), p.Quantity, p.Price, p.Threshold)
	}
}

func (h *ConsoleHandler) handleCategories() {
	for _, c := range models.Categories() {
		fmt.Fprintln(h.out, c.Label(h.locale))
	}
}

func (h *ConsoleHandler) handleDashboard() {
	metrics, err := h.service.Metrics(h.preview)
	if err != nil {
		h.renderError(err)
		return
	}

	fmt.Fprintf(h.out, "Total Products:  %d\n", metrics.TotalProducts)
	fmt.Fprintf(h.out, "Total Items:     %d\n", metrics.TotalItems)
	fmt.Fprintf(h.out, "Low Stock Items: %d\n", metrics.LowStockCount)
	fmt.Fprintf(h.out, "Inventory Value: $%.2f\n", metrics.InventoryValue)

	if metrics.TotalProducts == 0 {
		fmt.Fprintln(h.out, "Add products to your inventory to see metrics and insights here.")
		return
	}
	if metrics.LowStockCount == 0 {
		fmt.Fprintln(h.out, "No items are below their stock threshold.")
		return
	}
	fmt.Fprintln(h.out, "Products that need restocking:")
	for _, item := range metrics.LowStock {
		fmt.Fprintf(h.out, "  %s — %d of %d min — %d needed\n",
			item.Product.Name, item.Product.Quantity, item.Product.Threshold, item.Needed)
	}
	if metrics.LowStockCount > len(metrics.LowStock) {
		fmt.Fprintf(h.out, "  …and %d more\n", metrics.LowStockCount-len(metrics.LowStock))
	}
}

func (h *ConsoleHandler) handleAdd() {
	input := h.promptProduct(nil)
	product, err := h.service.AddProduct(input)
	if err != nil {
		h.renderError(err)
		return
	}
	fmt.Fprintf(h.out, "%s has been added to your inventory.\n", product.Name)
}

func (h *ConsoleHandler) handleEdit(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "Usage: edit <id>")
		return
	}
	products, err := h.service.ListProducts()
	if err != nil {
		h.renderError(err)
		return
	}
	var current *models.Product
	for i := range products {
		if products[i].ID == args[0] {
			current = &products[i]
			break
		}
	}
	if current == nil {
		fmt.Fprintln(h.out, "Product not found.")
		return
	}

	input := h.promptProduct(current)
	product, err := h.service.UpdateProduct(current.ID, input)
	if err != nil {
		h.renderError(err)
		return
	}
	fmt.Fprintf(h.out, "%s has been updated.\n", product.Name)
}

func (h *ConsoleHandler) handleRemove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "Usage: remove <id>")
		return
	}
	product, err := h.service.DeleteProduct(args[0])
	if err != nil {
		h.renderError(err)
		return
	}
	fmt.Fprintf(h.out, "%s has been removed from your inventory.\n", product.Name)
}

func (h *ConsoleHandler) handleStock(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(h.out, "Usage: stock <id> <qty> <add|remove>")
		return
	}
	delta, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(h.out, "Quantity must be a whole number.")
		return
	}

	var direction services.StockDirection
	var verb string
	switch args[2] {
	case "add":
		direction, verb = services.StockIncrease, "increased"
	case "remove":
		direction, verb = services.StockDecrease, "decreased"
	default:
		fmt.Fprintln(h.out, "Operation must be 'add' or 'remove'.")
		return
	}

	product, err := h.service.AdjustStock(args[0], delta, direction)
	if err != nil {
		h.renderError(err)
		return
	}
	fmt.Fprintf(h.out, "%s stock %s by %d (now %d).\n", product.Name, verb, delta, product.Quantity)
}

// promptProduct collects the product fields interactively. When current is
// non-nil its values are the defaults and a blank answer keeps them,
// otherwise the form starts empty with the suggested threshold of 5.
func (h *ConsoleHandler) promptProduct(current *models.Product) models.ProductInput {
	var def models.ProductInput
	if current != nil {
		def = models.ProductInput{
			Name:        current.Name,
			SKU:         current.SKU,
			Category:    current.Category,
			Quantity:    current.Quantity,
			Price:       current.Price,
			Threshold:   current.Threshold,
			ImageURL:    current.ImageURL,
			Description: current.Description,
			Supplier:    current.Supplier,
		}
	} else {
		def.Threshold = models.DefaultThreshold
	}

	input := models.ProductInput{
		Name:     h.promptString("Product name", def.Name),
		SKU:      h.promptString("SKU", def.SKU),
		Category: h.promptCategory(def.Category),
	}
	input.Quantity = h.promptInt("Quantity", def.Quantity)
	input.Price = h.promptFloat("Price", def.Price)
	input.Threshold = h.promptInt("Low stock threshold", def.Threshold)
	input.ImageURL = h.promptString("Image URL (optional)", def.ImageURL)
	input.Description = h.promptString("Description (optional)", def.Description)
	input.Supplier = h.promptString("Supplier (optional)", def.Supplier)
	return input
}

func (h *ConsoleHandler) promptString(label, def string) string {
	if def != "" {
		fmt.Fprintf(h.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(h.out, "%s: ", label)
	}
	line, err := h.in.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func (h *ConsoleHandler) promptCategory(def models.Category) models.Category {
	labels := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		labels = append(labels, c.Label(h.locale))
	}
	fmt.Fprintf(h.out, "Categories: %s\n", strings.Join(labels, ", "))

	answer := h.promptString("Category", string(def))
	// Accept either the canonical identifier or the localized label.
	for _, c := range models.Categories() {
		if strings.EqualFold(answer, string(c)) || answer == c.Label(h.locale) {
			return c
		}
	}
	// Leave unmatched answers to the validator, which rejects anything
	// outside the closed set.
	return models.Category(answer)
}

func (h *ConsoleHandler) promptInt(label string, def int) int {
	answer := h.promptString(label, strconv.Itoa(def))
	value, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Fprintf(h.out, "Not a whole number, keeping %d.\n", def)
		return def
	}
	return value
}

func (h *ConsoleHandler) promptFloat(label string, def float64) float64 {
	answer := h.promptString(label, strconv.FormatFloat(def, 'f', -1, 64))
	value, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		fmt.Fprintf(h.out, "Not a number, keeping %v.\n", def)
		return def
	}
	return value
}

// renderError translates a failure kind into a user-facing notice.
func (h *ConsoleHandler) renderError(err error) {
	var validationErr *validation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fields := make([]string, 0, len(validationErr.Fields))
		for name := range validationErr.Fields {
			fields = append(fields, name)
		}
		sort.Strings(fields)
		for _, name := range fields {
			fmt.Fprintf(h.out, "  %s: %s\n", name, validationErr.Fields[name])
		}
	case errors.Is(err, repositories.ErrProductNotFound):
		fmt.Fprintln(h.out, "Product not found.")
	default:
		fmt.Fprintf(h.out, "Something went wrong: %v\n", err)
	}
}
