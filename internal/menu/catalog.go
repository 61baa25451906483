package menu

import (
	"errors"
	"fmt"
	"strings"

	"takeaway/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownMenuItem     = errors.New("unknown menu item")
	ErrUnsupportedCategory = errors.New("unsupported food category")
	ErrTooManyToppings     = errors.New("pasta takes at most one topping")
)

type recipe struct {
	name        string
	category    domain.Category
	description string
	build       func() domain.Food
}

var recipes = []recipe{
	{
		name:        "hawaiian_pizza",
		category:    domain.CategoryPizza,
		description: "Ham, pineapple, and cheese",
		build:       func() domain.Food { return domain.NewPizza(domain.Ham, domain.Pineapple, domain.Cheese) },
	},
	{
		name:        "meat_lovers_pizza",
		category:    domain.CategoryPizza,
		description: "Ham, seafood, and cheese",
		build:       func() domain.Food { return domain.NewPizza(domain.Ham, domain.Seafood, domain.Cheese) },
	},
	{
		name:        "vegetarian_supreme_pizza",
		category:    domain.CategoryPizza,
		description: "Cheese, mushrooms, tomato, and pineapple",
		build: func() domain.Food {
			return domain.NewPizza(domain.Cheese, domain.Mushrooms, domain.PizzaTomato, domain.Pineapple)
		},
	},
	{
		name:        "margherita_pizza",
		category:    domain.CategoryPizza,
		description: "Cheese and tomato",
		build:       func() domain.Food { return domain.NewPizza(domain.Cheese, domain.PizzaTomato) },
	},
	{
		name:        "seafood_deluxe_pizza",
		category:    domain.CategoryPizza,
		description: "Seafood, cheese, and tomato",
		build:       func() domain.Food { return domain.NewPizza(domain.Seafood, domain.Cheese, domain.PizzaTomato) },
	},
	{
		name:        "classic_marinara_pasta",
		category:    domain.CategoryPasta,
		description: "Pasta with marinara sauce (contains meat)",
		build:       func() domain.Food { return domain.NewPastaWith(domain.Marinara) },
	},
	{
		name:        "creamy_primavera_pasta",
		category:    domain.CategoryPasta,
		description: "Pasta with primavera sauce (vegetarian)",
		build:       func() domain.Food { return domain.NewPastaWith(domain.Primavera) },
	},
	{
		name:        "hearty_bolognese_pasta",
		category:    domain.CategoryPasta,
		description: "Pasta with bolognese sauce (contains meat)",
		build:       func() domain.Food { return domain.NewPastaWith(domain.Bolognese) },
	},
	{
		name:        "simple_tomato_pasta",
		category:    domain.CategoryPasta,
		description: "Pasta with tomato sauce (vegan)",
		build:       func() domain.Food { return domain.NewPastaWith(domain.PastaTomato) },
	},
}

// Entry is a menu line as shown to the customer.
type Entry struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	Category    domain.Category `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Options selects toppings for a custom item by name. Pasta accepts at most
// one; no toppings builds the plain item.
type Options struct {
	Toppings []string
}

// Catalog is the fixed table of named dishes plus the custom-item builder.
type Catalog struct {
	recipes []recipe
	index   map[string]int
}

func NewCatalog() *Catalog {
	index := make(map[string]int, len(recipes))
	for i, r := range recipes {
		index[r.name] = i
	}
	return &Catalog{recipes: recipes, index: index}
}

func (c *Catalog) lookup(name string) (recipe, error) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return recipe{}, fmt.Errorf("%w: %q", ErrUnknownMenuItem, name)
	}
	return c.recipes[i], nil
}

// Names returns every menu item name in declared order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.recipes))
	for _, r := range c.recipes {
		names = append(names, r.name)
	}
	return names
}

func (c *Catalog) NamesFor(category domain.Category) []string {
	var names []string
	for _, r := range c.recipes {
		if r.category == category {
			names = append(names, r.name)
		}
	}
	return names
}

// Create builds a fresh item from the named recipe. Names match case-insensitively.
func (c *Catalog) Create(name string) (domain.Food, error) {
	r, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	return r.build(), nil
}

func (c *Catalog) Describe(name string) (string, error) {
	r, err := c.lookup(name)
	if err != nil {
		return "", err
	}
	return r.description, nil
}

func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.recipes))
	for _, r := range c.recipes {
		entries = append(entries, Entry{
			Name:        r.name,
			DisplayName: DisplayName(r.name),
			Category:    r.category,
			Description: r.description,
			Price:       r.build().Price(),
		})
	}
	return entries
}

// Build creates an ad-hoc pizza or pasta from caller-chosen toppings.
func (c *Catalog) Build(category string, opts Options) (domain.Food, error) {
	switch domain.Category(strings.ToLower(strings.TrimSpace(category))) {
	case domain.CategoryPizza:
		toppings := make([]domain.PizzaTopping, 0, len(opts.Toppings))
		for _, name := range opts.Toppings {
			t, err := domain.ParsePizzaTopping(name)
			if err != nil {
				return nil, err
			}
			toppings = append(toppings, t)
		}
		return domain.NewPizza(toppings...), nil
	case domain.CategoryPasta:
		switch len(opts.Toppings) {
		case 0:
			return domain.NewPasta(), nil
		case 1:
			t, err := domain.ParsePastaTopping(opts.Toppings[0])
			if err != nil {
				return nil, err
			}
			return domain.NewPastaWith(t), nil
		default:
			return nil, fmt.Errorf("%w: got %d", ErrTooManyToppings, len(opts.Toppings))
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCategory, category)
	}
}

// DisplayName turns "hawaiian_pizza" into "Hawaiian Pizza".
func DisplayName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
