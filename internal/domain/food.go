package domain

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// BasePrice is charged for every food item before toppings.
var BasePrice = decimal.RequireFromString("11.50")

type Category string

const (
	CategoryPizza Category = "pizza"
	CategoryPasta Category = "pasta"
)

// Food is the closed set {*Pizza, *Pasta}. Code that needs the concrete
// selection switches on the type.
type Food interface {
	Category() Category
	Price() decimal.Decimal
	MealType() MealType
	String() string
	food()
}

// Pizza holds zero or more distinct toppings in the order they were chosen.
type Pizza struct {
	toppings []PizzaTopping
	price    decimal.Decimal
	mealType MealType
}

func NewPizza(toppings ...PizzaTopping) *Pizza {
	p := &Pizza{}
	p.SetToppings(toppings)
	return p
}

// AddTopping is a no-op when the topping is already present or is not on
// the catalog.
func (p *Pizza) AddTopping(t PizzaTopping) {
	if !t.Valid() || slices.Contains(p.toppings, t) {
		return
	}
	p.toppings = append(p.toppings, t)
	p.recalculate()
}

// SetToppings replaces the toppings, dropping duplicates and values outside
// the catalog.
func (p *Pizza) SetToppings(toppings []PizzaTopping) {
	p.toppings = make([]PizzaTopping, 0, len(toppings))
	for _, t := range toppings {
		if t.Valid() && !slices.Contains(p.toppings, t) {
			p.toppings = append(p.toppings, t)
		}
	}
	p.recalculate()
}

func (p *Pizza) Toppings() []PizzaTopping {
	return slices.Clone(p.toppings)
}

func (p *Pizza) HasTopping(t PizzaTopping) bool {
	return slices.Contains(p.toppings, t)
}

func (p *Pizza) recalculate() {
	price := BasePrice
	for _, t := range p.toppings {
		price = price.Add(t.Price())
	}
	p.price = price
	p.mealType = classify(p.toppings)
}

func (p *Pizza) Category() Category     { return CategoryPizza }
func (p *Pizza) Price() decimal.Decimal { return p.price }
func (p *Pizza) MealType() MealType     { return p.mealType }
func (p *Pizza) food()                  {}

// Equal reports whether both pizzas carry the same topping set.
func (p *Pizza) Equal(other *Pizza) bool {
	if other == nil || len(p.toppings) != len(other.toppings) {
		return false
	}
	for _, t := range p.toppings {
		if !other.HasTopping(t) {
			return false
		}
	}
	return true
}

// String renders e.g. "Pizza with ham, pineapple and cheese - $18.00".
func (p *Pizza) String() string {
	var b strings.Builder
	b.WriteString("Pizza")
	if len(p.toppings) == 0 {
		b.WriteString(" (Plain)")
	} else {
		b.WriteString(" with ")
		last := len(p.toppings) - 1
		for i, t := range p.toppings {
			b.WriteString(t.Label())
			switch {
			case i < last-1:
				b.WriteString(", ")
			case i == last-1:
				b.WriteString(" and ")
			}
		}
	}
	b.WriteString(" - " + FormatPrice(p.price))
	return b.String()
}

// Pasta holds at most one topping; the zero topping means plain.
type Pasta struct {
	topping  PastaTopping
	price    decimal.Decimal
	mealType MealType
}

func NewPasta() *Pasta {
	p := &Pasta{}
	p.recalculate()
	return p
}

// NewPastaWith returns plain pasta when t is not on the catalog.
func NewPastaWith(t PastaTopping) *Pasta {
	p := NewPasta()
	p.SetTopping(t)
	return p
}

// SetTopping ignores values outside the catalog.
func (p *Pasta) SetTopping(t PastaTopping) {
	if !t.Valid() {
		return
	}
	p.topping = t
	p.recalculate()
}

func (p *Pasta) ClearTopping() {
	p.topping = ""
	p.recalculate()
}

func (p *Pasta) Topping() (PastaTopping, bool) {
	return p.topping, p.topping != ""
}

func (p *Pasta) recalculate() {
	if p.topping == "" {
		p.price = BasePrice
		p.mealType = MealVegan
		return
	}
	p.price = BasePrice.Add(p.topping.Price())
	p.mealType = classify([]PastaTopping{p.topping})
}

func (p *Pasta) Category() Category     { return CategoryPasta }
func (p *Pasta) Price() decimal.Decimal { return p.price }
func (p *Pasta) MealType() MealType     { return p.mealType }
func (p *Pasta) food()                  {}

func (p *Pasta) Equal(other *Pasta) bool {
	return other != nil && p.topping == other.topping
}

func (p *Pasta) String() string {
	if p.topping == "" {
		return "Pasta (Plain) - " + FormatPrice(p.price)
	}
	return "Pasta " + p.topping.Label() + " - " + FormatPrice(p.price)
}

// FormatPrice renders an amount as dollars with two decimals.
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func cloneFood(f Food) Food {
	switch v := f.(type) {
	case *Pizza:
		return NewPizza(v.toppings...)
	case *Pasta:
		return NewPastaWith(v.topping)
	default:
		return f
	}
}
