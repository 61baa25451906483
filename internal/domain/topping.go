package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownTopping = errors.New("unknown topping")

// ToppingInfo is one immutable row of a topping catalog.
type ToppingInfo struct {
	Name       string          `json:"name"`
	ExtraPrice decimal.Decimal `json:"extra_price"`
	Vegetarian bool            `json:"vegetarian"`
	Vegan      bool            `json:"vegan"`
}

type PizzaTopping string

const (
	Ham         PizzaTopping = "HAM"
	Cheese      PizzaTopping = "CHEESE"
	Pineapple   PizzaTopping = "PINEAPPLE"
	Mushrooms   PizzaTopping = "MUSHROOMS"
	PizzaTomato PizzaTopping = "TOMATO"
	Seafood     PizzaTopping = "SEAFOOD"
)

type PastaTopping string

const (
	Bolognese   PastaTopping = "BOLOGNESE"
	Marinara    PastaTopping = "MARINARA"
	Primavera   PastaTopping = "PRIMAVERA"
	PastaTomato PastaTopping = "TOMATO"
)

var pizzaCatalog = []ToppingInfo{
	{Name: string(Ham), ExtraPrice: decimal.RequireFromString("2.00")},
	{Name: string(Cheese), ExtraPrice: decimal.RequireFromString("2.00"), Vegetarian: true},
	{Name: string(Pineapple), ExtraPrice: decimal.RequireFromString("2.50"), Vegetarian: true, Vegan: true},
	{Name: string(Mushrooms), ExtraPrice: decimal.RequireFromString("2.00"), Vegetarian: true, Vegan: true},
	{Name: string(PizzaTomato), ExtraPrice: decimal.RequireFromString("2.00"), Vegetarian: true, Vegan: true},
	{Name: string(Seafood), ExtraPrice: decimal.RequireFromString("3.50")},
}

var pastaCatalog = []ToppingInfo{
	{Name: string(Bolognese), ExtraPrice: decimal.RequireFromString("5.20")},
	{Name: string(Marinara), ExtraPrice: decimal.RequireFromString("6.80")},
	{Name: string(Primavera), ExtraPrice: decimal.RequireFromString("5.20"), Vegetarian: true},
	{Name: string(PastaTomato), ExtraPrice: decimal.RequireFromString("4.00"), Vegetarian: true, Vegan: true},
}

var (
	pizzaIndex = indexCatalog(pizzaCatalog)
	pastaIndex = indexCatalog(pastaCatalog)
)

func indexCatalog(rows []ToppingInfo) map[string]ToppingInfo {
	index := make(map[string]ToppingInfo, len(rows))
	for _, row := range rows {
		index[row.Name] = row
	}
	return index
}

// PizzaToppings returns every pizza topping in declared order.
func PizzaToppings() []PizzaTopping {
	toppings := make([]PizzaTopping, 0, len(pizzaCatalog))
	for _, row := range pizzaCatalog {
		toppings = append(toppings, PizzaTopping(row.Name))
	}
	return toppings
}

// PastaToppings returns every pasta topping in declared order.
func PastaToppings() []PastaTopping {
	toppings := make([]PastaTopping, 0, len(pastaCatalog))
	for _, row := range pastaCatalog {
		toppings = append(toppings, PastaTopping(row.Name))
	}
	return toppings
}

func ParsePizzaTopping(name string) (PizzaTopping, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if _, ok := pizzaIndex[key]; !ok {
		return "", fmt.Errorf("%w: pizza topping %q", ErrUnknownTopping, name)
	}
	return PizzaTopping(key), nil
}

func ParsePastaTopping(name string) (PastaTopping, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if _, ok := pastaIndex[key]; !ok {
		return "", fmt.Errorf("%w: pasta topping %q", ErrUnknownTopping, name)
	}
	return PastaTopping(key), nil
}

// Info returns the catalog row, or the zero row for a value outside the catalog.
func (t PizzaTopping) Info() ToppingInfo { return pizzaIndex[string(t)] }

func (t PizzaTopping) Valid() bool {
	_, ok := pizzaIndex[string(t)]
	return ok
}

func (t PizzaTopping) Price() decimal.Decimal { return t.Info().ExtraPrice }

func (t PizzaTopping) IsVegetarian() bool { return t.Info().Vegetarian }

func (t PizzaTopping) IsVegan() bool { return t.Info().Vegan }

// Label is the lower-case name used in item descriptions.
func (t PizzaTopping) Label() string { return strings.ToLower(string(t)) }

func (t PastaTopping) Info() ToppingInfo { return pastaIndex[string(t)] }

func (t PastaTopping) Valid() bool {
	_, ok := pastaIndex[string(t)]
	return ok
}

func (t PastaTopping) Price() decimal.Decimal { return t.Info().ExtraPrice }

func (t PastaTopping) IsVegetarian() bool { return t.Info().Vegetarian }

func (t PastaTopping) IsVegan() bool { return t.Info().Vegan }

// Label is the lower-case name used in item descriptions.
func (t PastaTopping) Label() string { return strings.ToLower(string(t)) }
