package menu

import (
	"testing"

	"takeaway/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Names(t *testing.T) {
	catalog := NewCatalog()
	assert.Equal(t, []string{
		"hawaiian_pizza",
		"meat_lovers_pizza",
		"vegetarian_supreme_pizza",
		"margherita_pizza",
		"seafood_deluxe_pizza",
		"classic_marinara_pasta",
		"creamy_primavera_pasta",
		"hearty_bolognese_pasta",
		"simple_tomato_pasta",
	}, catalog.Names())

	assert.Len(t, catalog.NamesFor(domain.CategoryPizza), 5)
	assert.Equal(t, []string{
		"classic_marinara_pasta",
		"creamy_primavera_pasta",
		"hearty_bolognese_pasta",
		"simple_tomato_pasta",
	}, catalog.NamesFor(domain.CategoryPasta))
}

func TestCatalog_Create(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		name     string
		item     string
		price    string
		mealType domain.MealType
	}{
		{name: "hawaiian", item: "hawaiian_pizza", price: "18.00", mealType: domain.MealMeat},
		{name: "case insensitive", item: "Hawaiian_PIZZA", price: "18.00", mealType: domain.MealMeat},
		{name: "meat lovers", item: "meat_lovers_pizza", price: "19.00", mealType: domain.MealMeat},
		{name: "vegetarian supreme", item: "vegetarian_supreme_pizza", price: "20.00", mealType: domain.MealVegetarian},
		{name: "margherita", item: "margherita_pizza", price: "15.50", mealType: domain.MealVegetarian},
		{name: "seafood deluxe", item: "seafood_deluxe_pizza", price: "19.00", mealType: domain.MealMeat},
		{name: "marinara", item: "classic_marinara_pasta", price: "18.30", mealType: domain.MealMeat},
		{name: "primavera", item: "creamy_primavera_pasta", price: "16.70", mealType: domain.MealVegetarian},
		{name: "bolognese", item: "hearty_bolognese_pasta", price: "16.70", mealType: domain.MealMeat},
		{name: "tomato", item: "simple_tomato_pasta", price: "15.50", mealType: domain.MealVegan},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			food, err := catalog.Create(testCase.item)
			require.NoError(t, err)
			assert.Equal(t, testCase.price, food.Price().StringFixed(2))
			assert.Equal(t, testCase.mealType, food.MealType())
		})
	}
}

func TestCatalog_CreateMatchesRecipe(t *testing.T) {
	catalog := NewCatalog()

	food, err := catalog.Create("hawaiian_pizza")
	require.NoError(t, err)
	pizza, ok := food.(*domain.Pizza)
	require.True(t, ok)
	assert.True(t, pizza.Equal(domain.NewPizza(domain.Ham, domain.Pineapple, domain.Cheese)))

	food, err = catalog.Create("simple_tomato_pasta")
	require.NoError(t, err)
	pasta, ok := food.(*domain.Pasta)
	require.True(t, ok)
	assert.True(t, pasta.Equal(domain.NewPastaWith(domain.PastaTomato)))
}

func TestCatalog_CreateReturnsFreshItems(t *testing.T) {
	catalog := NewCatalog()
	first, err := catalog.Create("margherita_pizza")
	require.NoError(t, err)
	first.(*domain.Pizza).AddTopping(domain.Ham)

	second, err := catalog.Create("margherita_pizza")
	require.NoError(t, err)
	assert.Equal(t, domain.MealVegetarian, second.MealType())
}

func TestCatalog_UnknownItem(t *testing.T) {
	catalog := NewCatalog()

	_, err := catalog.Create("not_a_real_item")
	assert.ErrorIs(t, err, ErrUnknownMenuItem)

	_, err = catalog.Describe("not_a_real_item")
	assert.ErrorIs(t, err, ErrUnknownMenuItem)
}

func TestCatalog_Describe(t *testing.T) {
	catalog := NewCatalog()
	description, err := catalog.Describe("MARGHERITA_PIZZA")
	require.NoError(t, err)
	assert.Equal(t, "Cheese and tomato", description)

	description, err = catalog.Describe("simple_tomato_pasta")
	require.NoError(t, err)
	assert.Equal(t, "Pasta with tomato sauce (vegan)", description)
}

func TestCatalog_Entries(t *testing.T) {
	entries := NewCatalog().Entries()
	require.Len(t, entries, 9)
	assert.Equal(t, "Hawaiian Pizza", entries[0].DisplayName)
	assert.Equal(t, "18.00", entries[0].Price.StringFixed(2))
	assert.Equal(t, domain.CategoryPasta, entries[8].Category)
	assert.Equal(t, "Simple Tomato Pasta", entries[8].DisplayName)
}

func TestCatalog_Build(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		name     string
		category string
		opts     Options
		price    string
		mealType domain.MealType
		wantErr  error
	}{
		{name: "plain pizza", category: "pizza", price: "11.50", mealType: domain.MealVegan},
		{name: "custom pizza", category: "Pizza", opts: Options{Toppings: []string{"ham", "cheese"}}, price: "15.50", mealType: domain.MealMeat},
		{name: "plain pasta", category: "pasta", price: "11.50", mealType: domain.MealVegan},
		{name: "primavera pasta", category: "pasta", opts: Options{Toppings: []string{"primavera"}}, price: "16.70", mealType: domain.MealVegetarian},
		{name: "two pasta toppings", category: "pasta", opts: Options{Toppings: []string{"tomato", "marinara"}}, wantErr: ErrTooManyToppings},
		{name: "unknown topping", category: "pizza", opts: Options{Toppings: []string{"bacon"}}, wantErr: domain.ErrUnknownTopping},
		{name: "unsupported category", category: "salad", wantErr: ErrUnsupportedCategory},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			food, err := catalog.Build(testCase.category, testCase.opts)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, food)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.price, food.Price().StringFixed(2))
			assert.Equal(t, testCase.mealType, food.MealType())
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Vegetarian Supreme Pizza", DisplayName("vegetarian_supreme_pizza"))
	assert.Equal(t, "Hearty Bolognese Pasta", DisplayName("HEARTY_bolognese_pasta"))
}
