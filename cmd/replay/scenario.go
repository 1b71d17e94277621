package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TomaszKulowski/models"
)

// productLine is one priced product row of a scenario order.
type productLine struct {
	Name     string  `yaml:"name"`
	Price    float64 `yaml:"price"`
	Quantity int     `yaml:"quantity"`
}

// scenarioOrder describes a single order to feed into the book.
type scenarioOrder struct {
	Transaction string        `yaml:"transaction"`
	Type        string        `yaml:"type"`
	Products    []productLine `yaml:"products"`
}

// scenario is a replayable sequence of orders.
type scenario struct {
	Orders []scenarioOrder `yaml:"orders"`
}

// loadScenario reads a scenario definition from a YAML file.
func loadScenario(path string) (scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return scenario{}, fmt.Errorf("read scenario: %w", err)
	}

	var sc scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	return sc, nil
}

// defaultScenario is replayed when no scenario file is given.
func defaultScenario() scenario {
	return scenario{Orders: []scenarioOrder{
		{Transaction: "Buy", Type: "Add", Products: []productLine{{Name: "Banana", Price: 99.0, Quantity: 99}}},
		{Transaction: "Buy", Type: "Add", Products: []productLine{{Name: "Apple", Price: 1.0, Quantity: 1}}},
		{Transaction: "Sell", Type: "Add", Products: []productLine{{Name: "Orange", Price: 53.0, Quantity: 1}}},
		{Transaction: "Sell", Type: "Add", Products: []productLine{{Name: "Lemon", Price: 0.1, Quantity: 9}}},
	}}
}

// build converts the YAML form into a validated order.
func (o scenarioOrder) build() (models.Order, error) {
	transaction, err := models.ParseTransactionType(o.Transaction)
	if err != nil {
		return models.Order{}, err
	}
	orderType, err := models.ParseOrderType(o.Type)
	if err != nil {
		return models.Order{}, err
	}

	products := make(map[models.Product]int, len(o.Products))
	for _, line := range o.Products {
		products[models.NewProduct(line.Name, line.Price)] = line.Quantity
	}
	return models.NewOrder(products, transaction, orderType)
}
