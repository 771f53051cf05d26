package manager

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/expanse-model/expanse/dataset/pkg/inputclient"
	"github.com/expanse-model/expanse/dataset/pkg/table"
)

// CO2PriceManager sets the CO2 price for a list of investment periods.
type CO2PriceManager struct {
	log     *slog.Logger
	client  *inputclient.Client
	periods []int
	prices  []float64
}

func NewCO2PriceManager(log *slog.Logger, client *inputclient.Client, periods []int, prices []float64) (*CO2PriceManager, error) {
	if len(periods) != len(prices) {
		return nil, &ValidationError{
			Manager: "co2-price",
			Reason:  fmt.Sprintf("%d periods but %d prices", len(periods), len(prices)),
		}
	}
	return &CO2PriceManager{log: log, client: client, periods: periods, prices: prices}, nil
}

func (m *CO2PriceManager) Name() string { return "co2-price" }

func (m *CO2PriceManager) Apply() error {
	tbl, err := m.client.General.CO2Price()
	if err != nil {
		return err
	}
	for i, p := range m.periods {
		period := strconv.Itoa(p)
		err := setMatching(tbl, "General/CO2Price",
			map[string]string{"period": period},
			[]table.Condition{table.Eq(inputclient.ColPeriod, period)},
			inputclient.ColCO2Price, m.prices[i])
		if err != nil {
			return err
		}
	}
	m.log.Info("setting CO2 prices", "periods", m.periods, "prices", m.prices)
	return m.client.General.SetCO2Price(tbl)
}
