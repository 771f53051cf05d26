package manager

import (
	"log/slog"
	"strings"

	"github.com/expanse-model/expanse/dataset/pkg/inputclient"
	"github.com/expanse-model/expanse/dataset/pkg/table"
)

// MaxTransmissionCapacityManager caps the installable capacity of one
// directed interconnector. Setting 0 removes the link from expansion.
type MaxTransmissionCapacityManager struct {
	log      *slog.Logger
	client   *inputclient.Client
	fromNode string
	toNode   string
	capacity float64
}

func NewMaxTransmissionCapacityManager(log *slog.Logger, client *inputclient.Client, fromNode, toNode string, capacity float64) *MaxTransmissionCapacityManager {
	return &MaxTransmissionCapacityManager{log: log, client: client, fromNode: fromNode, toNode: toNode, capacity: capacity}
}

func (m *MaxTransmissionCapacityManager) Name() string { return "max-transmission-capacity" }

func (m *MaxTransmissionCapacityManager) Apply() error {
	tbl, err := m.client.Transmission.MaxInstallCapacityRaw()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Transmission/MaxInstallCapacityRaw",
		map[string]string{"from": m.fromNode, "to": m.toNode},
		[]table.Condition{
			table.Eq(inputclient.ColInterconnectorLinks, m.fromNode),
			table.Eq(inputclient.ColToNode, m.toNode),
		},
		inputclient.ColMaxRawInstallCap, m.capacity)
	if err != nil {
		return err
	}
	m.log.Info("setting max transmission capacity", "from", m.fromNode, "to", m.toNode, "capacity", m.capacity)
	return m.client.Transmission.SetMaxInstallCapacityRaw(tbl)
}

// InitialTransmissionCapacityManager sets the capacity already in place on
// one directed interconnector at the start of the horizon.
type InitialTransmissionCapacityManager struct {
	log      *slog.Logger
	client   *inputclient.Client
	fromNode string
	toNode   string
	capacity float64
}

func NewInitialTransmissionCapacityManager(log *slog.Logger, client *inputclient.Client, fromNode, toNode string, capacity float64) *InitialTransmissionCapacityManager {
	return &InitialTransmissionCapacityManager{log: log, client: client, fromNode: fromNode, toNode: toNode, capacity: capacity}
}

func (m *InitialTransmissionCapacityManager) Name() string { return "initial-transmission-capacity" }

func (m *InitialTransmissionCapacityManager) Apply() error {
	tbl, err := m.client.Transmission.InitialCapacity()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Transmission/InitialCapacity",
		map[string]string{"from": m.fromNode, "to": m.toNode},
		[]table.Condition{
			table.Eq(inputclient.ColInterconnectorLinks, m.fromNode),
			table.Eq(inputclient.ColToNode, m.toNode),
		},
		inputclient.ColTransmissionInitCap, m.capacity)
	if err != nil {
		return err
	}
	m.log.Info("setting initial transmission capacity", "from", m.fromNode, "to", m.toNode, "capacity", m.capacity)
	return m.client.Transmission.SetInitialCapacity(tbl)
}

// TransmissionLengthManager sets the line length between two nodes. Node
// names are whitespace-stripped before comparison since length rows use the
// compact spelling.
type TransmissionLengthManager struct {
	log      *slog.Logger
	client   *inputclient.Client
	fromNode string
	toNode   string
	length   float64
}

func NewTransmissionLengthManager(log *slog.Logger, client *inputclient.Client, fromNode, toNode string, length float64) *TransmissionLengthManager {
	return &TransmissionLengthManager{
		log:      log,
		client:   client,
		fromNode: strings.ReplaceAll(fromNode, " ", ""),
		toNode:   strings.ReplaceAll(toNode, " ", ""),
		length:   length,
	}
}

func (m *TransmissionLengthManager) Name() string { return "transmission-length" }

func (m *TransmissionLengthManager) Apply() error {
	tbl, err := m.client.Transmission.Length()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Transmission/Length",
		map[string]string{"from": m.fromNode, "to": m.toNode},
		[]table.Condition{
			table.Eq(inputclient.ColFromNode, m.fromNode),
			table.Eq(inputclient.ColToNode, m.toNode),
		},
		inputclient.ColLength, m.length)
	if err != nil {
		return err
	}
	m.log.Info("setting transmission length", "from", m.fromNode, "to", m.toNode, "length_km", m.length)
	return m.client.Transmission.SetLength(tbl)
}

// TransmissionCapexManager sets the capital cost of one transmission type.
type TransmissionCapexManager struct {
	log              *slog.Logger
	client           *inputclient.Client
	transmissionType string
	capex            float64
}

func NewTransmissionCapexManager(log *slog.Logger, client *inputclient.Client, transmissionType string, capex float64) *TransmissionCapexManager {
	return &TransmissionCapexManager{log: log, client: client, transmissionType: transmissionType, capex: capex}
}

func (m *TransmissionCapexManager) Name() string { return "transmission-capex" }

func (m *TransmissionCapexManager) Apply() error {
	tbl, err := m.client.Transmission.TypeCapitalCost()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Transmission/TypeCapitalCost",
		map[string]string{"type": m.transmissionType},
		[]table.Condition{table.Eq(inputclient.ColTransmissionType, m.transmissionType)},
		inputclient.ColTypeCapitalCost, m.capex)
	if err != nil {
		return err
	}
	m.log.Info("setting transmission capex", "type", m.transmissionType, "capex", m.capex)
	return m.client.Transmission.SetTypeCapitalCost(tbl)
}

// TransmissionFixedOMManager sets the fixed O&M cost of one transmission
// type, editing the fixed O&M table directly.
type TransmissionFixedOMManager struct {
	log              *slog.Logger
	client           *inputclient.Client
	transmissionType string
	fixedOM          float64
}

func NewTransmissionFixedOMManager(log *slog.Logger, client *inputclient.Client, transmissionType string, fixedOM float64) *TransmissionFixedOMManager {
	return &TransmissionFixedOMManager{log: log, client: client, transmissionType: transmissionType, fixedOM: fixedOM}
}

func (m *TransmissionFixedOMManager) Name() string { return "transmission-fixed-om" }

func (m *TransmissionFixedOMManager) Apply() error {
	tbl, err := m.client.Transmission.TypeFixedOMCost()
	if err != nil {
		return err
	}
	err = setMatching(tbl, "Transmission/TypeFixedOMCost",
		map[string]string{"type": m.transmissionType},
		[]table.Condition{table.Eq(inputclient.ColTransmissionType, m.transmissionType)},
		inputclient.ColTypeFixedOMCost, m.fixedOM)
	if err != nil {
		return err
	}
	m.log.Info("setting transmission fixed O&M", "type", m.transmissionType, "fixed_om", m.fixedOM)
	return m.client.Transmission.SetTypeFixedOMCost(tbl)
}
