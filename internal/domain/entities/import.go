package entities

import (
	"bytes"
	"encoding/json"
	"time"
)

// ImportStatus represents the lifecycle of an import.
type ImportStatus string

const (
	ImportStatusEnProceso  ImportStatus = "EN_PROCESO"
	ImportStatusEnTransito ImportStatus = "EN_TRANSITO"
	ImportStatusEnTaller   ImportStatus = "EN_TALLER"
	ImportStatusEnAduana   ImportStatus = "EN_ADUANA"
	ImportStatusEntregado  ImportStatus = "ENTREGADO"
)

var importStatusLabels = map[ImportStatus]string{
	ImportStatusEnProceso:  "En Proceso",
	ImportStatusEnTransito: "En Tránsito",
	ImportStatusEnTaller:   "En Taller",
	ImportStatusEnAduana:   "En Aduana",
	ImportStatusEntregado:  "Entregado",
}

// ImportStatuses lists every status in lifecycle order.
func ImportStatuses() []ImportStatus {
	return []ImportStatus{
		ImportStatusEnProceso,
		ImportStatusEnTransito,
		ImportStatusEnTaller,
		ImportStatusEnAduana,
		ImportStatusEntregado,
	}
}

func (s ImportStatus) IsValid() bool {
	_, ok := importStatusLabels[s]
	return ok
}

// Label is the admin-facing name; unknown values are returned verbatim.
func (s ImportStatus) Label() string {
	if l, ok := importStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// StatusHistoryEntry is one recorded status transition.
type StatusHistoryEntry struct {
	Status    ImportStatus `json:"status"`
	ChangedAt Timestamp    `json:"changed_at"`
	Notes     string       `json:"notes,omitempty"`
}

// ImportHistory is the body of GET /imports/{id}/history.
type ImportHistory struct {
	History               []StatusHistoryEntry `json:"history"`
	CurrentStatus         ImportStatus         `json:"current_status"`
	FechaTentativaEntrega *Timestamp           `json:"fecha_tentativa_entrega,omitempty"`
}

// Import links one car to one client and carries two independent cost ledgers.
//
// Domain notes:
//   - CostosReales is the internal (admin only) ledger.
//   - CostosCliente is what the client sees through a share link.
//   - The two maps are not required to share keys.
type Import struct {
	ID                    string               `json:"id"`
	CarID                 string               `json:"car_id"`
	ClientID              string               `json:"client_id"`
	CostosReales          map[string]float64   `json:"costos_reales"`
	CostosCliente         map[string]float64   `json:"costos_cliente"`
	Notes                 string               `json:"notes,omitempty"`
	Status                ImportStatus         `json:"status"`
	FechaTentativaEntrega *Timestamp           `json:"fecha_tentativa_entrega,omitempty"`
	Images                []string             `json:"images,omitempty"`
	StatusHistory         []StatusHistoryEntry `json:"status_history,omitempty"`
	CreatedAt             Timestamp            `json:"created_at"`
	UpdatedAt             Timestamp            `json:"updated_at"`
	Car                   *Car                 `json:"car,omitempty"`
	Client                *Client              `json:"client,omitempty"`
}

// ImportCreate is the body of POST /imports. Empty cost maps are omitted.
type ImportCreate struct {
	CarID                 string             `json:"car_id"`
	ClientID              string             `json:"client_id"`
	CostosReales          map[string]float64 `json:"costos_reales,omitempty"`
	CostosCliente         map[string]float64 `json:"costos_cliente,omitempty"`
	Notes                 string             `json:"notes,omitempty"`
	Status                ImportStatus       `json:"status,omitempty"`
	FechaTentativaEntrega *time.Time         `json:"fecha_tentativa_entrega,omitempty"`
}

// ImportUpdate is the body of PUT /imports/{id}. Omitted fields mean "no change";
// FechaTentativaEntrega uses DateUpdate so that clearing the date is explicit.
type ImportUpdate struct {
	CostosReales          map[string]float64 `json:"costos_reales,omitempty"`
	CostosCliente         map[string]float64 `json:"costos_cliente,omitempty"`
	CostosRealesToDelete  []string           `json:"costos_reales_to_delete,omitempty"`
	CostosClienteToDelete []string           `json:"costos_cliente_to_delete,omitempty"`
	Notes                 *string            `json:"notes,omitempty"`
	Status                ImportStatus       `json:"status,omitempty"`
	FechaTentativaEntrega *DateUpdate        `json:"fecha_tentativa_entrega,omitempty"`
}

// DateUpdate is the tri-state encoding of a date on update:
//   - nil *DateUpdate: field omitted, no change
//   - &DateUpdate{}: JSON null, remove the date
//   - &DateUpdate{Value: &t}: set the date
type DateUpdate struct {
	Value *time.Time
}

func ClearDate() *DateUpdate {
	return &DateUpdate{}
}

func SetDate(t time.Time) *DateUpdate {
	return &DateUpdate{Value: &t}
}

func (d DateUpdate) IsClear() bool {
	return d.Value == nil
}

func (d DateUpdate) MarshalJSON() ([]byte, error) {
	if d.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value.UTC().Format(wireLayout))
}

func (d *DateUpdate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		d.Value = nil
		return nil
	}
	var ts Timestamp
	if err := ts.UnmarshalJSON(data); err != nil {
		return err
	}
	d.Value = ts.TimePtr()
	return nil
}

// PublicImport is the read-only projection served through a share token.
// It deliberately has no field for the real costs.
type PublicImport struct {
	ID                    string             `json:"id"`
	CarID                 string             `json:"car_id"`
	ClientID              string             `json:"client_id"`
	CostosCliente         map[string]float64 `json:"costos_cliente"`
	Notes                 string             `json:"notes,omitempty"`
	Status                ImportStatus       `json:"status"`
	FechaTentativaEntrega *Timestamp         `json:"fecha_tentativa_entrega,omitempty"`
	Images                []string           `json:"images,omitempty"`
	CreatedAt             Timestamp          `json:"created_at"`
	UpdatedAt             Timestamp          `json:"updated_at"`
	Car                   *Car               `json:"car,omitempty"`
	Client                *Client            `json:"client,omitempty"`
}
