package usecase

import (
	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/ledger"
)

// buildImportCreate turns a committed draft into POST /imports. Empty cost maps are left out.
func buildImportCreate(d entities.ImportDraft, res ledger.Result) entities.ImportCreate {
	out := entities.ImportCreate{
		CarID:                 d.CarID,
		ClientID:              d.ClientID,
		Notes:                 d.Notes,
		Status:                d.Status,
		FechaTentativaEntrega: d.DeliveryTime(),
	}
	if len(res.CostosReales) > 0 {
		out.CostosReales = res.CostosReales
	}
	if len(res.CostosCliente) > 0 {
		out.CostosCliente = res.CostosCliente
	}
	return out
}

// buildImportUpdate turns a committed draft into PUT /imports/{id}.
//
// Notes are always sent. Status and delivery date are only sent when they
// changed since the draft was opened; a cleared date is an explicit null.
func buildImportUpdate(d entities.ImportDraft, res ledger.Result) entities.ImportUpdate {
	notes := d.Notes
	out := entities.ImportUpdate{
		Notes: &notes,
	}
	if d.StatusChanged() {
		out.Status = d.Status
	}
	if len(res.CostosReales) > 0 {
		out.CostosReales = res.CostosReales
	}
	if len(res.CostosCliente) > 0 {
		out.CostosCliente = res.CostosCliente
	}
	if len(res.RealesToDelete) > 0 {
		out.CostosRealesToDelete = res.RealesToDelete
	}
	if len(res.ClienteToDelete) > 0 {
		out.CostosClienteToDelete = res.ClienteToDelete
	}
	if d.DeliveryChanged() {
		if t := d.DeliveryTime(); t != nil {
			out.FechaTentativaEntrega = entities.SetDate(*t)
		} else {
			out.FechaTentativaEntrega = entities.ClearDate()
		}
	}
	return out
}
