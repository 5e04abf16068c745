package interfaces

//go:generate mockgen -source=cost_sheet_exporter_interface.go -destination=mocks/cost_sheet_exporter_interface_mock.go -package=mock_interfaces

import "import_admin/internal/domain/entities"

type ICostSheetExporter interface {
	Render(sheet entities.CostSheet) ([]byte, error)
	ContentType() string
}
