package interfaces

//go:generate mockgen -source=import_draft_repository_interface.go -destination=mocks/import_draft_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"import_admin/internal/domain/entities"
)

// IImportDraftRepository persists open import forms.
//
// Get returns a nil draft and nil error when nothing is stored under id.
// Update only succeeds when the stored version equals expectedVersion; the
// stored version is then incremented. A lost race yields ErrVersionMismatch.
type IImportDraftRepository interface {
	Create(ctx context.Context, d entities.ImportDraft) (entities.ImportDraft, error)
	Get(ctx context.Context, id string) (*entities.ImportDraft, error)
	Update(ctx context.Context, d entities.ImportDraft, expectedVersion int64) (entities.ImportDraft, error)
	Delete(ctx context.Context, id string) error
}
