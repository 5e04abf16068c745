package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/ledger"
	"import_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultImportDraftsTableName = "import_drafts"

type costEntryItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	RealAmount   string `dynamodbav:"real_amount"`
	ClientAmount string `dynamodbav:"client_amount"`
}

type importDraftItem struct {
	ID                   string            `dynamodbav:"id"`
	ImportID             string            `dynamodbav:"import_id,omitempty"`
	CarID                string            `dynamodbav:"car_id"`
	ClientID             string            `dynamodbav:"client_id"`
	Notes                string            `dynamodbav:"notes"`
	Status               string            `dynamodbav:"status"`
	OriginalStatus       string            `dynamodbav:"original_status"`
	DeliveryDate         string            `dynamodbav:"delivery_date"`
	OriginalDeliveryDate string            `dynamodbav:"original_delivery_date"`
	Entries              []costEntryItem   `dynamodbav:"entries"`
	HasOriginal          bool              `dynamodbav:"has_original"`
	OriginalReales       map[string]string `dynamodbav:"original_reales,omitempty"`
	OriginalCliente      map[string]string `dynamodbav:"original_cliente,omitempty"`
	Version              int64             `dynamodbav:"version"`
	CreatedAt            string            `dynamodbav:"created_at"`
	UpdatedAt            string            `dynamodbav:"updated_at"`
	// ExpiresAt is the table TTL attribute, in epoch seconds.
	ExpiresAt int64 `dynamodbav:"expires_at"`
}

// ImportDraftDynamoRepository persists open import forms in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at
//
// TTL deletion is lazy, so Get also hides items past expires_at.
type ImportDraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IImportDraftRepository = (*ImportDraftDynamoRepository)(nil)

func NewImportDraftDynamoRepository(ddb *dynamodb.Client, tableName string) *ImportDraftDynamoRepository {
	if tableName == "" {
		tableName = defaultImportDraftsTableName
	}
	return &ImportDraftDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       time.Now,
	}
}

func (r *ImportDraftDynamoRepository) Create(ctx context.Context, d entities.ImportDraft) (entities.ImportDraft, error) {
	av, err := attributevalue.MarshalMap(toImportDraftItem(d))
	if err != nil {
		return entities.ImportDraft{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ImportDraft{}, err
	}
	return d, nil
}

func (r *ImportDraftDynamoRepository) Get(ctx context.Context, id string) (*entities.ImportDraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it importDraftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	if it.ExpiresAt > 0 && r.now().Unix() >= it.ExpiresAt {
		return nil, nil
	}
	d, err := fromImportDraftItem(it)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Update replaces the stored draft when its version still equals expectedVersion.
// The returned draft carries the incremented version.
func (r *ImportDraftDynamoRepository) Update(ctx context.Context, d entities.ImportDraft, expectedVersion int64) (entities.ImportDraft, error) {
	d.Version = expectedVersion + 1
	d.UpdatedAt = r.now().UTC()

	av, err := attributevalue.MarshalMap(toImportDraftItem(d))
	if err != nil {
		return entities.ImportDraft{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.ImportDraft{}, interfaces.ErrRecordNotFound
			}
			return entities.ImportDraft{}, interfaces.ErrVersionMismatch
		}
		return entities.ImportDraft{}, err
	}
	return d, nil
}

func (r *ImportDraftDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toImportDraftItem(d entities.ImportDraft) importDraftItem {
	it := importDraftItem{
		ID:                   d.ID,
		ImportID:             d.ImportID,
		CarID:                d.CarID,
		ClientID:             d.ClientID,
		Notes:                d.Notes,
		Status:               string(d.Status),
		OriginalStatus:       string(d.OriginalStatus),
		DeliveryDate:         d.DeliveryDate,
		OriginalDeliveryDate: d.OriginalDeliveryDate,
		Entries:              make([]costEntryItem, 0, len(d.Entries)),
		Version:              d.Version,
		CreatedAt:            d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !d.ExpiresAt.IsZero() {
		it.ExpiresAt = d.ExpiresAt.Unix()
	}
	for _, e := range d.Entries {
		it.Entries = append(it.Entries, costEntryItem{
			ID:           e.ID,
			Name:         e.Name,
			RealAmount:   floatToString(e.RealAmount),
			ClientAmount: floatToString(e.ClientAmount),
		})
	}
	if d.Original != nil {
		it.HasOriginal = true
		it.OriginalReales = amountsToStrings(d.Original.Reales())
		it.OriginalCliente = amountsToStrings(d.Original.Cliente())
	}
	return it
}

// fromImportDraftItem fails on corrupt amounts or timestamps rather than
// loading them as zero values.
func fromImportDraftItem(it importDraftItem) (entities.ImportDraft, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.ImportDraft{}, fmt.Errorf("draft %s created_at: %w", it.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if err != nil {
		return entities.ImportDraft{}, fmt.Errorf("draft %s updated_at: %w", it.ID, err)
	}

	d := entities.ImportDraft{
		ID:                   it.ID,
		ImportID:             it.ImportID,
		CarID:                it.CarID,
		ClientID:             it.ClientID,
		Notes:                it.Notes,
		Status:               entities.ImportStatus(it.Status),
		OriginalStatus:       entities.ImportStatus(it.OriginalStatus),
		DeliveryDate:         it.DeliveryDate,
		OriginalDeliveryDate: it.OriginalDeliveryDate,
		Entries:              make([]ledger.CostEntry, 0, len(it.Entries)),
		Version:              it.Version,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
	if it.ExpiresAt > 0 {
		d.ExpiresAt = time.Unix(it.ExpiresAt, 0).UTC()
	}
	for _, e := range it.Entries {
		realAmount, err := stringToFloat(e.RealAmount)
		if err != nil {
			return entities.ImportDraft{}, fmt.Errorf("draft %s entry %s real_amount: %w", it.ID, e.ID, err)
		}
		clientAmount, err := stringToFloat(e.ClientAmount)
		if err != nil {
			return entities.ImportDraft{}, fmt.Errorf("draft %s entry %s client_amount: %w", it.ID, e.ID, err)
		}
		d.Entries = append(d.Entries, ledger.CostEntry{
			ID:           e.ID,
			Name:         e.Name,
			RealAmount:   realAmount,
			ClientAmount: clientAmount,
		})
	}
	if it.HasOriginal {
		reales, err := stringsToAmounts(it.OriginalReales)
		if err != nil {
			return entities.ImportDraft{}, fmt.Errorf("draft %s original_reales: %w", it.ID, err)
		}
		cliente, err := stringsToAmounts(it.OriginalCliente)
		if err != nil {
			return entities.ImportDraft{}, fmt.Errorf("draft %s original_cliente: %w", it.ID, err)
		}
		d.Original = ledger.NewSnapshot(reales, cliente)
	}
	return d, nil
}
