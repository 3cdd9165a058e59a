package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the repositories.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// SaleDynamoRepository persists Sale entities in DynamoDB.
//
// Table requirements:
//   - sales: PK id (string)
//   - projects: PK sale_id (string), GSI id-index on id
//   - audit logs: PK id (string)
//
// Using sale_id as the projects PK guarantees one project per sale, the same
// way a conditional put on a PK guarantees uniqueness anywhere else.

type SaleDynamoRepository struct {
	ddb           DynamoDBAPI
	tableName     string
	projectsTable string
	auditTable    string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb DynamoDBAPI, tableName, projectsTable, auditTable string) *SaleDynamoRepository {
	return &SaleDynamoRepository{ddb: ddb, tableName: tableName, projectsTable: projectsTable, auditTable: auditTable}
}

func (r *SaleDynamoRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	av, err := attributevalue.MarshalMap(toSaleItem(s))
	if err != nil {
		return entities.Sale{}, err
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
		return entities.Sale{}, err
	}
	return s, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it)
}

func (r *SaleDynamoRepository) List(ctx context.Context, filter interfaces.SaleFilter) ([]entities.Sale, error) {
	in := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}

	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.AssignedTo != "" {
		conds = append(conds, "#assigned_to = :assigned_to")
		names["#assigned_to"] = "assigned_to"
		values[":assigned_to"] = &types.AttributeValueMemberS{Value: filter.AssignedTo}
	}
	if filter.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if len(conds) > 0 {
		expr := conds[0]
		for _, c := range conds[1:] {
			expr += " AND " + c
		}
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	var sales []entities.Sale
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []saleItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			s, err := fromSaleItem(it)
			if err != nil {
				return nil, err
			}
			sales = append(sales, s)
		}
	}
	return sales, nil
}

// Update replaces the stored sale when its version still equals
// expectedVersion.
func (r *SaleDynamoRepository) Update(ctx context.Context, s entities.Sale, expectedVersion int64) (entities.Sale, error) {
	av, err := attributevalue.MarshalMap(toSaleItem(s))
	if err != nil {
		return entities.Sale{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames:  versionNames("#id", "id"),
		ExpressionAttributeValues: versionValues(expectedVersion),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Sale{}, interfaces.ErrVersionConflict
		}
		return entities.Sale{}, err
	}
	return s, nil
}

// CommitHandover writes the locked sale, inserts its project and appends the
// audit entry in a single transaction.
func (r *SaleDynamoRepository) CommitHandover(ctx context.Context, s entities.Sale, expectedVersion int64, p entities.Project, audit entities.AuditLog) (entities.Sale, entities.Project, error) {
	saleAV, err := attributevalue.MarshalMap(toSaleItem(s))
	if err != nil {
		return entities.Sale{}, entities.Project{}, err
	}
	projectAV, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Sale{}, entities.Project{}, err
	}
	auditAV, err := attributevalue.MarshalMap(toAuditItem(audit))
	if err != nil {
		return entities.Sale{}, entities.Project{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                 aws.String(r.tableName),
					Item:                      saleAV,
					ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected"),
					ExpressionAttributeNames:  versionNames("#id", "id"),
					ExpressionAttributeValues: versionValues(expectedVersion),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.projectsTable),
					Item:                projectAV,
					ConditionExpression: aws.String("attribute_not_exists(#sale_id)"),
					ExpressionAttributeNames: map[string]string{
						"#sale_id": "sale_id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.auditTable),
					Item:                auditAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Sale{}, entities.Project{}, handoverError(err)
	}
	return s, p, nil
}

// handoverError maps a cancelled transaction to the item that failed its
// condition. Index 0 is the sale, index 1 the project. An audit id collision
// at index 2 is left wrapped.
func handoverError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != "ConditionalCheckFailed" {
			continue
		}
		switch i {
		case 0:
			return interfaces.ErrVersionConflict
		case 1:
			return interfaces.ErrDuplicateProject
		}
	}
	return fmt.Errorf("handover transaction cancelled: %w", err)
}

func versionNames(extraKey, extraVal string) map[string]string {
	return mergeNames(map[string]string{"#version": "version"}, map[string]string{extraKey: extraVal})
}

func versionValues(expected int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
	}
}
