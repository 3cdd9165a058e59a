package repository

import (
	"context"
	"errors"
	"strings"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const projectIDIndex = "id-index"

// ProjectDynamoRepository persists Project entities keyed by sale_id.

type ProjectDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb DynamoDBAPI, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sale_id)"),
		ExpressionAttributeNames: map[string]string{
			"#sale_id": "sale_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, interfaces.ErrDuplicateProject
		}
		return entities.Project{}, err
	}
	return p, nil
}

// GetByID resolves the sale_id through the id index, then reads the item
// consistently.
func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectIDIndex),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Items) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Project{}, err
	}
	return r.GetBySaleID(ctx, it.SaleID)
}

func (r *ProjectDynamoRepository) GetBySaleID(ctx context.Context, saleID string) (entities.Project, error) {
	saleID = strings.TrimSpace(saleID)
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"sale_id": &types.AttributeValueMemberS{Value: saleID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	var projects []entities.Project
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []projectItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			projects = append(projects, fromProjectItem(it))
		}
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project, expectedVersion int64) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String("attribute_exists(#sale_id) AND #version = :expected"),
		ExpressionAttributeNames:  versionNames("#sale_id", "sale_id"),
		ExpressionAttributeValues: versionValues(expectedVersion),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, interfaces.ErrVersionConflict
		}
		return entities.Project{}, err
	}
	return p, nil
}
