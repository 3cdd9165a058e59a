package repository

import (
	"context"
	"sort"

	"salesops/internal/domain/entities"
	"salesops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// AuditLogDynamoRepository reads the audit table (PK id). Entries are
// written by SaleDynamoRepository.CommitHandover.
//
// The table has no sort key, so List scans and orders in memory. Audit
// entries are only written on handover, which keeps the table small.
type AuditLogDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb DynamoDBAPI, tableName string) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AuditLogDynamoRepository) List(ctx context.Context, offset, limit int) ([]entities.AuditLog, int, error) {
	var logs []entities.AuditLog
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, 0, err
		}
		var items []auditItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, 0, err
		}
		for _, it := range items {
			logs = append(logs, fromAuditItem(it))
		}
	}

	sort.SliceStable(logs, func(i, j int) bool {
		if !logs[i].CreatedAt.Equal(logs[j].CreatedAt) {
			return logs[i].CreatedAt.After(logs[j].CreatedAt)
		}
		return logs[i].ID > logs[j].ID
	})
	total := len(logs)
	if offset >= total {
		return nil, total, nil
	}
	end := min(offset+limit, total)
	return logs[offset:end], total, nil
}
