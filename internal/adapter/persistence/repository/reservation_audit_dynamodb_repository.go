package repository

import (
	"context"
	"log"

	"gateway_reservas/internal/domain/entities"
	"gateway_reservas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	auditUnitIDIndex = "unit_id-index"
	auditListLimit   = 100
)

type reservationAuditItem struct {
	ID                 string `dynamodbav:"id"`
	UnitID             string `dynamodbav:"unit_id"`
	Operation          string `dynamodbav:"operation"`
	RequestedStatus    string `dynamodbav:"requested_status"`
	ResultStatus       string `dynamodbav:"result_status,omitempty"`
	UpstreamStatus     string `dynamodbav:"upstream_status,omitempty"`
	Outcome            string `dynamodbav:"outcome"`
	UpstreamHTTPStatus int    `dynamodbav:"upstream_http_status,omitempty"`
	Message            string `dynamodbav:"message,omitempty"`
	AgentName          string `dynamodbav:"agent_name,omitempty"`
	ClientName         string `dynamodbav:"client_name,omitempty"`
	ClientContact      string `dynamodbav:"client_contact,omitempty"`
	ClientDocument     string `dynamodbav:"client_document,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
	RequestID          string `dynamodbav:"request_id,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// ReservationAuditDynamoRepository persists ReservationAudit entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: unit_id-index (PK: unit_id, SK: created_at)
type ReservationAuditDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IReservationAuditRepository = (*ReservationAuditDynamoRepository)(nil)

func NewReservationAuditDynamoRepository(ddb DynamoDBAPI, tableName string) *ReservationAuditDynamoRepository {
	return &ReservationAuditDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReservationAuditDynamoRepository) Create(ctx context.Context, a entities.ReservationAudit) (entities.ReservationAudit, error) {
	av, err := attributevalue.MarshalMap(toReservationAuditItem(a))
	if err != nil {
		return entities.ReservationAudit{}, err
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
		log.Printf("[audit][repository] put failed table=%s unit_id=%s err=%v", r.tableName, a.UnitID, err)
		return entities.ReservationAudit{}, err
	}
	return a, nil
}

// ListByUnitID returns the most recent entries for a unit, newest first.
func (r *ReservationAuditDynamoRepository) ListByUnitID(ctx context.Context, unitID string) ([]entities.ReservationAudit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditUnitIDIndex),
		KeyConditionExpression: aws.String("unit_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: unitID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(auditListLimit),
	})
	if err != nil {
		log.Printf("[audit][repository] query failed table=%s unit_id=%s err=%v", r.tableName, unitID, err)
		return nil, err
	}

	items := make([]entities.ReservationAudit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reservationAuditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReservationAuditItem(it))
	}
	return items, nil
}

func toReservationAuditItem(a entities.ReservationAudit) reservationAuditItem {
	return reservationAuditItem{
		ID:                 a.ID,
		UnitID:             a.UnitID,
		Operation:          string(a.Operation),
		RequestedStatus:    string(a.RequestedStatus),
		ResultStatus:       string(a.ResultStatus),
		UpstreamStatus:     a.UpstreamStatus,
		Outcome:            string(a.Outcome),
		UpstreamHTTPStatus: a.UpstreamHTTPStatus,
		Message:            a.Message,
		AgentName:          a.Holder.AgentName,
		ClientName:         a.Holder.ClientName,
		ClientContact:      a.Holder.ClientContact,
		ClientDocument:     a.Holder.ClientDocument,
		Notes:              a.Holder.Notes,
		RequestID:          a.RequestID,
		CreatedAt:          formatTime(a.CreatedAt),
	}
}

func fromReservationAuditItem(it reservationAuditItem) entities.ReservationAudit {
	return entities.ReservationAudit{
		ID:                 it.ID,
		UnitID:             it.UnitID,
		Operation:          entities.Operation(it.Operation),
		RequestedStatus:    entities.SaleStatus(it.RequestedStatus),
		ResultStatus:       entities.SaleStatus(it.ResultStatus),
		UpstreamStatus:     it.UpstreamStatus,
		Outcome:            entities.AuditOutcome(it.Outcome),
		UpstreamHTTPStatus: it.UpstreamHTTPStatus,
		Message:            it.Message,
		Holder: entities.HolderMetadata{
			AgentName:      it.AgentName,
			ClientName:     it.ClientName,
			ClientContact:  it.ClientContact,
			ClientDocument: it.ClientDocument,
			Notes:          it.Notes,
		},
		RequestID: it.RequestID,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
