package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bank-mobile-api/internal/domain"
)

// Account statuses excluded from listings (closed / written off upstream).
const (
	statusClosed     = 5
	statusWrittenOff = 6
)

// AccountRepo provides the resolver's read surface for account rows.
// PK: account_number; GSI customer_id-index for per-customer listings.
type AccountRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAccountRepo(client *dynamodb.Client, tableName string) *AccountRepo {
	return &AccountRepo{client: client, tableName: tableName}
}

// ListAccounts returns the customer's active accounts. Inactive rows and
// closed/written-off statuses are filtered server-side.
func (r *AccountRepo) ListAccounts(ctx context.Context, clientID string) ([]domain.Account, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("customer_id-index"),
		KeyConditionExpression: aws.String("customer_id = :c"),
		FilterExpression:       aws.String("is_active = :t AND NOT (#s IN (:closed, :writtenoff))"),
		ExpressionAttributeNames: map[string]string{
			"#s": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c":          &types.AttributeValueMemberS{Value: clientID},
			":t":          &types.AttributeValueMemberBOOL{Value: true},
			":closed":     &types.AttributeValueMemberN{Value: fmt.Sprint(statusClosed)},
			":writtenoff": &types.AttributeValueMemberN{Value: fmt.Sprint(statusWrittenOff)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	var accounts []domain.Account
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &accounts); err != nil {
		return nil, fmt.Errorf("unmarshal accounts: %w", err)
	}
	return accounts, nil
}

// GetAccountOwner returns the client id that owns the account number.
func (r *AccountRepo) GetAccountOwner(ctx context.Context, accountNumber string) (string, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("account_number", accountNumber),
	})
	if err != nil {
		return "", fmt.Errorf("get account: %w", err)
	}
	if out.Item == nil {
		return "", fmt.Errorf("account not found: %w", domain.ErrNotFound)
	}
	var a domain.Account
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return "", fmt.Errorf("unmarshal account: %w", err)
	}
	return a.CustomerID, nil
}
